package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalogBack/internal/models"
)

type ItemRepository struct {
	Collection *mongo.Collection
}

// CreateItem stores the draft under a fresh uuid and returns the stored item.
func (r *ItemRepository) CreateItem(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	item := draft.Item(uuid.New().String())
	if _, err := r.Collection.InsertOne(ctx, item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) GetItems(ctx context.Context) ([]models.Item, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// ReplaceItem overwrites every field of the stored item except its id. It
// never upserts: replacing an id that is no longer present reports
// models.ErrItemNotFound.
func (r *ItemRepository) ReplaceItem(ctx context.Context, id string, draft models.ItemDraft) (models.Item, error) {
	item := draft.Item(id)
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": id}, item)
	if err != nil {
		return models.Item{}, err
	}
	if result.MatchedCount == 0 {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// Ping reports whether the backing deployment is reachable.
func (r *ItemRepository) Ping(ctx context.Context) error {
	return r.Collection.Database().Client().Ping(ctx, readpref.Primary())
}
