package services

import (
	"context"

	"catalogBack/internal/models"
	"catalogBack/internal/repositories"
)

type ItemService struct {
	ItemRepo *repositories.ItemRepository
}

func (s *ItemService) CreateItem(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	return s.ItemRepo.CreateItem(ctx, draft)
}

func (s *ItemService) GetItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.GetItems(ctx)
}

func (s *ItemService) GetItemByID(ctx context.Context, id string) (models.Item, error) {
	return s.ItemRepo.GetItemByID(ctx, id)
}

func (s *ItemService) ReplaceItem(ctx context.Context, id string, draft models.ItemDraft) (models.Item, error) {
	return s.ItemRepo.ReplaceItem(ctx, id, draft)
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.ItemRepo.DeleteItem(ctx, id)
}
