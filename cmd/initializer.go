package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalogBack/internal/config"
	"catalogBack/internal/handlers"
	"catalogBack/internal/repositories"
	"catalogBack/internal/services"
)

type application struct {
	errorLog      *log.Logger
	infoLog       *log.Logger
	itemHandler   *handlers.ItemHandler
	healthHandler *handlers.HealthHandler
}

func initializeApp(client *mongo.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	collection := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)

	// Repositories
	itemRepo := repositories.ItemRepository{Collection: collection}
	// Services
	itemService := &services.ItemService{ItemRepo: &itemRepo}
	// Handlers
	itemHandler := &handlers.ItemHandler{Service: itemService}
	healthHandler := &handlers.HealthHandler{Store: &itemRepo}

	return &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		itemHandler:   itemHandler,
		healthHandler: healthHandler,
	}
}

// openMongo establishes the process-wide Mongo client and verifies the
// deployment is reachable before any request is served.
func openMongo(cfg config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return nil, err
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("Failed to ping MongoDB: %v", err)
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Println("Successfully connected to database")
	return client, nil
}
