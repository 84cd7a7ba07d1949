package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const databaseName = "room_allocation"

type MongoDBConfig struct {
	URI string
}

func NewMongoDBConfig() *MongoDBConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI not set")
	}
	return &MongoDBConfig{URI: uri}
}

type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBClient(lc fx.Lifecycle, config *MongoDBConfig) (*MongoDBClient, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(config.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB")

	db := client.Database(databaseName)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			log.Println("MongoDB connection verified on startup")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Println("Closing MongoDB connection ...")
			return client.Disconnect(stopCtx)
		},
	})

	return &MongoDBClient{Client: client, Database: db}, db, nil
}

// EnsureUniqueIndex builds a unique ascending index on field, used for the
// rooms.name, courses.name and operators.username collections.
func EnsureUniqueIndex(db *mongo.Database, collection, field string) {
	model := mongo.IndexModel{
		Keys:    bson.M{field: 1},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		log.Fatalf("Failed to create unique index on %s.%s: %v", collection, field, err)
	}
	log.Printf("Unique index on %s.%s created successfully", collection, field)
}

// MongoModule wires the Mongo client for fx.New composition.
var MongoModule = fx.Module("mongo",
	fx.Provide(NewMongoDBConfig),
	fx.Provide(NewMongoDBClient),
)
