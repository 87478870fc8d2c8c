package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"immo-map/models"
	"immo-map/utils"
)

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	utils.Success("Connected to MongoDB")
	return &MongoStore{client: client, coll: client.Database(database).Collection("markers")}, nil
}

func (s *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		utils.Warn("mongo disconnect: %v", err)
	}
}

func (s *MongoStore) Create(ctx context.Context, m models.Marker) error {
	if _, err := s.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert marker: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.Marker, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find markers: %w", err)
	}

	markers := []models.Marker{}
	if err := cur.All(ctx, &markers); err != nil {
		return nil, fmt.Errorf("decode markers: %w", err)
	}
	return markers, nil
}
