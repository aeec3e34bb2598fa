package repository

import (
	"context"

	"foodhub_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodRepository interface {
	// FindAll retourne le catalogue complet, du plus récent au plus ancien
	FindAll(ctx context.Context) ([]models.Food, error)
	Insert(ctx context.Context, food *models.Food) error
	InsertMany(ctx context.Context, foods []models.Food) error
	Count(ctx context.Context) (int64, error)
}

type mongoFoodRepository struct {
	col *mongo.Collection
}

func NewFoodRepository(col *mongo.Collection) FoodRepository {
	return &mongoFoodRepository{col: col}
}

func (r *mongoFoodRepository) FindAll(ctx context.Context) ([]models.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *mongoFoodRepository) Insert(ctx context.Context, food *models.Food) error {
	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, food)
	return err
}

func (r *mongoFoodRepository) InsertMany(ctx context.Context, foods []models.Food) error {
	docs := make([]interface{}, 0, len(foods))
	for i := range foods {
		if foods[i].ID.IsZero() {
			foods[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, foods[i])
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *mongoFoodRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
