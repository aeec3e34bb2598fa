package repository

import (
	"context"

	"foodhub_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	// Insert écrit la commande une seule fois — jamais de mise à jour ensuite
	Insert(ctx context.Context, order *models.Order) error
	// FindByUserID retourne les commandes d'un utilisateur, récentes d'abord
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
}

type mongoOrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(col *mongo.Collection) OrderRepository {
	return &mongoOrderRepository{col: col}
}

func (r *mongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, order)
	return err
}

func (r *mongoOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
