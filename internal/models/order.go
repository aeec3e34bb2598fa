package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem est une copie de valeur du plat au moment de la commande.
// Pas de référence vivante vers le catalogue : une modification ultérieure
// du plat ne doit jamais altérer une commande passée.
type OrderItem struct {
	FoodID   string  `bson:"food_id" json:"foodId"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order est un enregistrement immuable, écrit une seule fois à la soumission.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	UserName   string             `bson:"user_name" json:"userName"`
	UserEmail  string             `bson:"user_email" json:"userEmail"`
	Items      []OrderItem        `bson:"items" json:"items"`
	TotalPrice float64            `bson:"total_price" json:"totalPrice"`
	OrderDate  time.Time          `bson:"order_date" json:"orderDate"`
}
