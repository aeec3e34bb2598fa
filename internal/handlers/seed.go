package handlers

import (
	"context"
	"net/http"
	"time"

	"foodhub_back_end/internal/cache"
	"foodhub_back_end/internal/models"
	"foodhub_back_end/internal/service"

	"github.com/gin-gonic/gin"
)

// POST /seed — idempotent : n'insère le catalogue fixe que si la
// collection est vide. Retourne le compte dans les deux cas.
func (h *FoodHandler) Seed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	count, err := h.foods.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Database already seeded", "count": count})
		return
	}

	foods := defaultFoods()
	if err := h.foods.InsertMany(ctx, foods); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, food := range foods {
		service.IndexFood(food)
	}
	cache.InvalidateFoodList(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully", "count": len(foods)})
}

// Catalogue de démarrage
func defaultFoods() []models.Food {
	now := time.Now()
	return []models.Food{
		{
			Name:        "Margherita Pizza",
			Description: "Classic pizza with fresh mozzarella, basil, and tomato sauce on a crispy crust",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1604382355076-af4b0eb60143?w=600&h=400&fit=crop",
			Category:    "Pizza",
			CreatedAt:   now,
		},
		{
			Name:        "Classic Burger",
			Description: "Juicy beef patty with lettuce, tomato, cheese, and special sauce",
			Price:       9.99,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=600&h=400&fit=crop",
			Category:    "Burgers",
			CreatedAt:   now,
		},
		{
			Name:        "Caesar Salad",
			Description: "Crisp romaine lettuce with parmesan, croutons, and creamy caesar dressing",
			Price:       8.49,
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=600&h=400&fit=crop",
			Category:    "Salads",
			CreatedAt:   now,
		},
		{
			Name:        "Chicken Biryani",
			Description: "Aromatic basmati rice layered with spiced chicken and caramelized onions",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=600&h=400&fit=crop",
			Category:    "Indian",
			CreatedAt:   now,
		},
		{
			Name:        "Sushi Platter",
			Description: "Assorted fresh sushi rolls with salmon, tuna, and avocado",
			Price:       18.99,
			Image:       "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=600&h=400&fit=crop",
			Category:    "Japanese",
			CreatedAt:   now,
		},
		{
			Name:        "Pasta Carbonara",
			Description: "Creamy Italian pasta with pancetta, egg yolk, and pecorino romano",
			Price:       13.49,
			Image:       "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=600&h=400&fit=crop",
			Category:    "Italian",
			CreatedAt:   now,
		},
		{
			Name:        "Tacos Al Pastor",
			Description: "Marinated pork tacos with pineapple, cilantro, and onion on corn tortillas",
			Price:       10.99,
			Image:       "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=600&h=400&fit=crop",
			Category:    "Mexican",
			CreatedAt:   now,
		},
		{
			Name:        "Pad Thai",
			Description: "Stir-fried rice noodles with shrimp, peanuts, bean sprouts, and tamarind sauce",
			Price:       11.99,
			Image:       "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=600&h=400&fit=crop",
			Category:    "Thai",
			CreatedAt:   now,
		},
	}
}
