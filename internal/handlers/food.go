package handlers

import (
	"context"
	"net/http"
	"time"

	"foodhub_back_end/internal/cache"
	"foodhub_back_end/internal/models"
	"foodhub_back_end/internal/repository"
	"foodhub_back_end/internal/service"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	foods repository.FoodRepository
}

func NewFoodHandler(foods repository.FoodRepository) *FoodHandler {
	return &FoodHandler{foods: foods}
}

// GET /food — catalogue complet, du plus récent au plus ancien
func (h *FoodHandler) GetFoods(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if foods, ok := cache.GetFoodList(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"foods": foods})
		return
	}

	foods, err := h.foods.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.SetFoodList(ctx, foods)
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// POST /food — ajout au catalogue (identité requise)
func (h *FoodHandler) CreateFood(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Image       string  `json:"image"`
		Category    string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if input.Name == "" || input.Description == "" || input.Price <= 0 ||
		input.Image == "" || input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	food := models.Food{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		AddedBy:     userID,
		CreatedAt:   time.Now(),
	}
	if err := h.foods.Insert(ctx, &food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	service.IndexFood(food)
	cache.InvalidateFoodList(ctx)

	c.JSON(http.StatusCreated, gin.H{
		"food":    food,
		"message": "Food added successfully",
	})
}

// GET /food/search?q= — recherche plein texte via Elasticsearch
func (h *FoodHandler) SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	results, err := service.SearchFoods(query)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": results})
}
