package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"foodhub_back_end/internal/database"
	"foodhub_back_end/internal/models"
)

const (
	FoodListKey = "foods:all"
	FoodListTTL = 10 * time.Minute
)

// GetFoodList récupère le catalogue depuis Redis.
// Retourne (nil, false) si Redis est absent ou sur cache miss.
func GetFoodList(ctx context.Context) ([]models.Food, bool) {
	if database.Redis == nil {
		return nil, false
	}

	data, err := database.Redis.Get(ctx, FoodListKey).Result()
	if err != nil {
		return nil, false
	}

	var foods []models.Food
	if err := json.Unmarshal([]byte(data), &foods); err != nil {
		// Entrée corrompue : on la purge et on repasse par Mongo
		database.Redis.Del(ctx, FoodListKey)
		return nil, false
	}
	return foods, true
}

// SetFoodList met le catalogue en cache
func SetFoodList(ctx context.Context, foods []models.Food) {
	if database.Redis == nil {
		return
	}

	data, err := json.Marshal(foods)
	if err != nil {
		return
	}
	if err := database.Redis.Set(ctx, FoodListKey, data, FoodListTTL).Err(); err != nil {
		log.Println("⚠️ Erreur écriture cache catalogue:", err)
	}
}

// InvalidateFoodList invalide le cache du catalogue (après ajout ou seed)
func InvalidateFoodList(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, FoodListKey)
}
