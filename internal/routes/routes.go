package routes

import (
	"os"
	"time"

	"foodhub_back_end/internal/database"
	"foodhub_back_end/internal/handlers"
	"foodhub_back_end/internal/middleware"
	"foodhub_back_end/internal/repository"
	"foodhub_back_end/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	// AllowCredentials obligatoire : la session vit dans un cookie
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	users := repository.NewUserRepository(database.Mongo.Collection("users"))
	foods := repository.NewFoodRepository(database.Mongo.Collection("foods"))
	orders := repository.NewOrderRepository(database.Mongo.Collection("orders"))

	auth := handlers.NewAuthHandler(users)
	food := handlers.NewFoodHandler(foods)
	order := handlers.NewOrderHandler(orders, utils.SMTPSender{})
	image := handlers.NewImageHandler()

	// Auth
	r.POST("/auth/signup", auth.Signup)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/logout", auth.Logout)
	r.GET("/auth/me", middleware.AuthRequired(), auth.Me)

	// Catalogue
	r.GET("/food", food.GetFoods)
	r.GET("/food/search", food.SearchFoods)
	r.POST("/food", middleware.AuthRequired(), food.CreateFood)
	r.POST("/food/image", middleware.AuthRequired(), image.UploadFoodImage)

	// Commandes
	r.GET("/orders", middleware.AuthRequired(), order.GetMyOrders)
	r.POST("/orders", middleware.AuthRequired(), order.CreateOrder)

	// Seed
	r.POST("/seed", food.Seed)
}
