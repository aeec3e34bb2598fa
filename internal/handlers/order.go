package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"foodhub_back_end/internal/cart"
	"foodhub_back_end/internal/models"
	"foodhub_back_end/internal/repository"
	"foodhub_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders repository.OrderRepository
	mailer utils.MailSender
}

func NewOrderHandler(orders repository.OrderRepository, mailer utils.MailSender) *OrderHandler {
	return &OrderHandler{orders: orders, mailer: mailer}
}

// GET /orders — les commandes de l'utilisateur connecté, récentes d'abord
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := h.orders.FindByUserID(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur récupération commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// POST /orders — soumission du panier
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Items      []models.OrderItem `json:"items"`
		TotalPrice float64            `json:"totalPrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	// Un panier légitime ne contient jamais d'entrée sans plat ni de
	// quantité < 1 (quantité 0 = suppression côté client)
	for _, item := range input.Items {
		if item.FoodID == "" || item.Name == "" || item.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item"})
			return
		}
	}

	// Le total est recalculé côté serveur à partir des lignes : le montant
	// envoyé par le client n'est jamais pris pour argent comptant
	basket := cart.FromItems(toCartItems(input.Items))
	serverTotal := basket.TotalPrice()
	if math.Abs(serverTotal-input.TotalPrice) > 0.009 {
		log.Printf("⚠️ Total client (%.2f) ≠ total serveur (%.2f) pour user %s — le total serveur fait foi",
			input.TotalPrice, serverTotal, userID)
	}

	order := models.Order{
		UserID:     userID,
		UserName:   c.GetString("name"),
		UserEmail:  c.GetString("email"),
		Items:      input.Items,
		TotalPrice: serverTotal,
		OrderDate:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.orders.Insert(ctx, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("🧾 Commande %s enregistrée : %d article(s), %.2f$",
		order.ID.Hex(), basket.TotalItems(), order.TotalPrice)

	// Notification best effort : un échec est loggé, la commande reste validée
	if err := h.mailer.SendOrderConfirmation(utils.OrderEmail{
		UserName:   order.UserName,
		UserEmail:  order.UserEmail,
		Items:      order.Items,
		TotalPrice: order.TotalPrice,
		OrderDate:  order.OrderDate,
	}); err != nil {
		log.Println("⚠️ Échec envoi email de confirmation:", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"message": "Order placed successfully!",
	})
}

func toCartItems(items []models.OrderItem) []cart.Item {
	out := make([]cart.Item, 0, len(items))
	for _, item := range items {
		out = append(out, cart.Item{
			FoodID:   item.FoodID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: item.Quantity,
		})
	}
	return out
}
