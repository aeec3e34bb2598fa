package middleware

import (
	"net/http"

	"foodhub_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie porte le credential d'identité signé.
// http-only : le JS du front n'y touche jamais.
const SessionCookie = "token"

// AuthRequired résout la session depuis le cookie. Cookie absent ou token
// invalide (malformé, expiré, falsifié) → même réponse 401, on ne donne
// aucun détail au client. En cas de succès, l'identité est posée dans le
// contexte Gin. Lecture seule, aucun effet de bord.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		payload, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("user_id", payload.UserID)
		c.Set("email", payload.Email)
		c.Set("name", payload.Name)

		c.Next()
	}
}
