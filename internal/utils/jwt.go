package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPayload est l'identité encodée dans le credential signé.
// Pas de session côté serveur : le token valide EST la session.
type TokenPayload struct {
	UserID string
	Email  string
	Name   string
}

// Durée de vie du credential (7 jours, comme le cookie)
const TokenLifetime = 7 * 24 * time.Hour

// ErrInvalidToken couvre uniformément token malformé, expiré ou falsifié.
// Les appelants n'ont jamais besoin de distinguer les trois cas.
var ErrInvalidToken = errors.New("token invalide ou expiré")

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "food-order-secret-key"
	}
	return []byte(secret)
}

func GenerateToken(payload TokenPayload) (string, error) {
	claims := jwt.MapClaims{
		"user_id": payload.UserID,
		"email":   payload.Email,
		"name":    payload.Name,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func VerifyToken(tokenString string) (*TokenPayload, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &TokenPayload{UserID: userID, Email: email, Name: name}, nil
}
