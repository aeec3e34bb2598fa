package utils

import "golang.org/x/crypto/bcrypt"

// Coût bcrypt aligné sur l'inscription d'origine
const bcryptCost = 12

// HashPassword hash un mot de passe avec bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword vérifie un mot de passe contre son hash (temps constant)
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
