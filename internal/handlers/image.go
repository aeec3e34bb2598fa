package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"foodhub_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

type ImageHandler struct{}

func NewImageHandler() *ImageHandler {
	return &ImageHandler{}
}

// POST /food/image — upload d'une image de plat vers MinIO.
// Retourne l'URL publique à renseigner dans le champ image du plat.
func (h *ImageHandler) UploadFoodImage(c *gin.Context) {
	if database.MinIO == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image upload unavailable"})
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file received"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "foodhub-images"
	}

	// Nom unique du fichier
	objectName := fmt.Sprintf("foods/%d%s", time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, file, fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": publicImageURL(bucket, objectName)})
}

func publicImageURL(bucket, objectName string) string {
	base := os.Getenv("MINIO_PUBLIC_URL")
	if base == "" {
		scheme := "http"
		if os.Getenv("MINIO_USE_SSL") == "true" {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, os.Getenv("MINIO_ENDPOINT"))
	}
	return fmt.Sprintf("%s/%s/%s", base, bucket, objectName)
}
