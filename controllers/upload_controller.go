package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/brunorehling/api-emergente/config"
	"github.com/brunorehling/api-emergente/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadController hands out presigned PUT URLs for book cover images. The
// client uploads directly to object storage and stores the returned public
// URL in Livro.Foto.
type UploadController struct {
	R2Client *s3.Client
	R2Config *config.R2Config
}

type CapaUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type CapaUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController() *UploadController {
	cfg := config.GetR2Config()
	return &UploadController{
		R2Client: config.NewR2Client(cfg),
		R2Config: cfg,
	}
}

func (uc *UploadController) GetCapaUploadURL(c *gin.Context) {
	admin := utils.GetAdmin(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": "Admin não autenticado"})
		return
	}

	var req CapaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	if !isValidCapaFile(req.ContentType, req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Arquivo de capa inválido"})
		return
	}

	key := generateCapaKey(admin.AdminID, req.FileName)

	uploadURL, err := uc.createPresignedURL(c, key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao gerar URL de upload"})
		return
	}

	c.JSON(http.StatusOK, CapaUploadResponse{
		UploadURL: uploadURL,
		FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
		Key:       key,
		ExpiresIn: 3600,
	})
}

func isValidCapaFile(contentType string, fileSize int64) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp",
	}

	validType := false
	for _, validContentType := range validTypes {
		if contentType == validContentType {
			validType = true
			break
		}
	}
	if !validType {
		return false
	}

	return fileSize <= 10*1024*1024
}

func generateCapaKey(adminID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	timestamp := time.Now().Unix()
	return fmt.Sprintf("capas/%d/%d_%s%s", adminID, timestamp, uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(c *gin.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(c.Request.Context(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
