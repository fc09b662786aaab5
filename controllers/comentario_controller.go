package controllers

import (
	"net/http"
	"strconv"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ComentarioController struct {
	DB *gorm.DB
}

func NewComentarioController(db *gorm.DB) *ComentarioController {
	return &ComentarioController{DB: db}
}

func (cc *ComentarioController) ListByReview(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var comentarios []models.Comentario
	err = cc.DB.WithContext(c.Request.Context()).
		Where("review_id = ?", reviewID).
		Preload("Usuario").
		Order("created_at ASC").
		Find(&comentarios).Error
	if err != nil {
		abortWithServiceError(c, services.Fault("Erro ao buscar comentários", err))
		return
	}

	c.JSON(http.StatusOK, comentarios)
}

func (cc *ComentarioController) Create(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var input struct {
		Conteudo  string `json:"conteudo" binding:"required,max=500"`
		UsuarioID uint   `json:"usuarioId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	var review models.Review
	if err := cc.DB.WithContext(c.Request.Context()).First(&review, reviewID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Review não encontrada"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao criar comentário", err))
		return
	}

	var usuario models.Usuario
	if err := cc.DB.WithContext(c.Request.Context()).First(&usuario, input.UsuarioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Usuário não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao criar comentário", err))
		return
	}

	comentario := models.Comentario{
		Conteudo:  input.Conteudo,
		UsuarioID: input.UsuarioID,
		ReviewID:  review.ID,
	}

	if err := cc.DB.WithContext(c.Request.Context()).Create(&comentario).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao criar comentário", err))
		return
	}

	c.JSON(http.StatusCreated, comentario)
}
