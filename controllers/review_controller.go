package controllers

import (
	"net/http"
	"strconv"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

func (rc *ReviewController) List(c *gin.Context) {
	var reviews []models.Review
	err := rc.DB.WithContext(c.Request.Context()).
		Preload("Usuario").
		Preload("Livro").
		Find(&reviews).Error
	if err != nil {
		abortWithServiceError(c, services.Fault("Erro ao buscar reviews", err))
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (rc *ReviewController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var review models.Review
	err = rc.DB.WithContext(c.Request.Context()).
		Preload("Usuario").
		Preload("Livro").
		First(&review, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Review não encontrada"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao buscar review", err))
		return
	}

	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) Create(c *gin.Context) {
	var input struct {
		Titulo    string `json:"titulo" binding:"required"`
		Conteudo  string `json:"conteudo" binding:"max=1000"`
		Nota      int    `json:"nota" binding:"required,min=1,max=5"`
		UsuarioID uint   `json:"usuarioId" binding:"required"`
		LivroID   uint   `json:"livroId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	var usuario models.Usuario
	if err := rc.DB.WithContext(c.Request.Context()).First(&usuario, input.UsuarioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Usuário não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao criar review", err))
		return
	}

	var livro models.Livro
	if err := rc.DB.WithContext(c.Request.Context()).First(&livro, input.LivroID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Livro não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao criar review", err))
		return
	}

	review := models.Review{
		Titulo:    input.Titulo,
		Conteudo:  input.Conteudo,
		Nota:      input.Nota,
		UsuarioID: input.UsuarioID,
		LivroID:   input.LivroID,
	}

	if err := rc.DB.WithContext(c.Request.Context()).Create(&review).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao criar review", err))
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var review models.Review
	if err := rc.DB.WithContext(c.Request.Context()).First(&review, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Review não encontrada"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao buscar review", err))
		return
	}

	if err := rc.DB.WithContext(c.Request.Context()).Delete(&review).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao excluir review", err))
		return
	}

	c.JSON(http.StatusOK, review)
}
