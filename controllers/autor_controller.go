package controllers

import (
	"net/http"
	"strconv"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AutorController struct {
	DB *gorm.DB
}

func NewAutorController(db *gorm.DB) *AutorController {
	return &AutorController{DB: db}
}

func (ac *AutorController) List(c *gin.Context) {
	var autores []models.Autor
	if err := ac.DB.WithContext(c.Request.Context()).Find(&autores).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao buscar autores", err))
		return
	}
	c.JSON(http.StatusOK, autores)
}

func (ac *AutorController) Create(c *gin.Context) {
	var input struct {
		Nome string `json:"nome" binding:"required,max=45"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	autor := models.Autor{Nome: input.Nome}
	if err := ac.DB.WithContext(c.Request.Context()).Create(&autor).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao criar autor", err))
		return
	}

	c.JSON(http.StatusCreated, autor)
}

func (ac *AutorController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var autor models.Autor
	if err := ac.DB.WithContext(c.Request.Context()).First(&autor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Autor não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao buscar autor", err))
		return
	}

	if err := ac.DB.WithContext(c.Request.Context()).Delete(&autor).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao excluir autor", err))
		return
	}

	c.JSON(http.StatusOK, autor)
}
