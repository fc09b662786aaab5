package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/services"
	"github.com/brunorehling/api-emergente/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UsuarioController struct {
	DB    *gorm.DB
	Creds *services.CredentialStore
}

func NewUsuarioController(db *gorm.DB, creds *services.CredentialStore) *UsuarioController {
	return &UsuarioController{DB: db, Creds: creds}
}

func (uc *UsuarioController) Create(c *gin.Context) {
	var input struct {
		Nome  string `json:"nome" binding:"required,max=45"`
		Email string `json:"email" binding:"required,max=45"`
		Senha string `json:"senha" binding:"required,min=6,max=60"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	// Composition rules run after the schema bounds and report every
	// violation at once, joined into a single message.
	if mensagens := utils.ValidaSenha(input.Senha); len(mensagens) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": strings.Join(mensagens, "; ")})
		return
	}

	usuario, err := uc.Creds.CreateUsuario(c.Request.Context(), input.Nome, input.Email, input.Senha)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, usuario)
}

func (uc *UsuarioController) List(c *gin.Context) {
	var usuarios []models.Usuario
	if err := uc.DB.WithContext(c.Request.Context()).Find(&usuarios).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao buscar usuários", err))
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (uc *UsuarioController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var usuario models.Usuario
	if err := uc.DB.WithContext(c.Request.Context()).First(&usuario, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Usuário não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao buscar usuário", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        usuario.ID,
		"nome":      usuario.Nome,
		"createdAt": usuario.CreatedAt,
		"updatedAt": usuario.UpdatedAt,
	})
}
