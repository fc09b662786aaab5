package controllers

import (
	"net/http"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// List is bearer-gated; hashes never serialize.
func (ac *AdminController) List(c *gin.Context) {
	var admins []models.Admin
	if err := ac.DB.WithContext(c.Request.Context()).Find(&admins).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao buscar admins", err))
		return
	}
	c.JSON(http.StatusOK, admins)
}
