package controllers

import (
	"net/http"

	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
)

type DenunciaController struct {
	Reports *services.ReportWorkflow
}

func NewDenunciaController(reports *services.ReportWorkflow) *DenunciaController {
	return &DenunciaController{Reports: reports}
}

func (dc *DenunciaController) Create(c *gin.Context) {
	var input struct {
		ComentarioID uint   `json:"comentarioId" binding:"required"`
		UsuarioID    uint   `json:"usuarioId" binding:"required"`
		Motivo       string `json:"motivo" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	denuncia, err := dc.Reports.Create(c.Request.Context(), input.ComentarioID, input.UsuarioID, input.Motivo)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem": "Denúncia registrada com sucesso",
		"denuncia": denuncia,
	})
}

func (dc *DenunciaController) List(c *gin.Context) {
	denuncias, err := dc.Reports.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, denuncias)
}
