package controllers

import (
	"net/http"

	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input loginInput
	// A malformed body gets the same generic rejection as bad credentials.
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": services.MensagemLoginIncorreto})
		return
	}

	session, err := ac.Auth.LoginAdmin(c.Request.Context(), input.Email, input.Senha)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (ac *AuthController) UsuarioLogin(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": services.MensagemLoginIncorreto})
		return
	}

	session, err := ac.Auth.LoginUsuario(c.Request.Context(), input.Email, input.Senha)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
