package utils

import (
	"github.com/gin-gonic/gin"
)

// AdminClaims carries the identity of the authenticated administrator as
// extracted from the bearer token.
type AdminClaims struct {
	AdminID uint   `json:"adminId"`
	Nome    string `json:"nome"`
	Nivel   int    `json:"nivel"`
}

type contextKey string

const AdminContextKey contextKey = "admin"

func GetAdmin(c *gin.Context) *AdminClaims {
	admin, exists := c.Get(string(AdminContextKey))
	if !exists {
		return nil
	}
	if claims, ok := admin.(*AdminClaims); ok {
		return claims
	}
	return nil
}
