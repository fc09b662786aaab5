package middleware

import (
	"net/http"
	"strings"

	"github.com/brunorehling/api-emergente/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AdminAuth gates a route group behind a valid admin bearer token. The
// signing key is injected at startup rather than read from the environment
// per request.
func AdminAuth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token não informado"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token mal formatado"})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			c.Abort()
			return
		}

		adminID, ok := claims["adminLogadoId"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Token inválido"})
			c.Abort()
			return
		}

		nome, _ := claims["adminLogadoNome"].(string)
		nivel, _ := claims["adminLogadoNivel"].(float64)

		c.Set(string(utils.AdminContextKey), &utils.AdminClaims{
			AdminID: uint(adminID),
			Nome:    nome,
			Nivel:   int(nivel),
		})

		c.Next()
	}
}
