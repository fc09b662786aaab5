package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func statusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithServiceError renders a service failure. Faults are logged with
// full detail here and reach the client only as a generic message.
func abortWithServiceError(c *gin.Context, err error) {
	if services.KindOf(err) == services.KindFault {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(statusFor(err), gin.H{"erro": services.MessageOf(err)})
}

// bindErrors shapes a binding failure: per-field messages when the validator
// can decompose it, a single message otherwise.
func bindErrors(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Error()
		}
		return gin.H{"erros": fields}
	}
	return gin.H{"erro": err.Error()}
}
