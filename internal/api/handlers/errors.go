// server/internal/api/handlers/errors.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"waste-management-api-server/internal/apperr"
)

// respondError writes {"error": message} with the status of the error kind
// and attaches err to the context for the access log.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	kind := apperr.KindOf(err)
	c.JSON(apperr.HTTPStatus(kind), gin.H{"error": apperr.MessageOf(err)})
}

func badRequest(c *gin.Context, err error) {
	respondError(c, apperr.InvalidInput(err.Error()))
}
