package middleware

import (
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

// Abort stops the chain with a translated {"error": ...} body.
func Abort(c *gin.Context, status int, msgKey string) {
	c.AbortWithStatusJSON(status, apierrors.CreateError(status, msgKey, GetLang(c)))
}
