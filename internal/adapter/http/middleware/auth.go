package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/session"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

const userIDKey = "user_id"

// AuthMiddleware resolves the caller and requires that the id belongs to
// an existing user. Nothing downstream runs otherwise.
func AuthMiddleware(resolver session.Resolver, users ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.Resolve(c.Request)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				Abort(c, http.StatusUnauthorized, apierrors.MsgAuthRequired)
				return
			}
			Abort(c, http.StatusUnauthorized, apierrors.MsgInvalidUser)
			return
		}

		user, err := users.Lookup(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				Abort(c, http.StatusUnauthorized, apierrors.MsgInvalidUser)
				return
			}
			zap.L().Error("failed to resolve caller", zap.Uint64("user_id", userID), zap.Error(err))
			Abort(c, http.StatusInternalServerError, apierrors.MsgAuthError)
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok
}
