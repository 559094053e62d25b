package middleware

import (
	"context"
	"fmt"
	"net/http"

	"creative-edge/internal/apperrors"
	"creative-edge/internal/infra/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, identityID string) (bool, error)
}

const (
	MsgNotSignedIn = "You are not signed in."
	MsgNotAdmin    = "This account is not an admin."
)

// RequireAdmin must run after AuthMiddleware. The role record is read on
// every request.
func RequireAdmin(gate AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(CtxIdentityID)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": MsgNotSignedIn,
				"hint":  "Go to Admin Login",
				"login": "/auth/login",
			})
			return
		}

		ok, err := gate.IsAdmin(c.Request.Context(), uid)
		if err != nil {
			logger.L.Error("admin check failed", zap.String("uid", uid), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": apperrors.Describe(err, "Server error"),
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"ok":    false,
				"error": MsgNotAdmin,
				"hint":  fmt.Sprintf(`Fix: create users/%s with role: "admin".`, uid),
				"uid":   uid,
			})
			return
		}

		c.Next()
	}
}
