package admin

import (
	"context"
	"net/http"

	"creative-edge/internal/app/http/middleware"
	"creative-edge/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, identityID string) (bool, error)
}

type SessionDTO struct {
	SignedIn bool   `json:"signedIn"`
	UID      string `json:"uid,omitempty"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	Hint     string `json:"hint,omitempty"`
}

type Handler struct {
	gate AdminChecker
}

func NewHandler(gate AdminChecker) *Handler {
	return &Handler{gate: gate}
}

// Session reports who is signed in and whether the admin pages should open.
// Signed-out callers get 200 with signedIn=false so the page can offer login.
func (h *Handler) Session(c *gin.Context) {
	uid := c.GetString(middleware.CtxIdentityID)
	if uid == "" {
		c.JSON(http.StatusOK, SessionDTO{Hint: "Go to Admin Login"})
		return
	}

	ok, err := h.gate.IsAdmin(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.Describe(err, "Server error")})
		return
	}

	out := SessionDTO{
		SignedIn: true,
		UID:      uid,
		Email:    c.GetString(middleware.CtxEmail),
		IsAdmin:  ok,
	}
	if !ok {
		out.Hint = `Fix: create users/` + uid + ` with role: "admin".`
	}
	c.JSON(http.StatusOK, out)
}
