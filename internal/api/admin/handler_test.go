package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"creative-edge/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAdminChecker struct {
	mock.Mock
}

func (m *MockAdminChecker) IsAdmin(ctx context.Context, identityID string) (bool, error) {
	args := m.Called(ctx, identityID)
	return args.Bool(0), args.Error(1)
}

func sessionRouter(gate AdminChecker, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/session", func(c *gin.Context) {
		if uid != "" {
			c.Set(middleware.CtxIdentityID, uid)
			c.Set(middleware.CtxEmail, "owner@example.com")
		}
	}, NewHandler(gate).Session)
	return r
}

func TestSession(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		w := httptest.NewRecorder()
		sessionRouter(new(MockAdminChecker), "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/session", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"signedIn":false,"isAdmin":false,"hint":"Go to Admin Login"}`, w.Body.String())
	})

	t.Run("not admin", func(t *testing.T) {
		gate := new(MockAdminChecker)
		gate.On("IsAdmin", mock.Anything, "uid-1").Return(false, nil).Once()

		w := httptest.NewRecorder()
		sessionRouter(gate, "uid-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/session", nil))

		assert.JSONEq(t, `{"signedIn":true,"uid":"uid-1","email":"owner@example.com","isAdmin":false,
			"hint":"Fix: create users/uid-1 with role: \"admin\"."}`, w.Body.String())
	})

	t.Run("admin", func(t *testing.T) {
		gate := new(MockAdminChecker)
		gate.On("IsAdmin", mock.Anything, "uid-1").Return(true, nil).Once()

		w := httptest.NewRecorder()
		sessionRouter(gate, "uid-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/session", nil))

		assert.JSONEq(t, `{"signedIn":true,"uid":"uid-1","email":"owner@example.com","isAdmin":true}`, w.Body.String())
	})
}
