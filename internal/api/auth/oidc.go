package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"time"

	"creative-edge/config"
	"creative-edge/internal/infra/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const stateCookie = "oauth_state"

const SessionTTL = 24 * time.Hour

func oauthConfig(provider *oidc.Provider) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.OIDC_CLIENT_ID,
		ClientSecret: config.OIDC_CLIENT_SECRET,
		RedirectURL:  config.OIDC_REDIRECT_URL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     provider.Endpoint(),
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/login
func Login(c *gin.Context) {
	if config.OIDC_ISSUER_URL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "identity provider not configured"})
		return
	}

	provider, err := oidc.NewProvider(c.Request.Context(), config.OIDC_ISSUER_URL)
	if err != nil {
		logger.L.Error("oidc discovery failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to reach identity provider"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	c.SetCookie(stateCookie, state, 300, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, oauthConfig(provider).AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// GET /auth/callback
func Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie(stateCookie)
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", c.Request.TLS != nil, true)

	ctx := c.Request.Context()
	provider, err := oidc.NewProvider(ctx, config.OIDC_ISSUER_URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to reach identity provider"})
		return
	}

	tok, err := oauthConfig(provider).Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := verifyIDToken(c, provider, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	tokenString, err := IssueSessionToken(claims.Sub, claims.Email, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	logger.L.Info("admin sign-in", zap.String("uid", claims.Sub))

	redirect := config.ADMIN_FRONTEND_REDIRECT
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": tokenString, "uid": claims.Sub})
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+url.QueryEscape(tokenString))
}

type idClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

func verifyIDToken(c *gin.Context, provider *oidc.Provider, rawIDToken string) (*idClaims, error) {
	verifier := provider.Verifier(&oidc.Config{ClientID: config.OIDC_CLIENT_ID})

	idToken, err := verifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims idClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}
	if claims.Sub == "" {
		return nil, errors.New("token missing subject")
	}
	return &claims, nil
}

// IssueSessionToken signs the app's own HS256 session for an identity. The
// identity provider's subject is the id the role records are keyed by.
func IssueSessionToken(sub, email string, now time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(SessionTTL).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}
