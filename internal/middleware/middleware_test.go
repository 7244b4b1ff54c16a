package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/auth"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/ratelimit"
)

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)

	r := ginext.New("test")
	r.GET("/ping", Auth(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)

	r := ginext.New("test")
	r.GET("/ping", Auth(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := do(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RoleGate(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	sellerToken, err := tokens.Issue(&domain.User{ID: "s1", Role: domain.RoleSeller, Name: "Alice"})
	require.NoError(t, err)

	r := ginext.New("test")
	r.GET("/ping", Auth(tokens, domain.RoleAdmin), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	w := do(r, sellerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ClaimsAvailableDownstream(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	sellerToken, err := tokens.Issue(&domain.User{ID: "s1", Role: domain.RoleSeller, Name: "Alice"})
	require.NoError(t, err)

	r := ginext.New("test")
	r.GET("/ping", Auth(tokens, domain.RoleSeller), func(c *ginext.Context) {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"id": claims.UserID})
	})

	w := do(r, sellerToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "s1")
}

func TestRequestLogger_LogsErrorKey(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	r := ginext.New("test")
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *ginext.Context) {
		c.Set("error", "boom")
		c.JSON(http.StatusBadRequest, ginext.H{"error": "boom"})
	})

	w := do(r, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimit_Returns429(t *testing.T) {
	limiter := ratelimit.New(2, time.Minute)

	r := ginext.New("test")
	r.Use(RateLimit(limiter))
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, "").Code)
}
