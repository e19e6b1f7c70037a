package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(m.JWTAuth(), m.RoleRequired(auth.RoleAdmin))
	admin.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	guardian := router.Group("/guardian")
	guardian.Use(m.JWTAuth(), m.RoleRequired(auth.RoleGuardian))
	guardian.GET("/profile", func(c *gin.Context) {
		id, ok := GuardianID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"guardianId": id}))
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/admin/dashboard", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthWrongSigningKey(t *testing.T) {
	router, _ := newTestRouter(t)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	token, _, err := other.GenerateToken(auth.RoleAdmin, "Admin", "admin@example.com", nil)
	require.NoError(t, err)

	w := doRequest(router, "/admin/dashboard", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequiredWrongRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	guardianID := int64(7)
	token, _, err := jwtService.GenerateToken(auth.RoleGuardian, "Sara", "sara@example.com", &guardianID)
	require.NoError(t, err)

	w := doRequest(router, "/admin/dashboard", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
}

func TestRoleRequiredMatchingRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(auth.RoleAdmin, "Admin", "admin@example.com", nil)
	require.NoError(t, err)

	w := doRequest(router, "/admin/dashboard", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardianIDInContext(t *testing.T) {
	router, jwtService := newTestRouter(t)

	guardianID := int64(42)
	token, _, err := jwtService.GenerateToken(auth.RoleGuardian, "Sara", "sara@example.com", &guardianID)
	require.NoError(t, err)

	w := doRequest(router, "/guardian/profile", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			GuardianID int64 `json:"guardianId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, guardianID, resp.Data.GuardianID)
}
