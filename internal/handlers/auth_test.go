package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/login", Login)
	r.POST("/api/change-password", ChangePassword)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginDefaultPassword(t *testing.T) {
	r := authRouter()

	w := postJSON(t, r, "/api/login", `{"password":"admin123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestLoginWrongPassword(t *testing.T) {
	r := authRouter()

	w := postJSON(t, r, "/api/login", `{"password":"yanlış"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Hatalı şifre")
}

func TestLoginMissingPassword(t *testing.T) {
	r := authRouter()

	w := postJSON(t, r, "/api/login", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	r := authRouter()

	w := postJSON(t, r, "/api/change-password", `{"currentPassword":"yanlış","newPassword":"yenisifre"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordTooShort(t *testing.T) {
	r := authRouter()

	w := postJSON(t, r, "/api/change-password", `{"currentPassword":"admin123","newPassword":"123"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "en az 6 karakter")
}
