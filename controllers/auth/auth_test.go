package authControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/auth"
	"github.com/seafresh/fishmarket-api/config"
	"github.com/seafresh/fishmarket-api/models"
	"github.com/seafresh/fishmarket-api/routes"
)

var testCfg = config.Config{JWTSecret: "test-secret"}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.FishItem{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db, testCfg)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, username, email, password string, role models.Role) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := models.User{Username: username, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "ayesha", "email": "ayesha@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Token    string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ayesha", resp.Username)
	require.NotEmpty(t, resp.Token)

	// The registration token must carry the role too.
	claims, err := auth.ParseToken(testCfg.JWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	w = doJSON(t, r, http.MethodGet, "/auth/profile", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, db := newRouter(t)
	seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "ayesha", "email": "other@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db := newRouter(t)
	seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "someoneelse", "email": "ayesha@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestLogin(t *testing.T) {
	r, db := newRouter(t)
	seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "ayesha@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Name  string      `json:"name"`
		Role  models.Role `json:"role"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ayesha", resp.Name)
	assert.Equal(t, models.RoleCustomer, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginBadPassword(t *testing.T) {
	r, db := newRouter(t)
	seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "ayesha@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRejectsTamperedToken(t *testing.T) {
	r, db := newRouter(t)
	user := seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	token, err := auth.IssueToken("some-other-secret", user)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/auth/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileGoneUser(t *testing.T) {
	r, db := newRouter(t)
	user := seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	token, err := auth.IssueToken(testCfg.JWTSecret, user)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	w := doJSON(t, r, http.MethodGet, "/auth/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminSurfaceForbiddenForCustomer(t *testing.T) {
	r, db := newRouter(t)
	customer := seedUser(t, db, "ayesha", "ayesha@example.com", "hunter22", models.RoleCustomer)

	token, err := auth.IssueToken(testCfg.JWTSecret, customer)
	require.NoError(t, err)

	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodGet, "/items/admin"},
		{http.MethodPost, "/items"},
	} {
		w := doJSON(t, r, probe.method, probe.path, token, gin.H{})
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", probe.method, probe.path)
	}
}

func TestAdminDashboard(t *testing.T) {
	r, db := newRouter(t)
	admin := seedUser(t, db, "boss", "boss@example.com", "hunter22", models.RoleAdmin)

	token, err := auth.IssueToken(testCfg.JWTSecret, admin)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users  int64 `json:"users"`
		Items  int64 `json:"items"`
		Orders int64 `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Users)
}
