package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"opticpro-backend/config"
	"opticpro-backend/models"
	"opticpro-backend/routes"
	"opticpro-backend/services"
	"opticpro-backend/utils"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	testDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(
		&models.Customer{},
		&models.Prescription{},
		&models.Order{},
		&models.Account{},
		&models.Role{},
	))

	originalDB := config.DB
	config.DB = testDB
	t.Cleanup(func() { config.DB = originalDB })

	require.NoError(t, services.NewAccountService(testDB).EnsureSeed(&config.Settings{}))

	return routes.SetupRouter()
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken("00000000-0000-0000-0000-000000000001", "tester", role)
	require.NoError(t, err)
	return token
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCustomerEndpointsRequireAuth(t *testing.T) {
	router := setupTestRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateAndSearchCustomer(t *testing.T) {
	router := setupTestRouter(t)
	token := tokenForRole(t, models.RoleUser)

	resp := performRequest(router, http.MethodPost, "/api/customers", token, gin.H{
		"name":   "Jamie Park",
		"phone":  "(404) 555-0134",
		"street": "12 Peachtree St",
		"city":   "Atlanta",
		"state":  "GA",
		"zip":    "30303",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created services.CustomerView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "4045550134", created.Phone)

	resp = performRequest(router, http.MethodGet, "/api/customers?name=jamie", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var found []services.CustomerView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)
}

func TestCreateCustomerRejectsBadPhone(t *testing.T) {
	router := setupTestRouter(t)
	token := tokenForRole(t, models.RoleUser)

	resp := performRequest(router, http.MethodPost, "/api/customers", token, gin.H{
		"name":  "Short Phone",
		"phone": "555-0134",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "phone")
}

func TestGetCustomerNotFound(t *testing.T) {
	router := setupTestRouter(t)
	token := tokenForRole(t, models.RoleUser)

	resp := performRequest(router, http.MethodGet,
		"/api/customers/3f1b8f0a-1111-2222-3333-444455556666", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAdminRoutesAreRoleGated(t *testing.T) {
	router := setupTestRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/admin/accounts",
		tokenForRole(t, models.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/admin/accounts",
		tokenForRole(t, models.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestLoginFlow(t *testing.T) {
	router := setupTestRouter(t)

	_, err := services.NewAccountService(config.DB).
		Create("manager", "manager@example.com", "pass-word-123", models.RoleManager)
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"userName": "manager",
		"password": "pass-word-123",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Token   string `json:"token"`
		Account struct {
			UserName string `json:"userName"`
			Role     string `json:"role"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, models.RoleManager, body.Account.Role)

	resp = performRequest(router, http.MethodGet, "/auth/me", body.Token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "manager")

	resp = performRequest(router, http.MethodPost, "/auth/login", "", gin.H{
		"userName": "manager",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
