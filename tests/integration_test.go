package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"pos_inventory/api"
	"pos_inventory/internal/config"
	"pos_inventory/internal/db"
	"pos_inventory/internal/products"
	"pos_inventory/internal/sales"
	"pos_inventory/internal/users"
)

// initTestRouter wires the full HTTP surface against the in-memory
// storages and seeds one admin account.
func initTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	userStore := users.NewLocalStorage()
	productStore := products.NewLocalStorage()
	saleStore := sales.NewLocalStorage()
	tx := db.NewLocalTxManager(saleStore, productStore, userStore)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), &users.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         users.RoleAdmin,
	}))

	cfg := config.Config{JWTSecret: "integration-test-secret"}
	api.InitRoutesWithStorage(router, userStore, productStore, saleStore, tx, cfg, zaptest.NewLogger(t))
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSalesAPI_FullFlow(t *testing.T) {
	router := initTestRouter(t)

	// register a customer and log both accounts in
	w := doJSON(router, http.MethodPost, "/api/v1/register", "", map[string]string{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	adminToken := login(t, router, "admin@example.com", "admin123")
	customerToken := login(t, router, "ana@example.com", "secret123")

	// product creation is admin-only
	w = doJSON(router, http.MethodPost, "/api/v1/products", customerToken, map[string]any{
		"name": "keyboard", "price": 10.0, "quantity": 5,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/products", adminToken, map[string]any{
		"name":        "keyboard",
		"description": "mechanical keyboard",
		"price":       10.0,
		"quantity":    5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var productResp struct {
		Data products.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productResp))
	productID := productResp.Data.ID

	// the customer buys 3 of the 5 in stock
	w = doJSON(router, http.MethodPost, "/api/v1/sales", customerToken, map[string]any{
		"lines": []map[string]any{{"productId": productID, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var saleResp struct {
		Data sales.SaleView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saleResp))
	assert.Equal(t, 30.0, saleResp.Data.Total)
	require.Len(t, saleResp.Data.Lines, 1)
	assert.Equal(t, "mechanical keyboard", saleResp.Data.Lines[0].Description)
	assert.Equal(t, "ana@example.com", saleResp.Data.User.Email)
	saleID := saleResp.Data.SaleID

	// stock is down to 2, so a request for 5 is rejected
	w = doJSON(router, http.MethodPost, "/api/v1/sales", customerToken, map[string]any{
		"lines": []map[string]any{{"productId": productID, "quantity": 5}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")

	// unknown product is a 404
	w = doJSON(router, http.MethodPost, "/api/v1/sales", customerToken, map[string]any{
		"lines": []map[string]any{{"productId": 999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the customer sees their sale, the admin sees it too
	w = doJSON(router, http.MethodGet, "/api/v1/sales", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []sales.Sale `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, saleID, listResp.Data[0].ID)

	w = doJSON(router, http.MethodGet, "/api/v1/sales", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Data, 1)

	// cancelling restores the stock
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/sales/%d", saleID), customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/products", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var productsResp struct {
		Data []products.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productsResp))
	require.Len(t, productsResp.Data, 1)
	assert.Equal(t, 5, productsResp.Data[0].Quantity)

	// a second cancel of the same sale is a 404, not a silent success
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/sales/%d", saleID), customerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSalesAPI_AuthRequired(t *testing.T) {
	router := initTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/products", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSalesAPI_CancelForbiddenForNonOwner(t *testing.T) {
	router := initTestRouter(t)

	for _, u := range []map[string]string{
		{"name": "Ana", "email": "ana@example.com", "password": "secret123"},
		{"name": "Bob", "email": "bob@example.com", "password": "secret456"},
	} {
		w := doJSON(router, http.MethodPost, "/api/v1/register", "", u)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	adminToken := login(t, router, "admin@example.com", "admin123")
	anaToken := login(t, router, "ana@example.com", "secret123")
	bobToken := login(t, router, "bob@example.com", "secret456")

	w := doJSON(router, http.MethodPost, "/api/v1/products", adminToken, map[string]any{
		"name": "keyboard", "price": 10.0, "quantity": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/sales", anaToken, map[string]any{
		"lines": []map[string]any{{"productId": 1, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var saleResp struct {
		Data sales.SaleView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saleResp))

	path := fmt.Sprintf("/api/v1/sales/%d", saleResp.Data.SaleID)
	w = doJSON(router, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSalesAPI_RegisterValidation(t *testing.T) {
	router := initTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/register", "", map[string]string{
		"name": "Ana", "email": "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/register", "", map[string]string{
		"name": "Ana", "email": "admin@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}
