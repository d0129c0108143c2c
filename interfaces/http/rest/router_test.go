package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-api/application/services"
	"catalog-api/infrastructure/config"
	"catalog-api/infrastructure/messaging/eventbridge"
	"catalog-api/infrastructure/persistence/memory"
	"catalog-api/infrastructure/persistence/repositories"
	apperrors "catalog-api/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.Config{
		Environment:     "test",
		DynamoDBTable:   "products_catalog",
		DefaultPageSize: 50,
		MaxPageSize:     100,
		EnableCORS:      false,
	}

	store := memory.NewStore()
	brandRepo := repositories.NewBrandRepository(store, logger)
	categoryRepo := repositories.NewCategoryRepository(store, logger)
	productRepo := repositories.NewProductRepository(store, brandRepo, categoryRepo, logger)

	pagination := services.Pagination{DefaultLimit: cfg.DefaultPageSize, MaxLimit: cfg.MaxPageSize}
	publisher := eventbridge.NoopPublisher{}

	router := NewRouter(
		services.NewBrandService(brandRepo, pagination, logger),
		services.NewCategoryService(categoryRepo, pagination, logger),
		services.NewProductService(productRepo, publisher, pagination, logger),
		apperrors.NewErrorHandler(logger, false),
		cfg,
		logger,
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// errorCode pulls the code out of the error envelope, asserting the
// response uses the standard shape.
func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	require.Equal(t, false, body["success"])
	errInfo, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	code, _ := errInfo["code"].(string)
	return code
}

func createBrand(t *testing.T, srv *httptest.Server, name string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/brands", map[string]interface{}{
		"name":        name,
		"description": "Hand tools and workshop supplies",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["data"].(map[string]interface{})["brand_id"].(string)
}

func createCategory(t *testing.T, srv *httptest.Server, name string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/categories", map[string]interface{}{
		"name":        name,
		"description": "Drills, saws and other powered equipment",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["data"].(map[string]interface{})["category_id"].(string)
}

func createProduct(t *testing.T, srv *httptest.Server, name, brandID, categoryID string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", map[string]interface{}{
		"name":           name,
		"brand_id":       brandID,
		"category_id":    categoryID,
		"price":          149.99,
		"stock_quantity": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["data"].(map[string]interface{})["product_id"].(string)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestBrandEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("create returns the stored item", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/brands", map[string]interface{}{
			"name":        "Acme Tools",
			"description": "Hand tools and workshop supplies",
			"website":     "https://acme.example",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Acme Tools", data["name"])
		assert.NotEmpty(t, data["brand_id"])
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/brands", map[string]interface{}{
			"name":        "ACME tools",
			"description": "A different description altogether",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "DUPLICATE", errorCode(t, body))
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/brands", map[string]interface{}{
			"name":        "X",
			"description": "Hand tools and workshop supplies",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION", errorCode(t, body))
	})

	t.Run("unknown body fields are rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/brands", map[string]interface{}{
			"name":        "Volt Electric",
			"description": "Cordless power tools and batteries",
			"bogus":       true,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get with malformed id", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/v1/brands/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get absent brand", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/brands/11111111-1111-4111-8111-111111111111", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(t, body))
	})

	t.Run("update and delete", func(t *testing.T) {
		brandID := createBrand(t, srv, "Northwood")

		resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/v1/brands/"+brandID, map[string]interface{}{
			"description": "Workbenches, storage and shop furniture",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Workbenches, storage and shop furniture", data["description"])

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/brands/"+brandID, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/brands/"+brandID, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestBrandListPagination(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"Cherry Co", "Apple Co", "Banana Co"} {
		createBrand(t, srv, name)
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/brands?limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "Apple Co", items[0].(map[string]interface{})["name"])
	assert.Equal(t, "Banana Co", items[1].(map[string]interface{})["name"])

	token, ok := data["next_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/v1/brands?limit=2&next_token="+token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	items = data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Cherry Co", items[0].(map[string]interface{})["name"])
	assert.Nil(t, data["next_token"])
}

func TestProductEndpoints(t *testing.T) {
	srv := newTestServer(t)
	brandID := createBrand(t, srv, "Acme Tools")
	categoryID := createCategory(t, srv, "Power Tools")

	t.Run("create rejects unknown brand", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", map[string]interface{}{
			"name":        "Cordless Drill",
			"brand_id":    "99999999-9999-4999-8999-999999999999",
			"category_id": categoryID,
			"price":       149.99,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	productID := createProduct(t, srv, "Cordless Drill", brandID, categoryID)

	t.Run("get returns normalized numbers", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/"+productID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, 149.99, data["price"])
		assert.Equal(t, float64(10), data["stock_quantity"])
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		createProduct(t, srv, "Angle Grinder", brandID, categoryID)

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		items := body["data"].(map[string]interface{})["items"].([]interface{})
		require.Len(t, items, 2)
		assert.Equal(t, "Angle Grinder", items[0].(map[string]interface{})["name"])
		assert.Equal(t, "Cordless Drill", items[1].(map[string]interface{})["name"])
	})

	t.Run("list by brand and category", func(t *testing.T) {
		for _, url := range []string{
			fmt.Sprintf("%s/api/v1/products/by-brand/%s", srv.URL, brandID),
			fmt.Sprintf("%s/api/v1/products/by-category/%s", srv.URL, categoryID),
		} {
			resp, body := doJSON(t, http.MethodGet, url, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			items := body["data"].(map[string]interface{})["items"].([]interface{})
			assert.Len(t, items, 2)
		}
	})

	t.Run("delete removes the product", func(t *testing.T) {
		id := createProduct(t, srv, "Disposable Widget", brandID, categoryID)

		resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/products/"+id, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/"+id, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestProductStockEndpoint(t *testing.T) {
	srv := newTestServer(t)
	brandID := createBrand(t, srv, "Acme Tools")
	categoryID := createCategory(t, srv, "Power Tools")
	productID := createProduct(t, srv, "Cordless Drill", brandID, categoryID)

	stockURL := srv.URL + "/api/v1/products/" + productID + "/stock"

	t.Run("absolute quantity", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPatch, stockURL, map[string]interface{}{
			"stock_quantity": 42,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(42), data["stock_quantity"])
	})

	t.Run("signed delta", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPatch, stockURL, map[string]interface{}{
			"quantity_change": -12,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(30), data["stock_quantity"])
	})

	t.Run("delta below zero is rejected", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPatch, stockURL, map[string]interface{}{
			"quantity_change": -31,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "VALIDATION", errorCode(t, body))
		errInfo := body["error"].(map[string]interface{})
		assert.Contains(t, errInfo["message"], "cannot be negative after adjustment")
	})

	t.Run("both fields are rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPatch, stockURL, map[string]interface{}{
			"stock_quantity":  5,
			"quantity_change": 5,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("neither field is rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPatch, stockURL, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
