package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postForm(srv.AddCategoryHandler, "/add_category", "name=Beverages")
	require.Equal(t, http.StatusOK, w.Code)

	w = postForm(srv.AddCategoryHandler, "/add_category", "name=Beverages")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = record(srv.GetCategoriesHandler, httptestGet("/get_categories"))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Beverages"}, resp.Categories)

	w = postForm(srv.DeleteCategoryHandler, "/delete_category", "name=Beverages")
	assert.Equal(t, http.StatusOK, w.Code)

	w = postForm(srv.DeleteCategoryHandler, "/delete_category", "name=Beverages")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCategoryRequiresName(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postForm(srv.AddCategoryHandler, "/add_category", "name=")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name cannot be empty")
}

func TestProductLifecycle(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postForm(srv.AddProductHandler, "/add_product", "name=Latte&price=4.5")
	require.Equal(t, http.StatusOK, w.Code)

	w = postForm(srv.AddProductHandler, "/add_product", "name=Latte&price=4.5")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = record(srv.GetProductsHandler, httptestGet("/get_products"))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products []struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Latte", resp.Products[0].Name)
	assert.Equal(t, 4.5, resp.Products[0].Price)

	w = postForm(srv.DeleteProductHandler, "/delete_product", "name=Latte")
	assert.Equal(t, http.StatusOK, w.Code)

	w = postForm(srv.DeleteProductHandler, "/delete_product", "name=Latte")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddProductRejectsBadPrice(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := postForm(srv.AddProductHandler, "/add_product", "name=Latte&price=cheap")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid price")
}

func TestGetCategoriesEmptyIsArray(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := record(srv.GetCategoriesHandler, httptestGet("/get_categories"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"categories":[]}`, w.Body.String())
}
