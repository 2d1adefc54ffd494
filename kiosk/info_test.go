package kiosk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aromabeans/coffee-feedback/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyInfoRendersMenu(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"name":"Latte","price":4.5},{"name":"Espresso","price":3}]}`))
	}))
	defer ts.Close()

	info, err := CompanyInfo(context.Background(), client.New(ts.URL))
	require.NoError(t, err)
	assert.Contains(t, info, "Aroma Beans Coffee")
	assert.Contains(t, info, "  - Latte - $4.50")
	assert.Contains(t, info, "  - Espresso - $3.00")
}

func TestCompanyInfoBackendDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := CompanyInfo(context.Background(), client.New(ts.URL))
	assert.Error(t, err)
}
