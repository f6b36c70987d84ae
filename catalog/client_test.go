package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/models"
)

func TestFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Phone", "category": "phones", "price": 499.99, "discountPercentage": 5.5, "stock": 12},
				{"id": 2, "title": "Lamp", "category": "home", "price": 19.99, "stock": 40}
			],
			"total": 2
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Phone", products[0].Title)
	assert.Equal(t, 499.99, products[0].Price)
	assert.Equal(t, 5.5, products[0].DiscountPercentage)

	// Missing discount decodes to zero
	assert.Equal(t, 0.0, products[1].DiscountPercentage)
}

func TestFetchAllUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchAll(context.Background())

	var fetchErr *models.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestFetchAllMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"id": `))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchAll(context.Background())

	var fetchErr *models.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchAllConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchAll(context.Background())

	var fetchErr *models.FetchError
	assert.ErrorAs(t, err, &fetchErr)
}
