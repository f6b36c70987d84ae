// Package catalog fetches the product list from the upstream catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/junaidrashid-git/storefront-api/models"
)

// DefaultAPIURL is the public product catalog used when CATALOG_API_URL is
// not configured.
const DefaultAPIURL = "https://dummyjson.com/products?limit=0"

// Client fetches the full product list in a single round trip. There is no
// pagination and no server-side filtering.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiURL string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// productsResponse is the upstream response envelope.
type productsResponse struct {
	Products []models.Product `json:"products"`
}

// FetchAll returns the catalog in upstream order. Any network or decode
// failure is reported as a FetchError; a partial list is never returned.
func (c *Client) FetchAll(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, &models.FetchError{URL: c.apiURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.FetchError{URL: c.apiURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.FetchError{URL: c.apiURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &models.FetchError{URL: c.apiURL, Err: err}
	}

	return payload.Products, nil
}
