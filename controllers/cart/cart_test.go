package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
	"github.com/junaidrashid-git/storefront-api/storage"
)

type fixedFetcher struct {
	products []models.Product
}

func (f *fixedFetcher) FetchAll(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *services.CartService, *services.FavoritesService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	cart := services.NewCartService(store)
	favorites := services.NewFavoritesService(store)
	catalog := services.NewCatalogService(&fixedFetcher{products: []models.Product{
		{ID: 1, Title: "Phone", Category: "phones", Price: 100, DiscountPercentage: 20, Stock: 5},
		{ID: 2, Title: "Lamp", Category: "home", Price: 20, Stock: 0},
	}}, cart, favorites)
	require.NoError(t, catalog.Reload(context.Background()))

	r := gin.New()
	r.GET("/cart", GetCart(cart))
	r.POST("/cart", AddCartItem(cart, catalog))
	r.PUT("/cart/:product_id", UpdateCartItem(cart))
	r.DELETE("/cart/:product_id", DeleteCartItem(cart))
	r.DELETE("/cart", ClearCart(cart))
	r.POST("/cart/:product_id/favorite", MoveToFavorites(cart, favorites))
	return r, cart, favorites
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemHandler(t *testing.T) {
	r, cart, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/cart", `{"product_id": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Totals models.CartTotals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.InDelta(t, 160.0, resp.Totals.Subtotal, 1e-9)

	assert.True(t, cart.Contains(1))
}

func TestAddCartItemDefaultsQuantity(t *testing.T) {
	r, cart, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/cart", `{"product_id": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/cart", `{"product_id": 99}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemOutOfStock(t *testing.T) {
	r, cart, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/cart", `{"product_id": 2}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, cart.Items())
}

func TestUpdateCartItemHandler(t *testing.T) {
	r, cart, _ := newTestRouter(t)

	doJSON(r, http.MethodPost, "/cart", `{"product_id": 1, "quantity": 2}`)

	w := doJSON(r, http.MethodPut, "/cart/1", `{"quantity": 5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, cart.Items()[0].Quantity)

	// Quantity zero removes the line
	w = doJSON(r, http.MethodPut, "/cart/1", `{"quantity": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items())

	// Updating a product that is not in the cart is a 404
	w = doJSON(r, http.MethodPut, "/cart/1", `{"quantity": 3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveToFavoritesHandler(t *testing.T) {
	r, cart, favorites := newTestRouter(t)

	doJSON(r, http.MethodPost, "/cart", `{"product_id": 1, "quantity": 2}`)

	w := doJSON(r, http.MethodPost, "/cart/1/favorite", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, cart.Contains(1))
	assert.True(t, favorites.Contains(1))

	// Second call: the cart no longer has the item
	w = doJSON(r, http.MethodPost, "/cart/1/favorite", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, favorites.Count())
}

func TestClearCartHandler(t *testing.T) {
	r, cart, _ := newTestRouter(t)

	doJSON(r, http.MethodPost, "/cart", `{"product_id": 1, "quantity": 2}`)

	w := doJSON(r, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items())
}

func TestGetCartReloadsFromStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemoryStore()

	// A different service instance wrote the cart
	writer := services.NewCartService(store)
	require.NoError(t, writer.AddItem(context.Background(), models.Product{ID: 9, Price: 10}, 3))

	cart := services.NewCartService(store)
	r := gin.New()
	r.GET("/cart", GetCart(cart))

	w := doJSON(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Totals models.CartTotals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Totals.ItemCount)
}
