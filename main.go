package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/services"
	"github.com/junaidrashid-git/storefront-api/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Key-value storage backend
	store := initStorage()

	// Domain services
	cartSvc := services.NewCartService(store)
	favoritesSvc := services.NewFavoritesService(store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := cartSvc.Load(ctx); err != nil {
		log.Fatalf("❌ Failed to load cart: %v", err)
	}
	if err := favoritesSvc.Load(ctx); err != nil {
		log.Fatalf("❌ Failed to load favorites: %v", err)
	}

	// Product catalog
	client := catalog.NewClient(os.Getenv("CATALOG_API_URL"))
	catalogSvc := services.NewCatalogService(client, cartSvc, favoritesSvc)
	if err := catalogSvc.Reload(ctx); err != nil {
		// Cart and favorites still work; products stay empty until a refresh succeeds
		log.Printf("❌ Initial catalog fetch failed: %v", err)
	} else {
		log.Printf("✅ Catalog loaded: %d products", catalogSvc.Count())
	}

	checkoutSvc := services.NewCheckoutService(cartSvc)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Cart:      cartSvc,
		Favorites: favoritesSvc,
		Catalog:   catalogSvc,
		Checkout:  checkoutSvc,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage selects the key-value backend from the environment.
func initStorage() storage.Store {
	switch os.Getenv("STORAGE_BACKEND") {
	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			redisURL = "redis://localhost:6379/0"
		}
		store, err := storage.NewRedisStore(redisURL)
		if err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		log.Println("✅ Using Redis storage")
		return store
	case "memory":
		log.Println("✅ Using in-memory storage")
		return storage.NewMemoryStore()
	default:
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}
		store, err := storage.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("❌ Failed to init file storage: %v", err)
		}
		log.Printf("✅ Using file storage at %s", dataDir)
		return store
	}
}
