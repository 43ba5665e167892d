package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"admin-panel-client/clients"
	"admin-panel-client/config"
	"admin-panel-client/gateway"
	"admin-panel-client/handlers"
	"admin-panel-client/rabbitmq"
	"admin-panel-client/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	var logger *zap.Logger
	var err error
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
		logger, err = zap.NewDevelopment()
	} else {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting admin panel client",
		zap.String("port", cfg.Port),
		zap.String("api_base_url", cfg.APIBaseURL))

	gw := gateway.NewGateway(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, logger)

	var publisher store.ActivityPublisher
	if cfg.EventsEnabled {
		pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize, logger)
		if err != nil {
			logger.Fatal("failed to create RabbitMQ channel pool", zap.Error(err))
		}
		defer pool.Close()
		publisher = rabbitmq.NewPublisher(pool, cfg.RabbitMQQueue, logger)
	}

	authStore := store.NewAuthStore(clients.NewAuthClient(gw), gw, logger)
	cartStore := store.NewCartStore(clients.NewCartClient(gw), publisher, logger)
	productsStore := store.NewProductsStore(clients.NewProductClient(gw))
	usersStore := store.NewUsersStore(clients.NewUserClient(gw))

	// A 401 from the backend invalidates the session; the cart is unusable
	// without one.
	gw.SetOnUnauthorized(func() {
		authStore.ClearAuth()
		cartStore.ClearCartState()
	})

	authHandler := handlers.NewAuthHandler(authStore, cartStore)
	cartHandler := handlers.NewCartHandler(cartStore)
	productHandler := handlers.NewProductHandler(productsStore)
	userHandler := handlers.NewUserHandler(usersStore, authStore)

	router := gin.Default()

	// Session
	router.POST("/panel/login", authHandler.Login)
	router.POST("/panel/register", authHandler.Register)
	router.POST("/panel/logout", authHandler.Logout)
	router.GET("/panel/session", authHandler.Session)
	router.PUT("/panel/password", authHandler.ChangePassword)
	router.PUT("/panel/profile", userHandler.UpdateProfile)

	// Catalog
	router.GET("/panel/products", productHandler.List)
	router.GET("/panel/products/search", productHandler.Search)
	router.GET("/panel/products/low-stock", productHandler.LowStock)
	router.GET("/panel/products/:id", productHandler.Get)
	router.POST("/panel/products", productHandler.Create)
	router.PUT("/panel/products/:id", productHandler.Update)
	router.DELETE("/panel/products/:id", productHandler.Delete)

	// Cart
	router.GET("/panel/cart", cartHandler.GetCart)
	router.POST("/panel/cart/items", cartHandler.AddItem)
	router.PUT("/panel/cart/items/:itemId", cartHandler.UpdateItem)
	router.DELETE("/panel/cart/items/:itemId", cartHandler.RemoveItem)
	router.DELETE("/panel/cart", cartHandler.Clear)
	router.GET("/panel/carts", cartHandler.ListAll)

	// User management (super-admin)
	router.GET("/panel/users", userHandler.List)
	router.GET("/panel/users/search", userHandler.Search)
	router.GET("/panel/users/stats", userHandler.Stats)
	router.GET("/panel/users/:id", userHandler.Get)
	router.POST("/panel/users", userHandler.CreateAdmin)
	router.PUT("/panel/users/:id/role", userHandler.UpdateRole)
	router.DELETE("/panel/users/:id", userHandler.Delete)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
