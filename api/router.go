package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pos_inventory/internal/auth"
	"pos_inventory/internal/config"
	"pos_inventory/internal/db"
	"pos_inventory/internal/products"
	"pos_inventory/internal/sales"
	"pos_inventory/internal/users"
)

// InitRoutes wires the postgres-backed storages, services and handlers
// and registers every endpoint on the given Gin engine.
func InitRoutes(e *gin.Engine, gdb *gorm.DB, cfg config.Config, logger *zap.Logger) {
	InitRoutesWithStorage(e,
		users.NewGormStorage(gdb),
		products.NewGormStorage(gdb),
		sales.NewGormStorage(gdb),
		db.NewGormTxManager(gdb),
		cfg, logger,
	)
}

// InitRoutesWithStorage is InitRoutes with the storage layer injected.
// Tests use it to run the full HTTP surface against the in-memory
// storages.
func InitRoutesWithStorage(
	e *gin.Engine,
	userStorage users.Storage,
	productStorage products.Storage,
	saleStorage sales.Storage,
	tx db.TxManager,
	cfg config.Config,
	logger *zap.Logger,
) {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	userService := users.NewService(userStorage, logger)
	productService := products.NewService(productStorage, logger)
	salesService := sales.NewService(saleStorage, productStorage, userStorage, tx, logger)

	authH := newAuthHandler(userService, tokens, logger)
	productH := newProductHandler(productService, logger)
	userH := newUserHandler(userService, logger)
	salesH := newSalesHandler(salesService, logger)

	e.Use(RequestID(), RequestLogger(logger))

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := e.Group("/api/v1")

	v1.POST("/register", authH.handleRegister)
	v1.POST("/login", authH.handleLogin)

	authed := v1.Group("", Authenticate(tokens))

	authed.GET("/products", productH.handleList)
	authed.POST("/products", RequireAdmin(), productH.handleCreate)
	authed.PUT("/products/:id", RequireAdmin(), productH.handleUpdate)
	authed.DELETE("/products/:id", RequireAdmin(), productH.handleDelete)

	authed.GET("/users", RequireAdmin(), userH.handleList)
	authed.DELETE("/users/:id", RequireAdmin(), userH.handleDelete)

	authed.GET("/sales", salesH.handleListSales)
	authed.POST("/sales", salesH.handleCreateSale)
	authed.DELETE("/sales/:id", salesH.handleCancelSale)
}
