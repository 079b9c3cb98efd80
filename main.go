package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pos_inventory/api"
	"pos_inventory/internal/config"
	"pos_inventory/internal/db"
	"pos_inventory/internal/products"
	"pos_inventory/internal/sales"
	"pos_inventory/internal/users"
)

func main() {
	cfg := config.FromEnv()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		panic(fmt.Errorf("error connecting to database: %v", err))
	}
	if err := gdb.AutoMigrate(&users.User{}, &products.Product{}, &sales.Sale{}, &sales.SaleLine{}); err != nil {
		panic(fmt.Errorf("error migrating database schema: %v", err))
	}

	r := gin.Default()
	api.InitRoutes(r, gdb, cfg, logger)

	if err := r.Run(":" + cfg.Port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
