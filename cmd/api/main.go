package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barberease/scheduler/internal/config"
	dbpkg "github.com/barberease/scheduler/internal/db"
	"github.com/barberease/scheduler/internal/logger"
	"github.com/barberease/scheduler/internal/middleware"
	"github.com/barberease/scheduler/internal/payment"
	"github.com/barberease/scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})

	var gateway payment.Gateway
	if cfg.MercadoPagoToken != "" {
		mp, err := payment.NewMercadoPagoGateway(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatal("failed to configure payment gateway", zap.Error(err))
		}
		gateway = mp
	} else {
		log.Warn("MERCADOPAGO_ACCESS_TOKEN not set, payment routes disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, gateway, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
