package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ARNOB663/Food-Network/cart"
	"github.com/ARNOB663/Food-Network/catalog"
	cartControllers "github.com/ARNOB663/Food-Network/controllers/cart"
	"github.com/ARNOB663/Food-Network/events"
	"github.com/ARNOB663/Food-Network/identity"
	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/notify"
	"github.com/ARNOB663/Food-Network/pkg/config"
	"github.com/ARNOB663/Food-Network/pkg/logx"
	"github.com/ARNOB663/Food-Network/routes"
)

func main() {
	cfg := config.MustLoad()
	logx.Init(cfg.Environment)
	logx.Info().Msg("starting grocery API")

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logx.Fatal().Err(err).Msg("auto-migrate failed")
	}

	// A fresh database gets the sample catalog so the API serves the same
	// products the fallback does.
	if err := catalog.Seed(db); err != nil {
		logx.Error().Err(err).Msg("catalog seeding failed")
	}

	snapshots := cart.NewRedisStore(initRedis(cfg))
	carts := cart.NewRegistry(snapshots)
	catalogSvc := catalog.NewService(catalog.NewGormSource(db))
	identitySvc := identity.NewService(identity.NewGormUserStore(db), carts, cfg.JWTSecret)
	notifier := notify.NewEmitter()
	publisher := initPublisher(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Catalog:   catalogSvc,
		Carts:     carts,
		Identity:  identitySvc,
		Notifier:  notifier,
		Publisher: publisher,
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logx.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logx.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logx.Error().Err(err).Msg("server shutdown failed")
	}
	// Let in-flight cart snapshot writes land before the process exits.
	carts.Flush()
}

func initDatabase(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logx.Fatal().Err(err).Msg("database connection failed")
	}
	return db
}

func initRedis(cfg config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid redis URL")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logx.Fatal().Err(err).Msg("redis connection failed")
	}
	return client
}

// initPublisher connects to the broker; a missing broker is tolerated since
// order events are best-effort.
func initPublisher(cfg config.Config) cartControllers.EventPublisher {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logx.Error().Err(err).Msg("rabbitmq unavailable, order events disabled")
		return nil
	}
	publisher, err := events.NewPublisher(conn)
	if err != nil {
		logx.Error().Err(err).Msg("failed to set up order publisher, order events disabled")
		return nil
	}
	return publisher
}
