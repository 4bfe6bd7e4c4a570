package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"bloomshop-be/internal/cart"
	"bloomshop-be/internal/catalog"
	"bloomshop-be/internal/config"
	"bloomshop-be/internal/httpapi"
	"bloomshop-be/internal/logger"
	"bloomshop-be/internal/money"
	"bloomshop-be/internal/notify"
	"bloomshop-be/internal/order"
	"bloomshop-be/internal/pricing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Indirections for testing.
var (
	initRedisFunc   = initRedis
	startServerFunc = http.ListenAndServe
)

func initRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to ping redis: %v", err)
	}

	log.Println("Redis connection established")
	return client
}

func newServer(cfg *config.Config, rdb *redis.Client) http.Handler {
	feed := catalog.NewClient(cfg.CatalogFeedURL)
	catalogSvc := catalog.NewService(feed)

	engine := pricing.NewEngine(money.Amount(cfg.PriceTierDelta))

	cartRepo := cart.NewRedisRepository(rdb)
	cartSvc := cart.NewService(cartRepo, catalogSvc, engine)

	gateway := notify.NewTelegramGateway(cfg.TelegramAPIBase, cfg.TelegramBotToken, cfg.TelegramChatID)
	orderSvc := order.NewService(cartSvc, gateway)

	handler := httpapi.NewHandler(catalogSvc, cartSvc, orderSvc)
	return handler.Routes()
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	rdb := initRedisFunc(cfg)
	defer rdb.Close()

	router := newServer(cfg, rdb)

	logger.L().Info("🌸 storefront server running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
