package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// defaultTierDelta is the per-step variant surcharge, 600.00 in minor units.
const defaultTierDelta = 60000

type Config struct {
	AppPort          string
	AppEnv           string
	CatalogFeedURL   string
	RedisAddr        string
	RedisPassword    string
	TelegramAPIBase  string
	TelegramBotToken string
	TelegramChatID   string
	PriceTierDelta   int64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          os.Getenv("APP_PORT"),
		AppEnv:           os.Getenv("APP_ENV"),
		CatalogFeedURL:   os.Getenv("CATALOG_FEED_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		TelegramAPIBase:  os.Getenv("TELEGRAM_API_BASE"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		PriceTierDelta:   defaultTierDelta,
	}

	if cfg.TelegramAPIBase == "" {
		cfg.TelegramAPIBase = "https://api.telegram.org"
	}

	if raw := os.Getenv("PRICE_TIER_DELTA"); raw != "" {
		delta, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || delta < 0 {
			log.Fatalf("PRICE_TIER_DELTA must be a non-negative integer, got %q", raw)
		}
		cfg.PriceTierDelta = delta
	}

	if cfg.CatalogFeedURL == "" || cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
