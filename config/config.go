package config

import (
	"log"
	"os"
	"strconv"

	"puntogo/pricing"

	"github.com/joho/godotenv"
)

// Ventify holds the external commerce API credentials. All three are required
// before any remote call is attempted.
type Ventify struct {
	BaseURL   string
	APIKey    string
	AccountID string
}

func (v Ventify) Complete() bool {
	return v.BaseURL != "" && v.APIKey != "" && v.AccountID != ""
}

type Config struct {
	Port          string
	RedisAddr     string
	RedisPassword string
	Ventify       Ventify
	Tiers         pricing.Tiers
	GeocoderBase  string
}

// Load reads .env if present and assembles the runtime configuration.
// Missing Ventify credentials are reported but not fatal: the storefront
// degrades to the seed catalog and local-only orders.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	cfg := Config{
		Port:          port,
		RedisAddr:     getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Ventify: Ventify{
			BaseURL:   os.Getenv("VENTIFY_API_URL"),
			APIKey:    os.Getenv("VENTIFY_API_KEY"),
			AccountID: os.Getenv("VENTIFY_ACCOUNT_ID"),
		},
		Tiers: pricing.Tiers{
			MinimumOrder:   envFloat("SHIPPING_MINIMUM_ORDER", 30),
			FlatFee:        envFloat("SHIPPING_FLAT_FEE", 5),
			FreeShippingAt: envFloat("SHIPPING_FREE_THRESHOLD", 150),
		},
		GeocoderBase: getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
	}

	if !cfg.Ventify.Complete() {
		log.Println("Ventify credentials incomplete; remote catalog and order sync disabled")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}
