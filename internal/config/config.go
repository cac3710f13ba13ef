package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the demo settings, read from the environment with an
// optional .env file.
type Config struct {
	// Discount is the fraction of the bill to knock off (0.1 = 10%).
	// It is not range checked; out-of-range values flow through to the
	// order unclamped.
	Discount float64
	// Strategy is the traversal strategy code for the table section.
	// Unrecognized codes are passed through and resolve to the
	// price-sorted traversal.
	Strategy int
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	discount, err := strconv.ParseFloat(getEnv("ORDER_DISCOUNT", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ORDER_DISCOUNT: %w", err)
	}
	strategy, err := strconv.Atoi(getEnv("ORDER_STRATEGY", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid ORDER_STRATEGY: %w", err)
	}

	return &Config{
		Discount: discount,
		Strategy: strategy,
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
