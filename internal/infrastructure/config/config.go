package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"scenario_planning/internal/domain/forecast"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
)

// Config is the process configuration resolved from the environment.
// DynamoDBEndpoint overrides the service endpoint, e.g. a local emulator.
type Config struct {
	Port             int
	Store            string
	AWSRegion        string
	DynamoDBEndpoint string
	AWSAccessKeyID   string
	AWSSecretKey     string
	SimulationSeed   uint64
	Baseline         forecast.Baseline
	LogLevel         string
	LogFormat        string
}

// Load reads the configuration. Unset variables take their defaults; set but
// malformed ones are an error.
func Load() (Config, error) {
	cfg := Config{
		Store:            strings.ToLower(getenvDefault("SCENARIO_STORE", StoreMemory)),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		AWSAccessKeyID:   getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretKey:     getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFormat:        getenvDefault("LOG_FORMAT", "json"),
		Baseline:         forecast.DefaultBaseline,
	}

	var err error
	if cfg.Port, err = intEnv("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.SimulationSeed, err = uintEnv("SIMULATION_SEED", 0); err != nil {
		return Config{}, err
	}
	if cfg.Store != StoreMemory && cfg.Store != StoreDynamoDB {
		return Config{}, fmt.Errorf("SCENARIO_STORE must be %q or %q, got %q", StoreMemory, StoreDynamoDB, cfg.Store)
	}

	b := &cfg.Baseline
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"BASELINE_REVENUE", &b.Revenue},
		{"BASELINE_COSTS", &b.Costs},
		{"BASELINE_REVENUE_GROWTH", &b.RevenueGrowth},
		{"BASELINE_COST_INFLATION", &b.CostInflation},
		{"BASELINE_LABOR_COST_SHARE", &b.LaborCostShare},
		{"BASELINE_MARKETING_REFERENCE", &b.MarketingReference},
		{"BASELINE_MARKETING_ROI", &b.MarketingROI},
	} {
		if *f.dst, err = floatEnv(f.key, *f.dst); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func uintEnv(key string, def uint64) (uint64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
