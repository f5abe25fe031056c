package config

import (
	"testing"

	"scenario_planning/internal/domain/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "SCENARIO_STORE", "AWS_REGION", "DYNAMODB_ENDPOINT", "SIMULATION_SEED",
		"LOG_LEVEL", "LOG_FORMAT", "BASELINE_REVENUE", "BASELINE_COSTS", "BASELINE_REVENUE_GROWTH",
		"BASELINE_COST_INFLATION", "BASELINE_LABOR_COST_SHARE", "BASELINE_MARKETING_REFERENCE",
		"BASELINE_MARKETING_ROI",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, uint64(0), cfg.SimulationSeed)
	assert.Equal(t, forecast.DefaultBaseline, cfg.Baseline)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SCENARIO_STORE", "DynamoDB")
	t.Setenv("SIMULATION_SEED", "42")
	t.Setenv("BASELINE_REVENUE", "20000000")
	t.Setenv("BASELINE_COST_INFLATION", "4.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StoreDynamoDB, cfg.Store)
	assert.Equal(t, uint64(42), cfg.SimulationSeed)
	assert.Equal(t, 20_000_000.0, cfg.Baseline.Revenue)
	assert.Equal(t, 4.5, cfg.Baseline.CostInflation)
	assert.Equal(t, forecast.DefaultBaseline.Costs, cfg.Baseline.Costs)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":            "http",
		"SCENARIO_STORE":  "redis",
		"SIMULATION_SEED": "-1",
		"BASELINE_COSTS":  "lots",
	}
	for key, value := range cases {
		clearEnv(t)
		t.Setenv(key, value)
		_, err := Load()
		assert.Error(t, err, key)
	}
}
