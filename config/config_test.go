package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.True(t, decimal.RequireFromString("0.03").Equal(cfg.Calculator.ProfitTarget()))
	assert.True(t, decimal.RequireFromString("0.01").Equal(cfg.Calculator.StopLoss()))
	assert.Equal(t, 30*time.Minute, cfg.Cache.SessionStateExpDuration)
	assert.Equal(t, 10*time.Minute, cfg.Cache.CleanupInterval)
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)

	yaml := []byte(`logger:
  level: debug
  encoding: json
calculator:
  default_profit_target: "0.05"
  default_stop_loss: "0.02"
cache:
  session_state_exp_duration: 5m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("LOGGER_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "0.05", cfg.Calculator.ProfitTarget().String())
	assert.Equal(t, "0.02", cfg.Calculator.StopLoss().String())
	assert.Equal(t, 5*time.Minute, cfg.Cache.SessionStateExpDuration)
}

func TestLoad_RejectsInvalidCalculatorDefaults(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "typo in config file",
			yaml:    "calculator:\n  default_profit_target: \"0,05\"\n",
			wantErr: "calculator.default_profit_target",
		},
		{
			name:    "negative stop loss from env",
			env:     map[string]string{"CALCULATOR_DEFAULT_STOP_LOSS": "-0.01"},
			wantErr: "calculator.default_stop_loss must be greater than 0",
		},
		{
			name:    "zero profit target from env",
			env:     map[string]string{"CALCULATOR_DEFAULT_PROFIT_TARGET": "0"},
			wantErr: "calculator.default_profit_target must be greater than 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := chdirTemp(t)
			if tt.yaml != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.yaml), 0o600))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCalculator_FallbackOnMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		calc   Calculator
		wantPT string
		wantSL string
	}{
		{name: "empty", calc: Calculator{}, wantPT: "0.03", wantSL: "0.01"},
		{name: "not a number", calc: Calculator{DefaultProfitTarget: "abc", DefaultStopLoss: "x"}, wantPT: "0.03", wantSL: "0.01"},
		{name: "negative", calc: Calculator{DefaultProfitTarget: "-0.1", DefaultStopLoss: "0"}, wantPT: "0.03", wantSL: "0.01"},
		{name: "valid", calc: Calculator{DefaultProfitTarget: " 0.1 ", DefaultStopLoss: "0.005"}, wantPT: "0.1", wantSL: "0.005"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPT, tt.calc.ProfitTarget().String())
			assert.Equal(t, tt.wantSL, tt.calc.StopLoss().String())
		})
	}
}
