package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger     `mapstructure:"logger"`
	Calculator Calculator `mapstructure:"calculator"`
	Cache      Cache      `mapstructure:"cache"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Calculator struct {
	DefaultProfitTarget string `mapstructure:"default_profit_target"`
	DefaultStopLoss     string `mapstructure:"default_stop_loss"`
}

type Cache struct {
	DefaultExpiration       time.Duration `mapstructure:"default_expiration"`
	CleanupInterval         time.Duration `mapstructure:"cleanup_interval"`
	SessionStateExpDuration time.Duration `mapstructure:"session_state_exp_duration"`
}

// ProfitTarget returns the fallback profit target fraction, or 0.03 when the
// Calculator was built without going through Load.
func (c Calculator) ProfitTarget() decimal.Decimal {
	return decimalOrDefault(c.DefaultProfitTarget, "0.03")
}

// StopLoss returns the fallback stop loss fraction, or 0.01 when the
// Calculator was built without going through Load.
func (c Calculator) StopLoss() decimal.Decimal {
	return decimalOrDefault(c.DefaultStopLoss, "0.01")
}

func decimalOrDefault(value, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || !d.IsPositive() {
		return decimal.RequireFromString(fallback)
	}
	return d
}

// Validate rejects default fractions that are not positive decimals.
func (c Calculator) Validate() error {
	if err := positiveDecimal("calculator.default_profit_target", c.DefaultProfitTarget); err != nil {
		return err
	}
	return positiveDecimal("calculator.default_stop_loss", c.DefaultStopLoss)
}

func positiveDecimal(key, value string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("config %s: %q is not a valid number", key, value)
	}
	if !d.IsPositive() {
		return fmt.Errorf("config %s must be greater than 0, got %s", key, d)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("calculator.default_profit_target", "0.03")
	v.SetDefault("calculator.default_stop_loss", "0.01")
	v.SetDefault("cache.default_expiration", 30*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)
	v.SetDefault("cache.session_state_exp_duration", 30*time.Minute)
}

// Load reads .env (when present), then an optional config.yaml from the
// working directory, then environment variables such as LOGGER_LEVEL.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Calculator.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
