package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"solar-agent/domain"
)

type Economics struct {
	CostIncreaseFactor           float64 `mapstructure:"cost_increase_factor"`
	DcToAcDerate                 float64 `mapstructure:"dc_to_ac_derate"`
	DiscountRate                 float64 `mapstructure:"discount_rate"`
	EfficiencyDepreciationFactor float64 `mapstructure:"efficiency_depreciation_factor"`
	Incentives                   float64 `mapstructure:"incentives"`
	InstallationCostPerKw        float64 `mapstructure:"installation_cost_per_kw"`
	DcToRatedSizeFactor          float64 `mapstructure:"dc_to_rated_size_factor"`
	ClampNegativeResidual        bool    `mapstructure:"clamp_negative_residual"`
}

type Config struct {
	ServerAddr        string        `mapstructure:"server_addr"`
	DebugLogging      bool          `mapstructure:"debug_logging"`
	RateLimitCapacity int           `mapstructure:"rate_limit_capacity"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`
	RedisAddr         string        `mapstructure:"redis_addr"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	EvaluationWorkers int           `mapstructure:"evaluation_workers"`
	Economics         Economics     `mapstructure:"economics"`
}

const (
	EnvPrefix = "SOLAR"

	DefaultServerAddr        = ":8080"
	DefaultRateLimitCapacity = 5
	DefaultRateLimitWindow   = time.Minute
	DefaultCacheTTL          = 10 * time.Minute
	DefaultEvaluationWorkers = 4
)

func defaults() map[string]interface{} {
	econ := domain.DefaultEconomicConstants()
	return map[string]interface{}{
		"server_addr":         DefaultServerAddr,
		"debug_logging":       false,
		"rate_limit_capacity": DefaultRateLimitCapacity,
		"rate_limit_window":   DefaultRateLimitWindow,
		"redis_addr":          "",
		"cache_ttl":           DefaultCacheTTL,
		"evaluation_workers":  DefaultEvaluationWorkers,

		"economics.cost_increase_factor":           econ.CostIncreaseFactor,
		"economics.dc_to_ac_derate":                econ.DcToAcDerate,
		"economics.discount_rate":                  econ.DiscountRate,
		"economics.efficiency_depreciation_factor": econ.EfficiencyDepreciationFactor,
		"economics.incentives":                     econ.Incentives,
		"economics.installation_cost_per_kw":       econ.InstallationCostPerKw,
		"economics.dc_to_rated_size_factor":        econ.DcToRatedSizeFactor,
		"economics.clamp_negative_residual":        econ.ClampNegativeResidual,
	}
}

// LoadConfig reads the config file at path, if any, and applies SOLAR_*
// environment overrides on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.ServerAddr == "" {
		return errors.New("server_addr is empty")
	}
	if cfg.RateLimitCapacity <= 0 {
		return errors.New("invalid rate_limit_capacity")
	}
	if cfg.RateLimitWindow <= 0 {
		return errors.New("invalid rate_limit_window")
	}
	if cfg.CacheTTL < 0 {
		return errors.New("invalid cache_ttl")
	}
	if cfg.EvaluationWorkers < 0 {
		return errors.New("invalid evaluation_workers")
	}
	return validateEconomics(cfg.Economics)
}

func validateEconomics(e Economics) error {
	if e.DiscountRate <= 0 {
		return errors.New("invalid economics.discount_rate")
	}
	if e.CostIncreaseFactor <= 0 {
		return errors.New("invalid economics.cost_increase_factor")
	}
	if e.DcToAcDerate < 0 || e.DcToAcDerate > 1 {
		return errors.New("invalid economics.dc_to_ac_derate")
	}
	if e.EfficiencyDepreciationFactor <= 0 {
		return errors.New("invalid economics.efficiency_depreciation_factor")
	}
	if e.Incentives < 0 {
		return errors.New("invalid economics.incentives")
	}
	if e.InstallationCostPerKw < 0 {
		return errors.New("invalid economics.installation_cost_per_kw")
	}
	if e.DcToRatedSizeFactor <= 0 {
		return errors.New("invalid economics.dc_to_rated_size_factor")
	}
	return nil
}

// EconomicConstants converts the economics section into engine parameters.
func (c *Config) EconomicConstants() domain.EconomicConstants {
	return domain.EconomicConstants{
		CostIncreaseFactor:           c.Economics.CostIncreaseFactor,
		DcToAcDerate:                 c.Economics.DcToAcDerate,
		DiscountRate:                 c.Economics.DiscountRate,
		EfficiencyDepreciationFactor: c.Economics.EfficiencyDepreciationFactor,
		Incentives:                   c.Economics.Incentives,
		InstallationCostPerKw:        c.Economics.InstallationCostPerKw,
		DcToRatedSizeFactor:          c.Economics.DcToRatedSizeFactor,
		ClampNegativeResidual:        c.Economics.ClampNegativeResidual,
	}
}
