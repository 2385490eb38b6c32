package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// decision cutoffs; zero values are replaced with the defaults below
	BalanceThreshold        float64 `toml:"balance_threshold"`
	RankerHighVolumeRatio   float64 `toml:"ranker_high_volume_ratio"`
	RankerMediumVolumeRatio float64 `toml:"ranker_medium_volume_ratio"`
	RankerPairFrequencyGap  int     `toml:"ranker_pair_frequency_gap"`

	CatalogCacheSizeBytes int `toml:"catalog_cache_size_bytes"`
}

const (
	DefaultBalanceThreshold        = 0.5
	DefaultRankerHighVolumeRatio   = 0.3
	DefaultRankerMediumVolumeRatio = 0.5
	DefaultRankerPairFrequencyGap  = 1
	DefaultCatalogCacheSizeBytes   = 10 * 1024 * 1024
)

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.BalanceThreshold == 0 {
		c.BalanceThreshold = DefaultBalanceThreshold
	}
	if c.RankerHighVolumeRatio == 0 {
		c.RankerHighVolumeRatio = DefaultRankerHighVolumeRatio
	}
	if c.RankerMediumVolumeRatio == 0 {
		c.RankerMediumVolumeRatio = DefaultRankerMediumVolumeRatio
	}
	if c.RankerPairFrequencyGap == 0 {
		c.RankerPairFrequencyGap = DefaultRankerPairFrequencyGap
	}
	if c.CatalogCacheSizeBytes == 0 {
		c.CatalogCacheSizeBytes = DefaultCatalogCacheSizeBytes
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
}
