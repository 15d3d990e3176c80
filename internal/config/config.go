// Package config loads application configuration from file and environment
// and owns global logger setup.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Competition CompetitionConfig `yaml:"competition" mapstructure:"competition"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// CompetitionConfig holds the static competition parameters. They are echoed
// into published records; the pipeline never computes with them beyond
// variant eligibility limits.
type CompetitionConfig struct {
	Year       int    `yaml:"year" mapstructure:"year"`
	ResultDate string `yaml:"result_date" mapstructure:"result_date"`
	TimeLimitS int    `yaml:"time_limit_s" mapstructure:"time_limit_s"`
	MemLimitM  int    `yaml:"mem_limit_m" mapstructure:"mem_limit_m"`
}

// PathsConfig holds input and output locations.
type PathsConfig struct {
	ResultsCSV   string `yaml:"results_csv" mapstructure:"results_csv"`
	SelectionCSV string `yaml:"selection_csv" mapstructure:"selection_csv"`
	WebResults   string `yaml:"web_results" mapstructure:"web_results"`
	Database     string `yaml:"database" mapstructure:"database"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PODIUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("competition.year", 2024)
	v.SetDefault("competition.result_date", "2024-07-08")
	v.SetDefault("competition.time_limit_s", 1200)
	v.SetDefault("competition.mem_limit_m", 61440)
	v.SetDefault("paths.web_results", "web/results")
	v.SetDefault("paths.database", "podium.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
