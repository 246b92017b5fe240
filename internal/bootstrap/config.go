// Package bootstrap assembles the report engine from configuration: it
// loads settings, initializes logging, and wires the rendering backends
// behind the generator facade.
package bootstrap

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

const ApplicationName = "crou-reportgen"

// Config is the top level configuration for the report engine. Values come
// from an optional YAML file overridden by CROU_* environment variables.
type Config struct {
	EnvName   string        `mapstructure:"env_name"`
	LogLevel  string        `mapstructure:"log_level"`
	OutputDir string        `mapstructure:"output_dir"`
	Report    ReportConfig  `mapstructure:"report"`
	Browser   BrowserConfig `mapstructure:"browser"`
}

// ReportConfig carries the locale defaults applied when a request leaves
// them unset.
type ReportConfig struct {
	Locale   string `mapstructure:"locale"`
	Currency string `mapstructure:"currency"`
	Timezone string `mapstructure:"timezone"`
}

// BrowserConfig tunes the headless Chrome renderer.
type BrowserConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// RenderTimeout returns the browser render deadline.
func (b BrowserConfig) RenderTimeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return constant.PDFDefaultTimeout
	}

	return time.Duration(b.TimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from configPath (optional) and the
// environment. Environment variables take precedence over file values.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CROU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env_name", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", "./reports")

	v.SetDefault("report.locale", constant.DefaultLocale)
	v.SetDefault("report.currency", constant.DefaultCurrency)
	v.SetDefault("report.timezone", constant.DefaultTimezone)

	v.SetDefault("browser.timeout_seconds", int(constant.PDFDefaultTimeout.Seconds()))
}

// InitLogger builds the process logger. Local environments get console
// output; everything else logs structured JSON.
func InitLogger(cfg *Config) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}

	var zcfg zap.Config
	if cfg.EnvName == "local" || cfg.EnvName == "development" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}

	return logger.Sugar().With("application", ApplicationName)
}
