package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/textlab/textapi/internal"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const EnvPrefix = "TEXTAPI"

var (
	ErrInvalidPort            = errors.New("server.port must be between 1 and 65535")
	ErrInvalidCorpusMode      = errors.New("nlp.keywords.corpus must be one of: request, shared")
	ErrInvalidStemConcurrency = errors.New("nlp.stem_concurrency must not be negative")
	ErrAuthSecretNotSet       = errors.New("auth.secret must be set when auth.required is true")
)

// LoadConfig loads the config file and ENV variables into a Config struct.
// An explicitly named config file must exist; ./config.yaml is optional.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	// PORT is honoured for compatibility with common PaaS conventions
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("error binding environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks option combinations viper cannot express.
func Validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, cfg.Server.Port)
	}
	switch cfg.NLP.Keywords.Corpus {
	case CorpusPerRequest, CorpusShared:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidCorpusMode, cfg.NLP.Keywords.Corpus)
	}
	if cfg.NLP.StemConcurrency < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStemConcurrency, cfg.NLP.StemConcurrency)
	}
	if cfg.Auth.Required && cfg.Auth.Secret == "" {
		return ErrAuthSecretNotSet
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_header_timeout", d.Server.ReadHeaderTimeout)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.max_request_body_size", d.Server.MaxRequestBodySize)
	v.SetDefault("server.legacy_word_count_errors", d.Server.LegacyWordCountErrors)
	v.SetDefault("server.rate_limit.requests_per_second", d.Server.RateLimit.RequestsPerSecond)
	v.SetDefault("server.rate_limit.burst", d.Server.RateLimit.Burst)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("auth.secret", d.Auth.Secret)
	v.SetDefault("auth.required", d.Auth.Required)
	v.SetDefault("nlp.stem_concurrency", d.NLP.StemConcurrency)
	v.SetDefault("nlp.keywords.corpus", d.NLP.Keywords.Corpus)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.insecure", d.Tracing.Insecure)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level and format based on the config file.
// Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	internal.SetLogFormat(cfg.Log.Format)
	log.Info("Log level set to: ", level)
}
