package config

import "time"

// Config holds the configuration of the application
// Use LoadConfig to create a new instance
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Log     LogConfig     `mapstructure:"log"     yaml:"log"`
	Auth    AuthConfig    `mapstructure:"auth"    yaml:"auth"`
	NLP     NLPConfig     `mapstructure:"nlp"     yaml:"nlp"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"                  yaml:"host"`
	Port              int           `mapstructure:"port"                  yaml:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"   yaml:"read_header_timeout"`
	// RequestTimeout bounds the time a handler may spend on a request. 0 disables it.
	RequestTimeout     time.Duration `mapstructure:"request_timeout"       yaml:"request_timeout"`
	MaxRequestBodySize int64         `mapstructure:"max_request_body_size" yaml:"max_request_body_size"`
	// LegacyWordCountErrors keeps the {"message": ...} body on word-count validation failures.
	LegacyWordCountErrors bool            `mapstructure:"legacy_word_count_errors" yaml:"legacy_word_count_errors"`
	RateLimit             RateLimitConfig `mapstructure:"rate_limit"               yaml:"rate_limit"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst"               yaml:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"   yaml:"secret"`
	Required bool   `mapstructure:"required" yaml:"required"`
}

type NLPConfig struct {
	// StemConcurrency caps the lemma lookups running at once for a single request.
	// 0 lets the pool size itself.
	StemConcurrency int            `mapstructure:"stem_concurrency" yaml:"stem_concurrency"`
	Keywords        KeywordsConfig `mapstructure:"keywords"         yaml:"keywords"`
}

type KeywordsConfig struct {
	Corpus string `mapstructure:"corpus" yaml:"corpus"`
}

type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"  yaml:"enabled"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	Insecure bool   `mapstructure:"insecure" yaml:"insecure"`
}

const (
	// CorpusPerRequest scores every keyword request against a corpus holding only its own text.
	CorpusPerRequest = "request"
	// CorpusShared accumulates every keyword request into one process-wide corpus.
	CorpusShared = "shared"
)

// defaultConfig holds the value of every option not set by the config file or ENV.
var defaultConfig = Config{
	Server: ServerConfig{
		Port:                  11500,
		ReadHeaderTimeout:     5 * time.Second,
		RequestTimeout:        30 * time.Second,
		MaxRequestBodySize:    100 * 1024,
		LegacyWordCountErrors: true,
	},
	Log: LogConfig{
		Level:  "info",
		Format: "text",
	},
	NLP: NLPConfig{
		Keywords: KeywordsConfig{
			Corpus: CorpusPerRequest,
		},
	},
	Tracing: TracingConfig{
		Endpoint: "localhost:4318",
		Insecure: true,
	},
}

// Default returns a copy of the default configuration.
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}
