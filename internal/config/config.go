package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/localapi-logger/internal/constants"
	"github.com/oshokin/localapi-logger/internal/logger"
	"github.com/oshokin/localapi-logger/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// OriginURL is the URL the front-end is served from.
	// Its hostname is the host identifier checked against LocalHosts.
	OriginURL string `mapstructure:"origin_url" yaml:"origin_url"`
	// LocalHosts lists host identifiers that activate request logging.
	LocalHosts []string `mapstructure:"local_hosts" yaml:"local_hosts"`
	// BackendMarker is the substring that identifies requests to the local backend.
	BackendMarker string `mapstructure:"backend_marker" yaml:"backend_marker"`
	// RequestTimeout is the timeout of requests issued by the CLI (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout" yaml:"request_timeout"`
	// MaxBodyPreview limits how much of a text response the CLI prints (e.g., "4 KB").
	// Empty string or "0" disables the preview.
	MaxBodyPreview string `mapstructure:"max_body_preview" yaml:"max_body_preview"`
	// Filename is the configuration file the settings were read from (set automatically).
	Filename string `mapstructure:"-" yaml:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration `mapstructure:"-" yaml:"-"`
	// ParsedMaxBodyPreview is the parsed body preview limit in bytes.
	ParsedMaxBodyPreview int64 `mapstructure:"-" yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".localapi-logger.yaml"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultOriginURL is the default front-end origin used to derive the host identifier.
	DefaultOriginURL = "http://localhost"

	// DefaultBackendMarker identifies requests aimed at the local backend.
	DefaultBackendMarker = "localhost:8080"

	// DefaultRequestTimeout is the default timeout of CLI requests.
	DefaultRequestTimeout = "60s"

	// DefaultMaxBodyPreview is the default size of the printed response preview.
	DefaultMaxBodyPreview = "4 KB"

	// envPrefix is the prefix of environment variables overriding config keys.
	envPrefix = "LOCALAPI"

	// configHeadComment is written at the top of generated configuration files.
	configHeadComment = "localapi-logger configuration.\n" +
		"Requests whose URL contains backend_marker are logged\n" +
		"when the hostname of origin_url is one of local_hosts."
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrEmptyLocalHosts indicates that no local host identifiers are configured.
	ErrEmptyLocalHosts = errors.New("local_hosts cannot be empty")
	// ErrEmptyBackendMarker indicates that the backend marker is missing.
	ErrEmptyBackendMarker = errors.New("backend_marker cannot be empty")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrConfigFileExists indicates that SaveConfig refused to overwrite a file.
	ErrConfigFileExists = errors.New("configuration file already exists")
)

// DefaultLocalHosts returns the host identifiers that activate logging by default.
func DefaultLocalHosts() []string {
	return []string{"localhost", "127.0.0.1"}
}

// NewDefaultConfig returns a configuration populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		OriginURL:      DefaultOriginURL,
		LocalHosts:     DefaultLocalHosts(),
		BackendMarker:  DefaultBackendMarker,
		RequestTimeout: DefaultRequestTimeout,
		MaxBodyPreview: DefaultMaxBodyPreview,
		Filename:       DefaultConfigFilename,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// A missing default file is not an error: defaults and environment variables are used instead.
// A missing file that was named explicitly is an error.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Filename = configFilename

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("origin_url", DefaultOriginURL)
	v.SetDefault("local_hosts", DefaultLocalHosts())
	v.SetDefault("backend_marker", DefaultBackendMarker)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("max_body_preview", DefaultMaxBodyPreview)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if _, err := utils.NewOriginHostProvider(cfg.OriginURL); err != nil {
		return fmt.Errorf("failed to parse origin_url: %w", err)
	}

	localHosts := make([]string, 0, len(cfg.LocalHosts))

	for _, host := range cfg.LocalHosts {
		if host = strings.TrimSpace(host); host != "" {
			localHosts = append(localHosts, host)
		}
	}

	if len(localHosts) == 0 {
		return ErrEmptyLocalHosts
	}

	cfg.LocalHosts = localHosts

	cfg.BackendMarker = strings.TrimSpace(cfg.BackendMarker)
	if cfg.BackendMarker == "" {
		return ErrEmptyBackendMarker
	}

	var err error

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	var (
		maxBodyPreview       = strings.TrimSpace(cfg.MaxBodyPreview)
		parsedMaxBodyPreview uint64
	)

	if maxBodyPreview != "" && maxBodyPreview != "0" {
		parsedMaxBodyPreview, err = humanize.ParseBytes(maxBodyPreview)
		if err != nil {
			return fmt.Errorf("failed to parse max body preview: %w", err)
		}
	}

	cfg.ParsedMaxBodyPreview = utils.SafeUint64ToInt64(parsedMaxBodyPreview)

	return nil
}

// SaveConfig writes the configuration to filename as commented YAML.
// An existing file is only replaced when overwrite is true.
func SaveConfig(cfg *Config, filename string, overwrite bool) error {
	if filename == "" {
		filename = DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(filename)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if exists && !overwrite {
		return fmt.Errorf("%w: '%s'", ErrConfigFileExists, filename)
	}

	var node yaml.Node
	if err = node.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	document := yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: configHeadComment,
		Content:     []*yaml.Node{&node},
	}

	content, err := yaml.Marshal(&document)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(filename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg.Filename = filename

	return nil
}
