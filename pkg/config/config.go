package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where init writes the config file when no path is given.
const DefaultPath = "portfolio.yaml"

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds static serving configuration.
type ServerConfig struct {
	Port          int           `yaml:"port" env:"PORT" env-default:"3000"`
	Root          string        `yaml:"root" env:"PORTFOLIO_ROOT" env-default:"dist"`
	EntryDocument string        `yaml:"entry_document" env:"PORTFOLIO_ENTRY_DOCUMENT" env-default:"index.html"`
	CacheMaxAge   time.Duration `yaml:"cache_max_age" env:"PORTFOLIO_CACHE_MAX_AGE" env-default:"8760h"`
}

// ContentConfig holds the content tree locations.
type ContentConfig struct {
	Dir       string `yaml:"dir" env:"PORTFOLIO_CONTENT_DIR" env-default:"src/content"`
	OutputDir string `yaml:"output_dir" env:"PORTFOLIO_OUTPUT_DIR" env-default:"build/views"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the listen address for the configured port.
func (c *ServerConfig) Addr() (addr string) {
	addr = ":" + strconv.Itoa(c.Port)
	return addr
}

// Load reads configuration from file with environment variable overrides.
// An empty path reads the environment alone.
func Load(configPath string) (cfg Config, err error) {
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
		if err != nil {
			err = errors.Wrap(err, "failed to read config from environment")
			return cfg, err
		}
	} else {
		_, err = os.Stat(configPath)
		if err != nil {
			if os.IsNotExist(err) {
				err = errors.Errorf("config file not found: %s (run 'portfolio init' to create)", configPath)
				return cfg, err
			}
			err = errors.Wrapf(err, "failed to read config file: %s", configPath)
			return cfg, err
		}

		err = cleanenv.ReadConfig(configPath, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", configPath)
			return cfg, err
		}
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills defaults for empty fields.
func (c *Config) Validate() (err error) {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		err = errors.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
		return err
	}

	if c.Server.Root == "" {
		c.Server.Root = "dist"
	}

	if c.Server.EntryDocument == "" {
		c.Server.EntryDocument = "index.html"
	}

	if filepath.IsAbs(c.Server.EntryDocument) {
		err = errors.Errorf("server.entry_document must be relative to server.root: %s", c.Server.EntryDocument)
		return err
	}

	if c.Server.CacheMaxAge < 0 {
		err = errors.Errorf("server.cache_max_age must not be negative, got %s", c.Server.CacheMaxAge)
		return err
	}

	if c.Content.Dir == "" {
		c.Content.Dir = "src/content"
	}

	if c.Content.OutputDir == "" {
		c.Content.OutputDir = "build/views"
	}

	switch c.Log.Level {
	case "":
		c.Log.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		err = errors.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
		return err
	}

	switch c.Log.Format {
	case "":
		c.Log.Format = "json"
	case "json", "console":
	default:
		err = errors.Errorf("log.format must be json or console, got %q", c.Log.Format)
		return err
	}

	return err
}

// Default returns the configuration written by InitConfig.
func Default() (cfg Config) {
	cfg = Config{
		Server: ServerConfig{
			Port:          3000,
			Root:          "dist",
			EntryDocument: "index.html",
			CacheMaxAge:   365 * 24 * time.Hour,
		},
		Content: ContentConfig{
			Dir:       "src/content",
			OutputDir: "build/views",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
	return cfg
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path = DefaultPath
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var data []byte
	data, err = yaml.Marshal(Default())
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
