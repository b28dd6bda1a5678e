// Package config loads settings for the calculator services from a YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/calculator/internal/logging"
)

// Environment variables
const (
	EnvConfigFile  = "CALC_CONFIG_FILE"
	EnvPort        = "CALC_PORT"
	EnvLogLevel    = "CALC_LOG_LEVEL"
	EnvAPIKeys     = "CALC_API_KEYS"
	EnvGinDebug    = "CALC_GIN_DEBUG"
	EnvLenientJSON = "CALC_LENIENT_JSON"
	EnvMCPPort     = "CALC_MCP_PORT"
)

// Config holds every setting of calcd and calc-mcp.
type Config struct {
	Logging logging.Config `yaml:"logging"`

	HTTP struct {
		Port         string   `yaml:"port"`
		DebugMode    bool     `yaml:"debug_mode"`
		AllowOrigins []string `yaml:"allow_origins"`
		// APIKeys, if non-empty, are the keys accepted in the Api-Key header.
		APIKeys []string `yaml:"api_keys"`
		// LenientJSON enables repairing malformed request bodies.
		LenientJSON     bool          `yaml:"lenient_json"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"http"`

	MCP struct {
		// Port 0 serves MCP over stdio.
		Port int `yaml:"port"`
	} `yaml:"mcp"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.HTTP.Port = "8080"
	c.HTTP.AllowOrigins = []string{"*"}
	c.HTTP.ShutdownTimeout = 10 * time.Second
	return c
}

// Load reads the file at path over the defaults, then applies environment
// overrides. An empty path skips the file. Unknown keys in the file are an
// error.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.UnmarshalStrict(b, &c); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := c.override(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromEnv loads .env files if present, then loads the config file named by
// CALC_CONFIG_FILE.
func FromEnv(dotenv ...string) (Config, error) {
	if err := LoadDotEnv(dotenv...); err != nil {
		return Config{}, err
	}
	return Load(os.Getenv(EnvConfigFile))
}

// LoadDotEnv loads variables from .env files without overriding ones already
// set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) override() error {
	if v := os.Getenv(EnvPort); v != "" {
		c.HTTP.Port = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvAPIKeys); v != "" {
		c.HTTP.APIKeys = splitList(v)
	}
	if v := os.Getenv(EnvGinDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGinDebug, err)
		}
		c.HTTP.DebugMode = b
	}
	if v := os.Getenv(EnvLenientJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLenientJSON, err)
		}
		c.HTTP.LenientJSON = b
	}
	if v := os.Getenv(EnvMCPPort); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMCPPort, err)
		}
		c.MCP.Port = n
	}
	return nil
}

func splitList(s string) []string {
	var r []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			r = append(r, v)
		}
	}
	return r
}
