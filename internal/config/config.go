package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

const SupportedVersion = "1"

// Config represents the complete configuration structure
type Config struct {
	Version string        `yaml:"version" default:"1"`
	Site    SiteConfig    `yaml:"site"`
	Server  ServerConfig  `yaml:"server"`
	Board   BoardConfig   `yaml:"board"`
	Seed    SeedConfig    `yaml:"seed"`
	Docs    DocsConfig    `yaml:"docs"`
	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"console"`
}

type SiteConfig struct {
	Name    string `yaml:"name" default:"DA LLAMA"`
	Tagline string `yaml:"tagline" default:"A tiny board for llamas and friends"`
}

type ServerConfig struct {
	Host string `yaml:"host" default:"127.0.0.1"`
	Port string `yaml:"port" default:"12600"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type BoardConfig struct {
	// NotificationDelay is how long the identity switch notification stays open.
	NotificationDelay string `yaml:"notification_delay" default:"5s"`
	QueueSize         int    `yaml:"queue_size" default:"64"`
	// ImplicitCancel lets beginning an edit drop an active session on another post.
	ImplicitCancel bool `yaml:"implicit_cancel" default:"true"`
}

func (b BoardConfig) Delay() (time.Duration, error) {
	d, err := time.ParseDuration(b.NotificationDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid notification_delay %q: %w", b.NotificationDelay, err)
	}
	return d, nil
}

type SeedConfig struct {
	// Path to a .json, .json.zst, .json.gz or SQLite seed. Empty uses the built-in data.
	Path string `yaml:"path" default:""`
}

type DocsConfig struct {
	Enabled        bool   `yaml:"enabled" default:"true"`
	HighlightStyle string `yaml:"highlight_style" default:"github"`
}

var AppConfig *Config

// Default returns a config with every default applied.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// LoadConfig reads path over the defaults and stores the result in AppConfig.
// A missing file is not an error.
func LoadConfig(path string) error {
	config := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		configLogger.Info().Str("path", path).Msg("Config file not found, using defaults")
		AppConfig = config
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return err
	}

	AppConfig = config
	return nil
}

func (c *Config) Validate() error {
	if c.Version != SupportedVersion {
		return fmt.Errorf("unsupported configuration version %q, expected %q", c.Version, SupportedVersion)
	}
	if _, err := c.Board.Delay(); err != nil {
		return err
	}
	if c.Board.QueueSize < 0 {
		return fmt.Errorf("invalid queue_size %d", c.Board.QueueSize)
	}
	return nil
}

// ApplyEnv overrides config values from the process environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvSeedPath); v != "" {
		c.Seed.Path = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		c.Server.Port = v
	}
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Float64:
			if val, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				field.SetFloat(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
