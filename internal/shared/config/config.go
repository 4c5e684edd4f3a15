package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	apperrors "github.com/reshetovitsme/approval-relay/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// DefaultApprovedKeywords is the keyword policy used when none is configured.
var DefaultApprovedKeywords = []string{
	"Approved",
	"Approved ✅",
	"Status – Approved",
	"Status - Approved",
}

type Config struct {
	TelegramBotToken   string        `koanf:"telegram_bot_token" validate:"required"`
	TelegramAPIURL     string        `koanf:"telegram_api_url" validate:"required,url"`
	MonitoredGroups    []string      `koanf:"monitored_groups" validate:"min=1,dive,required"`
	TargetChannel      string        `koanf:"target_channel" validate:"required"`
	ApprovedKeywords   []string      `koanf:"approved_keywords" validate:"min=1"`
	Port               int           `koanf:"port" validate:"min=1,max=65535"`
	HealthMode         HealthMode    `koanf:"health_mode"`
	DataDir            string        `koanf:"data_dir" validate:"required"`
	LogFile            string        `koanf:"log_file"`
	LogLevel           string        `koanf:"log_level"`
	Workers            int           `koanf:"workers" validate:"min=1"`
	DedupBackend       DedupBackend  `koanf:"dedup_backend"`
	DedupTTL           time.Duration `koanf:"dedup_ttl"`
	DedupPruneSchedule string        `koanf:"dedup_prune_schedule"`
	AppEnv             AppEnv        `koanf:"app_env"`
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

var validate = validator.New()

// Load reads configuration from the environment and an optional config file.
// Values from the file win over environment variables. When path is empty the
// first existing file from the default list in the working directory is used.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oops.With("context", "loading .env").Wrap(err)
	}

	k := koanf.New(".")

	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	if path == "" {
		path, _ = lo.Find(configFiles, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, oops.With("config_file", path).Wrap(err)
		}
	}

	setDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	cfg.MonitoredGroups = stringList(k.Get("monitored_groups"))
	cfg.ApprovedKeywords = stringList(k.Get("approved_keywords"))
	cfg.TargetChannel = scalarString(k.Get("target_channel"))

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	mode, err := ParseHealthMode(k.String("health_mode"))
	if err != nil {
		return nil, oops.With("health_mode", k.String("health_mode")).Wrap(apperrors.ErrUnknownHealthMode)
	}
	cfg.HealthMode = mode

	backend, err := ParseDedupBackend(k.String("dedup_backend"))
	if err != nil {
		return nil, oops.With("dedup_backend", k.String("dedup_backend")).Wrap(apperrors.ErrUnknownDedupBackend)
	}
	cfg.DedupBackend = backend

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields. Missing credentials and an empty routing
// setup are reported with the matching sentinel error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return oops.With("context", "validating config").Wrap(err)
	}

	first := fieldErrs[0]
	switch first.StructField() {
	case "TelegramBotToken":
		return apperrors.ErrMissingBotToken
	case "MonitoredGroups":
		return apperrors.ErrNoMonitoredGroups
	case "TargetChannel":
		return apperrors.ErrMissingTarget
	case "ApprovedKeywords":
		return apperrors.ErrNoKeywords
	default:
		return oops.
			With("field", first.StructField(), "rule", first.Tag()).
			Errorf("invalid config value for %s", first.Field())
	}
}

// SlogLevel parses LogLevel, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Redacted returns a copy that is safe to print.
func (c Config) Redacted() Config {
	if c.TelegramBotToken != "" {
		c.TelegramBotToken = "***"
	}
	return c
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, oops.Errorf("unsupported config file extension: %s", ext)
	}
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]interface{}{
		"telegram_api_url":     "https://api.telegram.org",
		"approved_keywords":    DefaultApprovedKeywords,
		"port":                 8000,
		"health_mode":          string(HealthModeRaw),
		"data_dir":             "./data",
		"log_file":             "./logs/activity.log",
		"log_level":            "info",
		"workers":              16,
		"dedup_backend":        string(DedupBackendMemory),
		"dedup_ttl":            "0s",
		"dedup_prune_schedule": "@every 1h",
		"app_env":              string(AppEnvProduction),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
func ParseList(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}

// stringList accepts either a comma-separated string (env) or a list (file).
func stringList(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		return ParseList(val)
	case []string:
		return lo.FilterMap(val, func(item string, _ int) (string, bool) {
			item = strings.TrimSpace(item)
			return item, item != ""
		})
	case []interface{}:
		return lo.FilterMap(val, func(item interface{}, _ int) (string, bool) {
			s := strings.TrimSpace(scalarString(item))
			return s, s != ""
		})
	default:
		return []string{scalarString(val)}
	}
}

// scalarString renders chat ids parsed as numbers by JSON or YAML without
// scientific notation.
func scalarString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
