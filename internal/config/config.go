// Package config loads companion settings from a YAML file, an optional
// .env file and COMPANION_* environment variables, in that order of
// increasing precedence. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COMPANION_"

// ErrInvalid is returned when the merged configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Data   DataConfig `yaml:"data"`
	Plan   PlanConfig `yaml:"plan"`
	Log    LogConfig  `yaml:"log"`
	Output string     `yaml:"output" validate:"oneof=text json yaml"`
}

// DataConfig selects the relationship dataset.
type DataConfig struct {
	// Path to the dataset; empty selects the bundled dataset.
	Path string `yaml:"path"`

	// Format overrides detection by extension.
	Format string `yaml:"format" validate:"omitempty,oneof=csv json yaml yml xlsx sqlite"`

	Sheet string `yaml:"sheet"`
	Table string `yaml:"table"`

	DuplicatePolicy string `yaml:"duplicate_policy" validate:"oneof=last-write-wins reject"`
}

// PlanConfig holds planning defaults.
type PlanConfig struct {
	Preferred    []string `yaml:"preferred" validate:"dive,required"`
	MaxGroupSize int      `yaml:"max_group_size" validate:"gte=2,lte=5"`
	Extensions   bool     `yaml:"extensions"`
	HelperLimit  int      `yaml:"helper_limit" validate:"gte=1,lte=100"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:   DataConfig{DuplicatePolicy: "last-write-wins"},
		Plan:   PlanConfig{MaxGroupSize: 4, Extensions: true, HelperLimit: 10},
		Log:    LogConfig{Level: "info", Format: "text"},
		Output: "text",
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty),
// the .env file at envFile (skipped when empty or missing) and the process
// environment, then validates the result.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config: reading %s: %w", envFile, err)
		}
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays COMPANION_* variables found through lookup.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("DATA", &cfg.Data.Path)
	str("FORMAT", &cfg.Data.Format)
	str("SHEET", &cfg.Data.Sheet)
	str("TABLE", &cfg.Data.Table)
	str("DUPLICATE_POLICY", &cfg.Data.DuplicatePolicy)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("OUTPUT", &cfg.Output)

	if v, ok := lookup(EnvPrefix + "PREFER"); ok {
		cfg.Plan.Preferred = SplitList(v)
	}
	if v, ok := lookup(EnvPrefix + "EXTENSIONS"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sEXTENSIONS: %w", EnvPrefix, err)
		}
		cfg.Plan.Extensions = b
	}
	if err := num("MAX_GROUP_SIZE", &cfg.Plan.MaxGroupSize); err != nil {
		return err
	}

	return num("HELPER_LIMIT", &cfg.Plan.HelperLimit)
}

// SplitList splits a comma-separated list, trimming blanks and dropping
// empty entries.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks field constraints. Failures wrap ErrInvalid and name
// every offending field by its YAML path.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s%s", fieldPath(fe.Namespace()), fe.Value(), fe.Tag(), param(fe.Param())))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func param(p string) string {
	if p == "" {
		return ""
	}

	return "=" + p
}

// fieldPath drops the root type from "Config.plan.max_group_size".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}
