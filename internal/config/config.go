// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"sketchmap/internal/geom"
)

// Config holds every tunable. Tags use the form `env:"KEY"` (required) or
// `env:"KEY,default"`.
type Config struct {
	HandleSize float64 `env:"SKETCHMAP_HANDLE_SIZE,8"`
	MinSize    float64 `env:"SKETCHMAP_MIN_SIZE,20"`

	Log Log
}

type Log struct {
	Level      string `env:"SKETCHMAP_LOG_LEVEL,info"`
	File       string `env:"SKETCHMAP_LOG_FILE,sketchmap.log"`
	Console    bool   `env:"SKETCHMAP_LOG_CONSOLE,false"`
	Formatted  bool   `env:"SKETCHMAP_LOG_FORMATTED,true"`
	MaxSizeMB  int    `env:"SKETCHMAP_LOG_MAX_SIZE_MB,5"`
	MaxBackups int    `env:"SKETCHMAP_LOG_MAX_BACKUPS,3"`
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing files are skipped; variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes the geometry code cannot work with.
func (c Config) Validate() error {
	if !positiveFinite(c.HandleSize) {
		return fmt.Errorf("handle size must be positive and finite, got %v", c.HandleSize)
	}
	if !positiveFinite(c.MinSize) {
		return fmt.Errorf("min size must be positive and finite, got %v", c.MinSize)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (c Config) Metrics() geom.Metrics {
	return geom.Metrics{HandleSize: c.HandleSize, MinSize: c.MinSize}
}

// Decode fills the tagged fields of the struct pointed to by dst from the
// environment, recursing into nested structs.
func Decode(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: expected a pointer to a struct, got %T", dst)
	}
	return decodeStruct(v.Elem())
}

func decodeStruct(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field, sf := v.Field(i), t.Field(i)
		if field.Kind() == reflect.Struct {
			if err := decodeStruct(field); err != nil {
				return err
			}
			continue
		}
		tag := sf.Tag.Get("env")
		if tag == "" {
			continue
		}
		key, def, hasDef := strings.Cut(tag, ",")
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			if !hasDef {
				return fmt.Errorf("missing required env variable %q (for field %q)", key, sf.Name)
			}
			raw = def
		}
		if err := setField(field, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
