package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// FileConfig is the schema of the optional YAML config file.
type FileConfig struct {
	Format     string   `yaml:"format"`
	Schemeless *bool    `yaml:"schemeless"`
	Verbose    *bool    `yaml:"verbose"`
	Paths      []string `yaml:"paths"`

	HTTP struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"http"`

	RefreshSchedule string `yaml:"refresh_schedule"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_in_seconds"`
}

// LoadConfigFile reads a YAML config file. Unknown keys are rejected so
// typos do not go unnoticed.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig

	b, err := os.ReadFile(path)
	if err != nil {
		return fc, &entities.IOError{Path: path, Op: "read config", Err: err}
	}

	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parse config `%s`: %w", path, err)
	}

	return fc, nil
}

// ApplyFileConfig registers every value set in fc as a default of v.
func ApplyFileConfig(v *viper.Viper, fc FileConfig) {
	if fc.Format != "" {
		v.SetDefault(KeyFormat, fc.Format)
	}
	if fc.Schemeless != nil {
		v.SetDefault(KeySchemeless, *fc.Schemeless)
	}
	if fc.Verbose != nil {
		v.SetDefault(KeyVerbose, *fc.Verbose)
	}
	if len(fc.Paths) > 0 {
		v.SetDefault(KeyPaths, append([]string{}, fc.Paths...))
	}
	if fc.HTTP.Host != "" {
		v.SetDefault(KeyHTTPHost, fc.HTTP.Host)
	}
	if fc.HTTP.Port != 0 {
		v.SetDefault(KeyHTTPPort, fc.HTTP.Port)
	}
	if fc.RefreshSchedule != "" {
		v.SetDefault(KeyRefreshSchedule, fc.RefreshSchedule)
	}
	if fc.ShutdownTimeout > 0 {
		v.SetDefault(KeyShutdownTimeout, fc.ShutdownTimeout)
	}
}
