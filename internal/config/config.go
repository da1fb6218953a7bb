package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type (
	Config struct {
		Extract
		HTTP
		Refresh
		Global
	}

	Extract struct {
		Format     string // FormatSpec letters, e.g. "tud"
		Schemeless bool   // Also match bare host names in plain text files
		Verbose    bool
		Paths      []string // Sources used when none are given on the command line
	}
	HTTP struct {
		Port int32
		Host string
	}
	Refresh struct {
		Schedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// NewViper returns a viper instance with every default registered and
// environment lookup enabled. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeySchemeless, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyConfigFile, "")
	v.SetDefault(KeyPaths, []string{})
	v.SetDefault(KeyHTTPHost, DefaultHTTPHost)
	v.SetDefault(KeyHTTPPort, DefaultHTTPPort)
	v.SetDefault(KeyRefreshSchedule, DefaultRefreshSchedule)
	v.SetDefault(KeyShutdownTimeout, DefaultShutdownTimeout)

	return v
}

// NewConfig resolves the configuration from v. When a config file is
// named, its values replace the built-in defaults, so flags and environment
// variables still take precedence over it.
func NewConfig(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		fc, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		ApplyFileConfig(v, fc)
	}

	port := v.GetInt(KeyHTTPPort)
	if port < 1 || port > 65535 {
		return nil, &entities.ConfigError{Key: KeyHTTPPort, Value: strconv.Itoa(port), Reason: "must be between 1 and 65535"}
	}

	return &Config{
		Extract: Extract{
			Format:     v.GetString(KeyFormat),
			Schemeless: v.GetBool(KeySchemeless),
			Verbose:    v.GetBool(KeyVerbose),
			Paths:      getPaths(v),
		},
		HTTP: HTTP{
			Port: int32(port),
			Host: v.GetString(KeyHTTPHost),
		},
		Refresh: Refresh{
			Schedule: v.GetString(KeyRefreshSchedule),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt(KeyShutdownTimeout),
		},
	}, nil
}

// Address returns the host:port pair the HTTP server listens on.
func (h HTTP) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// getPaths reads the path list. From the environment it is a single string
// split on the OS list separator, like PATH.
func getPaths(v *viper.Viper) []string {
	if raw, ok := v.Get(KeyPaths).(string); ok {
		var paths []string
		for _, p := range filepath.SplitList(raw) {
			if p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}
	return v.GetStringSlice(KeyPaths)
}
