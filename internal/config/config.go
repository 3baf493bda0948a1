// Package config loads the server registry file (a JSON mcpServers mapping)
// and resolves CLI settings from flags and environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cameronsjo/mcp-bindgen/internal/transport"
)

// Config is the parsed server registry file.
type Config struct {
	McpServers map[string]transport.ServerConfig `json:"mcpServers"`
}

// DefaultSearchPaths are tried in order when no config path is given.
func DefaultSearchPaths() []string {
	paths := []string{"bindgen.json"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mcp-bindgen", "bindgen.json"))
	}
	return paths
}

// Load reads and validates the registry file. With an empty path the default
// search paths are tried. The file is decoded with encoding/json directly so
// env variable names keep their case.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range DefaultSearchPaths() {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return nil, fmt.Errorf("no config file found in %v", DefaultSearchPaths())
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.McpServers) == 0 {
		return fmt.Errorf("no servers configured")
	}

	for name, server := range cfg.McpServers {
		switch server.Type {
		case "", "stdio":
			if server.Command == "" {
				return fmt.Errorf("server %q: command is required for stdio transport", name)
			}
		case "http", "sse":
			if server.URL == "" {
				return fmt.Errorf("server %q: url is required for %s transport", name, server.Type)
			}
		default:
			return fmt.Errorf("server %q: invalid type %q (must be stdio, http, or sse)", name, server.Type)
		}
	}

	return nil
}

// Settings are the resolved CLI options, with flag values taking precedence
// over BINDGEN_* environment variables.
type Settings struct {
	ConfigPath string
	OutputDir  string
	Timeout    time.Duration
	Verbose    bool
}

// ResolveSettings merges a command's flags with the environment.
func ResolveSettings(cmd *cobra.Command) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("BINDGEN")
	v.AutomaticEnv()

	for _, name := range []string{"config", "output", "timeout", "verbose"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return Settings{}, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return Settings{
		ConfigPath: v.GetString("config"),
		OutputDir:  v.GetString("output"),
		Timeout:    v.GetDuration("timeout"),
		Verbose:    v.GetBool("verbose"),
	}, nil
}
