package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cameronsjo/mcp-bindgen/internal/codegen"
	"github.com/cameronsjo/mcp-bindgen/internal/config"
	"github.com/cameronsjo/mcp-bindgen/internal/transport"
)

func main() {
	_ = godotenv.Load()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bindgen",
		Short:         "bindgen - typed binding generator for MCP tool servers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newGenerateCmd())
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		serverName string
		command    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Connect to MCP servers and generate typed tool bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.ResolveSettings(cmd)
			if err != nil {
				return err
			}

			logger := buildLogger(settings.Verbose)
			defer func() { _ = logger.Sync() }()
			logger = logger.With(zap.String("run_id", uuid.NewString()))

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			reg := transport.NewRegistry(
				transport.WithLogger(logger),
				transport.WithCallTimeout(settings.Timeout),
			)
			defer func() { _ = reg.DisconnectAll() }()

			servers, err := resolveServers(reg, serverName, command, settings.ConfigPath)
			if err != nil {
				return err
			}

			driver := codegen.NewDriver(reg, logger)

			total := 0
			for _, name := range servers {
				report, err := driver.Run(ctx, name, settings.OutputDir)
				if err != nil {
					return fmt.Errorf("server %q: %w", name, err)
				}
				total += report.ToolCount
			}

			fmt.Printf("generated %d tool binding(s) across %d server(s) in %s\n",
				total, len(servers), settings.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&serverName, "server", "s", "", "server name (with --config: comma-separated filter)")
	cmd.Flags().StringVarP(&command, "command", "c", "", "shell-style command line that starts the server")
	cmd.Flags().String("config", "", "path to a config file with an mcpServers mapping")
	cmd.Flags().StringP("output", "o", "./generated", "output directory for generated bindings")
	cmd.Flags().Duration("timeout", 60*time.Second, "per-call timeout")
	cmd.Flags().BoolP("verbose", "v", false, "verbose logging")

	return cmd
}

// resolveServers registers the targeted servers and returns their names in a
// stable order. Either --command names a single ad-hoc server, or a config
// file supplies the registry (optionally filtered by --server).
func resolveServers(reg *transport.Registry, serverName, command, configPath string) ([]string, error) {
	if command != "" {
		if serverName == "" {
			return nil, fmt.Errorf("--server is required with --command")
		}
		// Naive whitespace split; quoting is the caller's responsibility.
		fields := strings.Fields(command)
		if len(fields) == 0 {
			return nil, fmt.Errorf("--command must not be empty")
		}
		reg.RegisterServer(serverName, transport.ServerConfig{
			Command: fields[0],
			Args:    fields[1:],
		})
		return []string{serverName}, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nHint: pass --command to introspect an ad-hoc server, or --config / BINDGEN_CONFIG for a server registry", err)
	}

	for name, serverCfg := range cfg.McpServers {
		reg.RegisterServer(name, serverCfg)
	}

	if serverName != "" {
		requested := strings.Split(serverName, ",")
		names := make([]string, 0, len(requested))
		for _, name := range requested {
			name = strings.TrimSpace(name)
			if _, ok := cfg.McpServers[name]; !ok {
				return nil, fmt.Errorf("server %q not found in config", name)
			}
			names = append(names, name)
		}
		return names, nil
	}

	names := make([]string, 0, len(cfg.McpServers))
	for name := range cfg.McpServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func buildLogger(verbose bool) *zap.Logger {
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
