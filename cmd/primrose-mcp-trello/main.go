// Package main is the entry point for the primrose-mcp-trello gateway.
//
// The binary exposes the Trello REST API as Model Context Protocol tools
// over a Streamable HTTP transport. Startup sequence:
//
// 1. Initialize logging system
// 2. Load configuration (config file, environment, optional .env)
// 3. Build the MCP server and register every tool
// 4. Serve HTTP until SIGINT/SIGTERM, then shut down gracefully
//
// Tenant credentials are never configured here; they arrive per request
// in HTTP headers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/config"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/logging"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/mcp"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "primrose-mcp-trello",
		Short: "MCP gateway for the Trello REST API",
		Long: "primrose-mcp-trello exposes Trello boards, lists, cards, checklists,\n" +
			"labels, members, workspaces, search, webhooks and custom fields as\n" +
			"typed MCP tools over a Streamable HTTP transport.",
	}

	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			appLogger := logging.NewAppLogger()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}

			appLogger.Info("Configuration loaded", "addr", cfg.Addr, "trelloBaseURL", cfg.TrelloBaseURL)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(cfg, appLogger)
			return server.Serve(ctx)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the gateway version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", mcp.ServerName, mcp.Version)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
