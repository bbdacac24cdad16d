package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/object-viewer/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the object viewer",
	Long: `Start a Model Context Protocol (MCP) server that exposes the viewer session
as tools: tree, expand, collapse, select, inspect, eval and set_mode.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  object-viewer serve
  object-viewer serve --transport streamable-http --port 8080
  object-viewer serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 30000, "Icon cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	iconTTL := time.Duration(cacheTTLMs) * time.Millisecond
	if cacheTTLMs <= 0 {
		iconTTL = -1
	}
	ctrl, err := newController(nil, iconTTL)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer ctrl.Close()

	return server.New(ctrl, logger).Serve(server.Config{Transport: transport, Port: port})
}
