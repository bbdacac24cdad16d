// Package server exposes the viewer session as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/object-viewer/internal/logging"
	"github.com/mj1618/object-viewer/internal/session"
	"github.com/mj1618/object-viewer/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around one session controller. Tool calls are
// serialized because the controller is single-threaded.
type Server struct {
	ctrl *session.Controller
	log  *slog.Logger
	mu   sync.Mutex
	mcp  *mcpserver.MCPServer
}

// New creates a server with all object-viewer tools registered.
func New(ctrl *session.Controller, log *slog.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Server{ctrl: ctrl, log: log}
	s.mcp = mcpserver.NewMCPServer("object-viewer", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.log.Info("mcp server starting", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Show the materialized accessibility object tree. With 'from', first reveal and select the focus, mouse or navigator object."),
			mcp.WithString("from", mcp.Description("Select this object first: focus, mouse, navigator")),
			mcp.WithBoolean("flat", mcp.Description("Return a flat list with path breadcrumbs")),
			mcp.WithBoolean("refresh", mcp.Description("Discard the tree and rebuild it from the desktop")),
		),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("expand",
			mcp.WithDescription("Expand a tree node, populating its children with the active population mode"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Object ID of a node in the tree")),
		),
		s.handleExpand,
	)

	s.mcp.AddTool(
		mcp.NewTool("collapse",
			mcp.WithDescription("Collapse a tree node, releasing all of its descendants"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Object ID of a node in the tree")),
		),
		s.handleCollapse,
	)

	s.mcp.AddTool(
		mcp.NewTool("select",
			mcp.WithDescription("Reveal and select an object, expanding only the nodes on its ancestor chain. Switches population to iterator mode."),
			mcp.WithString("id", mcp.Description("Object ID to select")),
			mcp.WithString("from", mcp.Description("Select the focus, mouse or navigator object instead")),
		),
		s.handleSelect,
	)

	s.mcp.AddTool(
		mcp.NewTool("inspect",
			mcp.WithDescription("List the developer attributes of an object (default: the selected object)"),
			mcp.WithString("id", mcp.Description("Object ID to inspect")),
		),
		s.handleInspect,
	)

	s.mcp.AddTool(
		mcp.NewTool("eval",
			mcp.WithDescription("Evaluate a Lua line in the console namespace. 'obj' is the selected object; focus, nav, mouse and desktop are also bound."),
			mcp.WithString("code", mcp.Required(), mcp.Description("Expression or statement")),
		),
		s.handleEval,
	)

	s.mcp.AddTool(
		mcp.NewTool("set_mode",
			mcp.WithDescription("Change viewer modes. Every change collapses the tree; the review options also switch population to iterator mode."),
			mcp.WithString("population", mcp.Description("Population mode: children, iterator")),
			mcp.WithBoolean("nvda_review", mcp.Description("Follow the host's simple review preference")),
			mcp.WithBoolean("simple_review", mcp.Description("Use simplified relations (only when nvda_review is off)")),
		),
		s.handleSetMode,
	)
}
