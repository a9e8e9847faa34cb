package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ackhava/homepage/internal/page"
	"github.com/ackhava/homepage/internal/shell"
	"github.com/ackhava/homepage/internal/vfs"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Recorder observes executed commands, e.g. a history.Recorder.
type Recorder interface {
	Record(line string, out shell.Output, cwd string)
}

// Server wraps an MCP server that exposes the terminal and page renderer.
// One interpreter is shared by every call, so cd persists between calls.
type Server struct {
	fsys     *vfs.FileSystem
	loader   *page.Loader
	recorder Recorder

	mu     sync.Mutex
	interp *shell.Interpreter

	mcp *server.MCPServer
}

// NewServer creates a new MCP server. recorder may be nil.
func NewServer(fsys *vfs.FileSystem, loader *page.Loader, recorder Recorder) *Server {
	s := &Server{
		fsys:     fsys,
		loader:   loader,
		recorder: recorder,
		interp:   shell.NewInterpreter(fsys),
	}

	s.mcp = server.NewMCPServer(
		"homepage",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(terminalExecTool, s.handleTerminalExec)
	s.mcp.AddTool(listDirectoryTool, s.handleListDirectory)
	s.mcp.AddTool(renderPageTool, s.handleRenderPage)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
