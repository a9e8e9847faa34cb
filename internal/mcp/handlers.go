package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ackhava/homepage/internal/page"
	"github.com/ackhava/homepage/internal/shell"
	"github.com/ackhava/homepage/internal/vfs"
)

// handleTerminalExec runs one command line through the shared interpreter.
func (s *Server) handleTerminalExec(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line, err := request.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: command"), nil
	}

	// Record under the lock so history follows execution order.
	s.mu.Lock()
	out := s.interp.Execute(line)
	cwd := s.interp.Cwd()
	if s.recorder != nil {
		s.recorder.Record(line, out, cwd)
	}
	s.mu.Unlock()

	text := shell.PlainText(out)
	if out.Kind == shell.OutputError {
		return mcp.NewToolResultError(text), nil
	}
	if text == "" {
		text = "(no output)"
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s\n\ncwd: %s", text, cwd)), nil
}

// handleListDirectory lists a directory relative to the working directory.
func (s *Server) handleListDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target := request.GetString("path", "")

	s.mu.Lock()
	cwd := s.interp.Cwd()
	s.mu.Unlock()

	dir := cwd
	if target != "" {
		dir = vfs.Resolve(cwd, target)
	}
	if !s.fsys.IsDir(dir) {
		return mcp.NewToolResultError(fmt.Sprintf("No such directory: %s", target)), nil
	}

	entries := s.fsys.ListChildren(dir)
	if len(entries) == 0 {
		return mcp.NewToolResultText(dir + " is empty"), nil
	}
	return mcp.NewToolResultText(strings.Join(entries, "\n")), nil
}

// handleRenderPage renders a page with its embeds expanded.
func (s *Server) handleRenderPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	route := page.ParseRoute(name)
	if route.View == page.ViewTerminal {
		return mcp.NewToolResultError("terminal is not a page; use terminal_exec"), nil
	}

	p, err := s.loader.Load(ctx, route.Page)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering %s failed: %v", route.Page, err)), nil
	}

	switch p.Status {
	case page.StatusNotFound:
		return mcp.NewToolResultError(fmt.Sprintf("page %q not found", route.Page)), nil
	case page.StatusError:
		return mcp.NewToolResultError(fmt.Sprintf("page %q could not be fetched", route.Page)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("<!-- %s -->\n%s", p.Title, p.HTML)), nil
}
