package mcp

import "github.com/mark3labs/mcp-go/mcp"

// terminalExecTool defines the terminal_exec MCP tool.
var terminalExecTool = mcp.NewTool("terminal_exec",
	mcp.WithDescription("Run a command in the site's simulated terminal. Supports cd <dir>, ls and cat <file>. The working directory persists between calls."),
	mcp.WithString("command",
		mcp.Required(),
		mcp.Description("Command line, e.g. \"ls\" or \"cat resume.md\""),
	),
)

// listDirectoryTool defines the list_directory MCP tool.
var listDirectoryTool = mcp.NewTool("list_directory",
	mcp.WithDescription("List a directory of the simulated terminal without changing the working directory."),
	mcp.WithString("path",
		mcp.Description("Directory to list, relative to the working directory or starting with ~ (default: working directory)"),
	),
)

// renderPageTool defines the render_page MCP tool.
var renderPageTool = mcp.NewTool("render_page",
	mcp.WithDescription("Render a site page to HTML with its markdown embeds expanded."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Page name without the .md suffix, e.g. \"index\" or \"about\""),
	),
)
