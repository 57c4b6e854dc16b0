package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dxfolio/internal/catalog"
	"dxfolio/internal/command"
	"dxfolio/internal/terminal"
	"dxfolio/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "Agent"

// Server serves the portfolio tools.
type Server struct {
	catalog *catalog.Catalog
	host    string
	mcp     *server.MCPServer
}

// NewServer creates a server for cat. host is used in echoed prompts.
func NewServer(cat *catalog.Catalog, host, version string) *Server {
	s := &Server{
		catalog: cat,
		host:    host,
		mcp:     server.NewMCPServer("dxfolio", version, server.WithToolCapabilities(false)),
	}
	s.mcp.AddTools(s.Tools()...)
	return s
}

// ServeStdio blocks serving MCP on stdin/stdout.
func (s *Server) ServeStdio() error {
	logging.Info(subsystem, "Serving %d tools over stdio", len(s.Tools()))
	return server.ServeStdio(s.mcp)
}

// Tools returns the tool definitions with their handlers.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("portfolio_list",
				mcp.WithDescription("List every project on the sheet with its reference designator"),
			),
			Handler: s.handleList,
		},
		{
			Tool: mcp.NewTool("portfolio_open",
				mcp.WithDescription("Get the full documentation of one project"),
				mcp.WithString("refDes",
					mcp.Required(),
					mcp.Description("Reference designator, e.g. U_BAE_01 (case-insensitive)"),
				),
			),
			Handler: s.handleOpen,
		},
		{
			Tool: mcp.NewTool("portfolio_exec",
				mcp.WithDescription("Run one portfolio command line (help, list, open, resume, contact)"),
				mcp.WithString("line",
					mcp.Required(),
					mcp.Description("Command line to run"),
				),
			),
			Handler: s.handleExec,
		},
		{
			Tool: mcp.NewTool("portfolio_profile",
				mcp.WithDescription("Get the resume summary and contact details"),
			),
			Handler: s.handleProfile,
		},
	}
}

type entitySummary struct {
	ID     string   `json:"id"`
	RefDes string   `json:"refDes"`
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Tags   []string `json:"tags,omitempty"`
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list := make([]entitySummary, 0, s.catalog.Len())
	for _, e := range s.catalog.Entities {
		list = append(list, entitySummary{ID: e.ID, RefDes: e.RefDes, Title: e.Title, Type: string(e.Type), Tags: e.Tags})
	}
	result := map[string]interface{}{
		"entities": list,
		"total":    len(list),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format entities: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleOpen(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("refDes")
	if err != nil {
		return mcp.NewToolResultError("refDes is required"), nil
	}
	e, ok := s.catalog.ByRefDes(ref)
	if !ok {
		msg := fmt.Sprintf("Component '%s' not found", ref)
		if suggestion, found := command.Suggest(ref, s.catalog); found {
			msg += fmt.Sprintf(", did you mean '%s'?", suggestion)
		}
		return mcp.NewToolResultError(msg), nil
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format entity: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleExec(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line, err := req.RequireString("line")
	if err != nil {
		return mcp.NewToolResultError("line is required"), nil
	}
	logging.Debug(subsystem, "exec %q", line)

	var panel terminal.Panel
	panel, _ = panel.Submit(line, s.catalog, s.host)
	return mcp.NewToolResultText(strings.Join(panel.Lines, "\n")), nil
}

func (s *Server) handleProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := s.catalog.Profile
	lines := append([]string{p.Name + " | " + p.Headline, ""}, p.Resume...)
	lines = append(lines, "")
	lines = append(lines, p.Contact...)
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}
