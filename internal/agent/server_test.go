package agent

import (
	"context"
	"encoding/json"
	"testing"

	"dxfolio/internal/catalog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewServer(cat, "simon-ws", "test")
}

func toolByName(t *testing.T, s *Server, name string) server.ServerTool {
	t.Helper()
	for _, tool := range s.Tools() {
		if tool.Tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %s not registered", name)
	return server.ServerTool{}
}

func call(t *testing.T, s *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := toolByName(t, s, name).Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestTools(t *testing.T) {
	s := newTestServer(t)

	names := make(map[string]bool)
	for _, tool := range s.Tools() {
		names[tool.Tool.Name] = true
	}
	assert.Len(t, names, 4)
	assert.True(t, names["portfolio_list"])
	assert.True(t, names["portfolio_open"])
	assert.True(t, names["portfolio_exec"])
	assert.True(t, names["portfolio_profile"])
}

func TestHandleList(t *testing.T) {
	s := newTestServer(t)

	result := call(t, s, "portfolio_list", nil)
	assert.False(t, result.IsError)

	var decoded struct {
		Entities []entitySummary `json:"entities"`
		Total    int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	assert.Equal(t, 6, decoded.Total)
	assert.Equal(t, "U_BAE_01", decoded.Entities[0].RefDes)
}

func TestHandleOpen(t *testing.T) {
	s := newTestServer(t)

	result := call(t, s, "portfolio_open", map[string]interface{}{"refDes": "tech_dev"})
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Actuator Control Board")

	result = call(t, s, "portfolio_open", map[string]interface{}{"refDes": "ZZZ"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "'ZZZ' not found")

	result = call(t, s, "portfolio_open", map[string]interface{}{})
	assert.True(t, result.IsError)
}

func TestHandleExec(t *testing.T) {
	s := newTestServer(t)

	result := call(t, s, "portfolio_exec", map[string]interface{}{"line": "open JUN_PROJ"})
	assert.False(t, result.IsError)
	assert.Equal(t,
		"user@simon-ws:~$ open JUN_PROJ\nOpening design files for: Colpitts Metal Detector...",
		resultText(t, result))
}

func TestHandleProfile(t *testing.T) {
	s := newTestServer(t)

	text := resultText(t, call(t, s, "portfolio_profile", nil))
	assert.Contains(t, text, "Simon Bullock | Electrical Engineer")
	assert.Contains(t, text, "Email: simonscholar155@gmail.com")
}
