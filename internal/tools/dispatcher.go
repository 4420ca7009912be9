// ABOUTME: Routes MCP tool invocations to Dex client calls.
// ABOUTME: Converts every outcome, success or failure, into a single text result.

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/2389/dex-mcp/internal/dex"
)

// Handler executes one tool call against the CRM client.
type Handler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Tool pairs an MCP tool definition with its handler.
type Tool struct {
	Definition mcp.Tool
	Handler    Handler
}

// Dispatcher holds the tool catalog and the single long-lived client.
// It is a boundary that must stay alive across arbitrarily many tool
// calls: no failure below it escapes as anything but a text result.
type Dispatcher struct {
	client *dex.Client
	logger *slog.Logger
	tools  map[string]Tool
	order  []string // catalog order for listing
}

// NewDispatcher builds a dispatcher with the full 16-tool catalog.
func NewDispatcher(client *dex.Client, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		client: client,
		logger: logger,
		tools:  make(map[string]Tool),
	}

	for _, group := range [][]Tool{d.contactTools(), d.noteTools(), d.reminderTools()} {
		for _, tool := range group {
			d.tools[tool.Definition.Name] = tool
			d.order = append(d.order, tool.Definition.Name)
		}
	}

	return d
}

// Dispatch routes one (name, arguments) pair to its handler. It always
// produces a text result: unknown names and handler failures become
// descriptive text payloads rather than protocol errors, so one bad
// call never terminates the session.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	tool, ok := d.tools[name]
	if !ok {
		d.logger.Warn("unknown tool requested", "tool", name)
		return textResult(fmt.Sprintf("Unknown tool: %s", name))
	}

	callID := uuid.New().String()
	d.logger.Debug("dispatching tool call", "tool", name, "call_id", callID)

	result, err := tool.Handler(ctx, args)
	if err != nil {
		d.logger.Warn("tool call failed", "tool", name, "call_id", callID, "error", err)
		return textResult("Error: " + err.Error())
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		d.logger.Warn("encoding tool result", "tool", name, "call_id", callID, "error", err)
		return textResult("Error: " + err.Error())
	}

	d.logger.Debug("tool call complete", "tool", name, "call_id", callID)
	return textResult(string(out))
}

// Register adds every catalog entry to the MCP server. Handlers route
// through Dispatch, so the server never sees a tool-level error.
func (d *Dispatcher) Register(srv *server.MCPServer) {
	for _, name := range d.order {
		tool := d.tools[name]
		srv.AddTool(tool.Definition, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return d.Dispatch(ctx, req.Params.Name, req.GetArguments()), nil
		})
	}
}

// Tools returns the catalog in registration order.
func (d *Dispatcher) Tools() []Tool {
	tools := make([]Tool, 0, len(d.order))
	for _, name := range d.order {
		tools = append(tools, d.tools[name])
	}
	return tools
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}
