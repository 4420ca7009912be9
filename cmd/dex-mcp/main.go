// ABOUTME: Entry point for the dex-mcp stdio server
// ABOUTME: Exposes the Dex CRM API as MCP tools over stdin/stdout

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/mark3labs/mcp-go/server"

	"github.com/2389/dex-mcp/internal/config"
	"github.com/2389/dex-mcp/internal/dex"
	"github.com/2389/dex-mcp/internal/tools"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
     _
  __| | _____  __     _ __ ___   ___ _ __
 / _' |/ _ \ \/ /____| '_ ' _ \ / __| '_ \
| (_| |  __/>  <_____| | | | | | (__| |_) |
 \__,_|\___/_/\_\    |_| |_| |_|\___| .__/
                                    |_|
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: dex-mcp <command>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  serve     Start the MCP server on stdin/stdout")
		fmt.Fprintln(os.Stderr, "  tools     List the tool catalog")
		fmt.Fprintln(os.Stderr, "  init      Create a starter config file")
		fmt.Fprintln(os.Stderr, "  version   Print the version")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "tools":
		err = runTools()
	case "init":
		err = runInit()
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runServe wires the client, dispatcher, and MCP server together and
// serves until stdin closes or a signal arrives. Everything
// human-readable goes to stderr: stdout belongs to the protocol.
func runServe(ctx context.Context) error {
	configPath := config.Path()

	cyan := color.New(color.FgCyan)
	cyan.Fprint(os.Stderr, banner)

	gray := color.New(color.FgHiBlack)
	gray.Fprintf(os.Stderr, "    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	green.Fprint(os.Stderr, "    ▶ ")
	fmt.Fprintf(os.Stderr, "Config:   %s\n", configPath)
	green.Fprint(os.Stderr, "    ▶ ")
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = dex.DefaultBaseURL
	}
	fmt.Fprintf(os.Stderr, "Dex API:  %s\n", baseURL)
	fmt.Fprintln(os.Stderr)

	logger.Info("starting dex-mcp",
		"config", configPath,
		"base_url", baseURL,
		"version", version,
	)

	client := dex.NewClient(dex.ClientConfig{
		APIKey:  cfg.API.Key,
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})

	d := tools.NewDispatcher(client, logger)

	srv := server.NewMCPServer("dex-mcp-server", version,
		server.WithToolCapabilities(false),
	)
	d.Register(srv)

	logger.Info("serving on stdio", "tools", len(d.Tools()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ServeStdio(srv)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving stdio: %w", err)
		}
		return nil
	}
}

// runTools prints the catalog without contacting the Dex API.
func runTools() error {
	client := dex.NewClient(dex.ClientConfig{APIKey: "unused"})
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	d := tools.NewDispatcher(client, logger)

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	for _, tool := range d.Tools() {
		cyan.Printf("%-28s", tool.Definition.Name)
		gray.Printf("  %s\n", tool.Definition.Description)
	}
	return nil
}

// runInit writes a starter config file at the default location.
func runInit() error {
	path := config.Path()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	content := fmt.Sprintf(`# dex-mcp configuration
# Generated by dex-mcp init
#
# Get an API key from %s

api:
  key: "${DEX_API_KEY}"
  base_url: "%s"
  timeout: "30s"

logging:
  level: "info"
  format: "text"
`, config.KeySettingsURL, dex.DefaultBaseURL)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("  ✓ Created config: %s\n", path)
	fmt.Println("\nTo start the server:")
	fmt.Println("  DEX_API_KEY=... dex-mcp serve")
	return nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output on stderr with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	buf.WriteString(r.Message)

	// Handler-level attrs first (from WithAttrs), then record attrs
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Fprint(os.Stderr, buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}
