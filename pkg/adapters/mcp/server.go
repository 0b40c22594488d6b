package mcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/sanitize"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/observability"
	"github.com/aretw0/drills/pkg/registry"
	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ScriptsURI is the resource listing every script.
const ScriptsURI = "drills://scripts"

// Runner is what the MCP server needs from the drills facade.
type Runner interface {
	Scripts() []registry.Script
	Run(ctx context.Context, name string, args []string, stdout io.Writer) error
}

// Server exposes the scripts as MCP tools. Scripts that touch the local
// file system are left out unless WithFileAccess(true) is given.
type Server struct {
	runner     Runner
	metrics    *observability.Metrics
	logger     *slog.Logger
	allowFiles bool
	tools      []string
	withheld   map[string]bool
	mcpServer  *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics counts tool calls on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the tool call logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithFileAccess exposes the scripts that read or write local files.
func WithFileAccess(allow bool) Option {
	return func(s *Server) {
		s.allowFiles = allow
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(runner Runner, opts ...Option) *Server {
	s := &Server{
		runner:    runner,
		logger:    slog.Default(),
		withheld:  make(map[string]bool),
		mcpServer: server.NewMCPServer("drills-mcp", drills.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// Tools returns the names of the registered tools in registration order.
func (s *Server) Tools() []string {
	return slices.Clone(s.tools)
}

func (s *Server) registerTools() {
	for _, script := range s.runner.Scripts() {
		if script.Files && !s.allowFiles {
			s.withheld[script.Name] = true
			continue
		}
		tool := mcp.NewTool(script.Name,
			mcp.WithDescription(script.Short),
			mcp.WithString("args",
				mcp.Description(fmt.Sprintf("Space separated arguments: %s", script.Usage)),
			),
		)
		s.mcpServer.AddTool(tool, s.handler(script.Name))
		s.tools = append(s.tools, script.Name)
	}
	if len(s.withheld) > 0 {
		s.logger.Info("MCP file tools disabled", "count", len(s.withheld))
	}
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.callScript(ctx, name, request.GetString("args", "")), nil
	}
}

// callScript runs name with the whitespace separated raw arguments and turns
// its output into a tool result. Usage and I/O errors are tool errors, not
// protocol errors.
func (s *Server) callScript(ctx context.Context, name, raw string) *mcp.CallToolResult {
	if s.withheld[name] {
		return mcp.NewToolResultError(fmt.Sprintf("%s: file access is disabled on this server", name))
	}
	clean, err := sanitize.Input(raw)
	if err != nil {
		s.logger.Warn("MCP tool input rejected", "tool", name, "err", err, "size", len(raw))
		return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err))
	}

	var out bytes.Buffer
	err = s.runner.Run(ctx, name, strings.Fields(clean), &out)
	if s.metrics != nil {
		s.metrics.ObserveScript(name, err != nil)
	}
	s.logger.Debug("MCP tool call", "tool", name, "args", clean, "err", err)

	switch {
	case err == nil:
		return mcp.NewToolResultText(out.String())
	case domain.IsReported(err):
		return mcp.NewToolResultError(out.String())
	default:
		return mcp.NewToolResultError(err.Error())
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ScriptsURI, "Available scripts",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(scriptInfos(s.runner.Scripts()))
		if err != nil {
			return nil, fmt.Errorf("failed to encode scripts: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ScriptsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

type scriptInfo struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Usage string `json:"usage"`
	Short string `json:"short"`
}

func scriptInfos(scripts []registry.Script) []scriptInfo {
	out := make([]scriptInfo, len(scripts))
	for i, sc := range scripts {
		out[i] = scriptInfo{Name: sc.Name, Group: sc.Group, Usage: sc.Usage, Short: sc.Short}
	}
	return out
}
