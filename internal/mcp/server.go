package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/config"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/logging"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

// ServerName and Version identify the gateway to MCP clients during the
// initialize handshake.
const ServerName = "primrose-mcp-trello"

// Version is set at build time via ldflags.
var Version = "dev"

// Server wires the MCP protocol server, the tool set and the outer HTTP
// router together.
type Server struct {
	cfg        *config.Config
	logger     *logging.AppLogger
	mcpServer  *server.MCPServer
	streamable *server.StreamableHTTPServer
	httpClient *http.Client
}

// NewServer creates the gateway server and registers every tool.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.registerBoardTools()
	s.registerListTools()
	s.registerCardTools()
	s.registerChecklistTools()
	s.registerLabelTools()
	s.registerMemberTools()
	s.registerOrganizationTools()
	s.registerSearchTools()
	s.registerWebhookTools()
	s.registerCustomFieldTools()

	s.streamable = server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithHTTPContextFunc(httpContextFunc),
	)

	return s
}

// newClient constructs the per-request Trello client for one tenant. The
// underlying http.Client is shared across tenants; it carries no
// credential state.
func (s *Server) newClient(creds trello.Credentials) *trello.Client {
	return trello.NewClient(creds,
		trello.WithBaseURL(s.cfg.TrelloBaseURL),
		trello.WithHTTPClient(s.httpClient),
		trello.WithLogger(s.logger),
	)
}

// clientHandler is a tool handler that already has its tenant client.
type clientHandler func(ctx context.Context, client *trello.Client, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error)

// withClient adapts a clientHandler into an mcp-go handler: it resolves
// the tenant credentials from the request context, converts every
// classified failure into the error envelope, and logs the call. A
// missing credential pair is reported as an authentication error rather
// than a protocol failure so MCP clients see a uniform envelope.
func (s *Server) withClient(tool string, fn clientHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		start := time.Now()

		creds, ok := CredentialsFromContext(ctx)
		if !ok {
			err := &trello.AuthenticationError{Message: "missing " + HeaderAPIKey + " or " + HeaderToken + " header"}
			s.logger.LogToolCall(tool, start, err)
			return errorResult(err), nil
		}

		result, err := fn(ctx, s.newClient(creds), req)
		if err != nil {
			s.logger.LogToolCall(tool, start, err)
			return errorResult(err), nil
		}
		s.logger.LogToolCall(tool, start, nil)
		return result, nil
	}
}

// addTool registers one tool, always appending the shared format argument
// so every operation can return raw JSON or a markdown summary.
func (s *Server) addTool(name, description string, opts []mcpgo.ToolOption, fn clientHandler) {
	opts = append(opts, mcpgo.WithString("format",
		mcpgo.Description("Response format: json (default) or markdown"),
		mcpgo.Enum("json", "markdown"),
	))
	toolOpts := append([]mcpgo.ToolOption{mcpgo.WithDescription(description)}, opts...)
	s.mcpServer.AddTool(mcpgo.NewTool(name, toolOpts...), s.withClient(name, fn))
}

// Router builds the outer HTTP surface: health check, info page and the
// MCP endpoint guarded by the credential middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":     ServerName,
			"version":  Version,
			"protocol": "Model Context Protocol (Streamable HTTP)",
			"endpoint": "/mcp",
			"headers":  []string{HeaderAPIKey, HeaderToken},
		})
	})

	mcpHandler := gin.WrapH(s.streamable)
	mcpGroup := router.Group("/mcp", requireCredentials())
	mcpGroup.Any("", mcpHandler)
	mcpGroup.Any("/*path", mcpHandler)

	return router
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("MCP gateway listening", "addr", s.cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
