package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/config"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/profile"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/tokenkraft/internal/application"
)

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

type services struct {
	projectPath string
	validate    *application.ValidateService
	tokens      *application.TokensService
	config      *config.YAMLLoader
	logger      *zap.Logger
}

// NewTokenkraftMCPServer creates an MCP server with all tokenkraft tools and
// resources registered. Relative profile paths resolve against projectPath.
func NewTokenkraftMCPServer(projectPath string, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := server.NewMCPServer(
		"tokenkraft",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	loader := profile.New()
	cfg := config.New()
	svc := &services{
		projectPath: projectPath,
		validate:    application.NewValidateService(loader, scanner.New(), cfg, nil, nil, logger),
		tokens:      application.NewTokensService(loader, logger),
		config:      cfg,
		logger:      logger,
	}

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
