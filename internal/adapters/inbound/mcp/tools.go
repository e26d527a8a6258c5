package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/schema"
	"github.com/openkraft/tokenkraft/internal/application"
	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/openkraft/tokenkraft/internal/domain/color"
)

// registerTools registers all tokenkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *services) {
	// 1. tokenkraft_validate
	s.AddTool(
		mcplib.NewTool("tokenkraft_validate",
			mcplib.WithDescription("Validate a design profile and return its findings as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the profile (YAML or JSON), relative to the project"),
			),
			mcplib.WithBoolean("strict",
				mcplib.Description("Treat warnings and infos as failures"),
			),
			mcplib.WithBoolean("schema",
				mcplib.Description("Also check the document against the built-in JSON Schema"),
			),
		),
		handleValidate(svc),
	)

	// 2. tokenkraft_contrast
	s.AddTool(
		mcplib.NewTool("tokenkraft_contrast",
			mcplib.WithDescription("Compute the WCAG contrast ratio between two #RRGGBB colors"),
			mcplib.WithString("foreground",
				mcplib.Required(),
				mcplib.Description("Foreground color, #RRGGBB"),
			),
			mcplib.WithString("background",
				mcplib.Required(),
				mcplib.Description("Background color, #RRGGBB"),
			),
		),
		handleContrast(),
	)

	// 3. tokenkraft_generate_tokens
	s.AddTool(
		mcplib.NewTool("tokenkraft_generate_tokens",
			mcplib.WithDescription("Generate CSS custom properties, font imports or a Tailwind theme from a profile"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the profile, relative to the project"),
			),
			mcplib.WithString("format",
				mcplib.Description("One of css, fonts, tailwind. Omit for all three"),
			),
		),
		handleGenerateTokens(svc),
	)
}

// validateResponse adds the strict verdict to the result's own fields.
type validateResponse struct {
	Strict bool                     `json:"strict"`
	Passed bool                     `json:"passed"`
	Result *domain.ValidationResult `json:"result"`
}

func handleValidate(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		strict, _ := request.GetArguments()["strict"].(bool)
		withSchema, _ := request.GetArguments()["schema"].(bool)

		opts := application.ValidateOptions{Strict: strict}
		if withSchema {
			checker, err := schema.NewBuiltin()
			if err != nil {
				return errorResult(fmt.Sprintf("loading schema: %v", err)), nil
			}
			opts.Schema = checker
		}

		result, err := svc.validate.ValidateFile(svc.resolve(path), opts)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(validateResponse{Strict: strict, Passed: result.Passes(strict), Result: result})
	}
}

func handleContrast() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		fg, err := request.RequireString("foreground")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		bg, err := request.RequireString("background")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		assessment, err := color.Assess(fg, bg)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(assessment)
	}
}

func handleGenerateTokens(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		formats := domain.ValidFormats
		if format, _ := request.GetArguments()["format"].(string); format != "" {
			formats = []string{format}
		}

		bundle, err := svc.tokens.Generate(svc.resolve(path), formats)
		if err != nil {
			return errorResult(fmt.Sprintf("generate failed: %v", err)), nil
		}
		return jsonResult(bundle)
	}
}

func (s *services) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.projectPath, path)
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
