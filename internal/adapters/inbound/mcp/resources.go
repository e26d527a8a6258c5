package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/schema"
	"github.com/openkraft/tokenkraft/internal/application"
	"github.com/openkraft/tokenkraft/internal/domain/rules"
)

var profileExts = []string{".yaml", ".yml", ".json"}

// registerResources registers all tokenkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *services) {
	// 1. tokenkraft://rules - the rule tables
	s.AddResource(
		mcplib.NewResource(
			"tokenkraft://rules",
			"Validation Rules",
			mcplib.WithResourceDescription("Required sections, keys, contrast pairs and thresholds enforced by validation"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	// 2. tokenkraft://schema - the built-in JSON Schema
	s.AddResource(
		mcplib.NewResource(
			"tokenkraft://schema",
			"Profile Schema",
			mcplib.WithResourceDescription("JSON Schema describing the shape of a design profile"),
			mcplib.WithMIMEType("application/schema+json"),
		),
		handleSchemaResource(),
	)

	// 3. tokenkraft://profiles/{name} - validation of one project profile
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"tokenkraft://profiles/{name}",
			"Profile Validation",
			mcplib.WithTemplateDescription("Validation result for a profile in the project's profile directories"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleProfileResource(svc),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(rules.Rules(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}
		return textContents(request.Params.URI, "application/json", data), nil
	}
}

func handleSchemaResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return textContents(request.Params.URI, "application/schema+json", schema.Builtin()), nil
	}
}

func handleProfileResource(svc *services) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name := templateArg(request.Params.Arguments, "name")
		if name == "" {
			return nil, fmt.Errorf("profile name is required")
		}

		path, err := svc.findProfile(name)
		if err != nil {
			return nil, err
		}

		result, err := svc.validate.ValidateFile(path, application.ValidateOptions{})
		if err != nil {
			return nil, fmt.Errorf("validate failed: %w", err)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling result: %w", err)
		}
		return textContents(request.Params.URI, "application/json", data), nil
	}
}

// findProfile looks for <dir>/<name>.{yaml,yml,json} in each configured
// profile directory.
func (s *services) findProfile(name string) (string, error) {
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid profile name %q", name)
	}
	cfg, err := s.config.Load(s.projectPath)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	for _, dir := range cfg.ProfileDirs {
		for _, ext := range profileExts {
			path := filepath.Join(s.projectPath, dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("profile %q not found in %v", name, cfg.ProfileDirs)
}

// templateArg reads a URI template variable, which arrives either as a
// string or as a list of strings.
func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

func textContents(uri, mime string, data []byte) []mcplib.ResourceContents {
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: mime,
			Text:     string(data),
		},
	}
}
