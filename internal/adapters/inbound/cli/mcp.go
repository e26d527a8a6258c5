package cli

import (
	mcpadapter "github.com/openkraft/tokenkraft/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tokenkraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start tokenkraft MCP server (stdio)",
		Long:  "Start the tokenkraft MCP server using stdio transport. This lets AI coding assistants validate profiles, check contrast and generate tokens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absProject, err := absPath(projectPath)
			if err != nil {
				return err
			}
			s := mcpadapter.NewTokenkraftMCPServer(absProject, opts.log())
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
