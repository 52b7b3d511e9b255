// ABOUTME: MCP resource implementations for the training tracker.
// ABOUTME: Provides peekaboo://program and peekaboo://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/peekaboo/internal/export"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// peekaboo://program - the full six-week plan as plain text
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "peekaboo://program",
		Name:        "Full Training Program",
		Description: "The complete six-week peek-a-boo boxing program",
		MIMEType:    "text/plain",
	}, s.handleProgramResource)

	// peekaboo://summary - progress dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "peekaboo://summary",
		Name:        "Progress Summary",
		Description: "Overall and per-week rating averages plus recent sessions",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleProgramResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "peekaboo://program",
			MIMEType: "text/plain",
			Text:     string(export.FullProgramText()),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	weekly, err := s.repo.WeeklyStats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekly stats: %w", err)
	}

	recent, err := s.repo.RecentProgress(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sessions: %w", err)
	}

	result := map[string]interface{}{
		"generated_at":    time.Now().Format(time.RFC3339),
		"totals":          stats,
		"weekly":          weekly,
		"recent_sessions": recent,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "peekaboo://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
