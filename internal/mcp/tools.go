// ABOUTME: MCP tool implementations for training progress.
// ABOUTME: Log/read ratings, statistics, and session plans.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/peekaboo/internal/catalog"
	"github.com/harperreed/peekaboo/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_progress",
		Description: "Record self-ratings (fluidity, endurance, power) for a training session",
	}, s.handleLogProgress)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get the saved rating for one session by week and day",
	}, s.handleGetProgress)

	// list_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_progress",
		Description: "List all saved session ratings in week/day order",
	}, s.handleListProgress)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get overall and per-week rating averages",
	}, s.handleGetStats)

	// get_session_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session_plan",
		Description: "Get the planned exercises for a session by week and day",
	}, s.handleGetSessionPlan)
}

// Tool input/output types

type logProgressInput struct {
	Week      int    `json:"week" jsonschema:"description=Program week (1-6),required"`
	Day       int    `json:"day" jsonschema:"description=Training day (1-5),required"`
	Fluidity  int    `json:"fluidity" jsonschema:"description=Fluidity rating (1-10),required"`
	Endurance int    `json:"endurance" jsonschema:"description=Endurance rating (1-10),required"`
	Power     int    `json:"power" jsonschema:"description=Power rating (1-10),required"`
	Notes     string `json:"notes,omitempty" jsonschema:"description=Optional session notes"`
}

type sessionInput struct {
	Week int `json:"week" jsonschema:"description=Program week (1-6),required"`
	Day  int `json:"day" jsonschema:"description=Training day (1-5),required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogProgress(ctx context.Context, req *mcp.CallToolRequest, input logProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry, ok := catalog.Get(input.Week, input.Day)
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("unknown session: week %d day %d", input.Week, input.Day)
	}

	p := models.NewProgressRecord(input.Week, input.Day, input.Fluidity, input.Endurance, input.Power)
	if input.Notes != "" {
		p.WithNotes(input.Notes)
	}

	if err := s.repo.UpsertProgress(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save progress: %w", err)
	}
	if err := s.repo.LogCompletion(input.Week, input.Day, catalog.NominalMinutes(entry.Duration), p.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log completion: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged W%dD%d (%s): fluidity %d, endurance %d, power %d",
			input.Week, input.Day, entry.Focus, input.Fluidity, input.Endurance, input.Power),
	}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input sessionInput) (*mcp.CallToolResult, any, error) {
	p, err := s.repo.GetProgress(input.Week, input.Day)
	if err != nil {
		return nil, nil, fmt.Errorf("no progress for week %d day %d", input.Week, input.Day)
	}
	return nil, p, nil
}

func (s *Server) handleListProgress(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	records, err := s.repo.ListProgress()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list progress: %w", err)
	}

	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No progress recorded yet."}, nil
	}

	return nil, records, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	weekly, err := s.repo.WeeklyStats()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute weekly stats: %w", err)
	}

	return nil, map[string]interface{}{
		"totals": stats,
		"weekly": weekly,
	}, nil
}

func (s *Server) handleGetSessionPlan(ctx context.Context, req *mcp.CallToolRequest, input sessionInput) (*mcp.CallToolResult, any, error) {
	entry, ok := catalog.Get(input.Week, input.Day)
	if !ok {
		return nil, nil, fmt.Errorf("unknown session: week %d day %d", input.Week, input.Day)
	}
	return nil, entry, nil
}
