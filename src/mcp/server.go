// Package mcp exposes caselight's witness search, saved-witness management,
// and issue spotting as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"caselight-agent/src/api"
	"caselight-agent/src/contracts"
	"caselight-agent/src/store"
)

// Server is the MCP server for caselight.
type Server struct {
	mcpServer *server.MCPServer
	client    *api.Client
	saved     store.SavedStore
}

// NewServer creates a new MCP server backed by the given API client and
// saved-witness store.
func NewServer(client *api.Client, saved store.SavedStore) *Server {
	s := server.NewMCPServer(
		"caselight",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv := &Server{
		mcpServer: s,
		client:    client,
		saved:     saved,
	}
	srv.registerTools()

	return srv
}

// registerTools registers all available tools.
func (s *Server) registerTools() {
	findTool := mcp.NewTool("find_witnesses",
		mcp.WithDescription("Search for expert witness candidates matching a case. Returns candidates ranked by similarity score (0-100) with contact details, experience, and source citations."),
		mcp.WithString("industry",
			mcp.Required(),
			mcp.Description("Industry or sector the case concerns (e.g. pharmaceuticals, construction)"),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Description of the case and the expertise needed"),
		),
		mcp.WithString("name",
			mcp.Description("Optional name to narrow the search to a specific person"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max candidates to return (default: 8, max: 20)"),
		),
	)

	listTool := mcp.NewTool("list_saved_witnesses",
		mcp.WithDescription("List all saved witness candidates."),
	)

	saveTool := mcp.NewTool("save_witness",
		mcp.WithDescription("Save a witness candidate for later. Pass the candidate JSON exactly as returned by find_witnesses. Saving an already-saved candidate is not an error."),
		mcp.WithString("candidate",
			mcp.Required(),
			mcp.Description("Candidate object as JSON"),
		),
	)

	deleteTool := mcp.NewTool("delete_saved_witness",
		mcp.WithDescription("Delete a saved witness candidate by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Candidate ID from list_saved_witnesses"),
		),
	)

	spotTool := mcp.NewTool("spot_issues",
		mcp.WithDescription("Analyze legal text for potential issues. Returns a summary plus findings with risk levels, suggestions, and citations."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The legal text to analyze"),
		),
		mcp.WithString("instructions",
			mcp.Description("Optional extra instructions for the analysis"),
		),
		mcp.WithString("style",
			mcp.Description("Analysis style (e.g. concise, thorough)"),
		),
	)

	s.mcpServer.AddTool(findTool, s.handleFindWitnesses)
	s.mcpServer.AddTool(listTool, s.handleListSaved)
	s.mcpServer.AddTool(saveTool, s.handleSaveWitness)
	s.mcpServer.AddTool(deleteTool, s.handleDeleteSaved)
	s.mcpServer.AddTool(spotTool, s.handleSpotIssues)
}

// Run starts the MCP server on stdio.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// searchTimeout bounds one find_witnesses call; the backend chains external
// search and summarization, so this is generous.
const searchTimeout = 120 * time.Second

// handleFindWitnesses handles the find_witnesses tool call.
func (s *Server) handleFindWitnesses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	industry := request.GetString("industry", "")
	if industry == "" {
		return mcp.NewToolResultError("industry parameter is required"), nil
	}
	description := request.GetString("description", "")
	if description == "" {
		return mcp.NewToolResultError("description parameter is required"), nil
	}

	req := contracts.SearchRequest{
		Industry:    industry,
		Description: description,
		Name:        request.GetString("name", ""),
		Limit:       request.GetInt("limit", 8),
	}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	candidates, err := s.client.SearchWitnesses(searchCtx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return marshalResult(map[string]any{
		"count":      len(candidates),
		"candidates": candidates,
	})
}

// handleListSaved handles the list_saved_witnesses tool call.
func (s *Server) handleListSaved(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	saved, err := s.saved.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list saved witnesses: %v", err)), nil
	}

	return marshalResult(map[string]any{
		"count":      len(saved),
		"candidates": saved,
	})
}

// handleSaveWitness handles the save_witness tool call.
func (s *Server) handleSaveWitness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("candidate", "")
	if raw == "" {
		return mcp.NewToolResultError("candidate parameter is required"), nil
	}

	var candidate contracts.Candidate
	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("candidate is not valid JSON: %v", err)), nil
	}
	if candidate.Name == "" {
		return mcp.NewToolResultError("candidate must have a name"), nil
	}

	status, err := s.saved.Save(ctx, candidate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
	}

	return marshalResult(map[string]any{
		"status": status,
		"id":     candidate.ID,
	})
}

// handleDeleteSaved handles the delete_saved_witness tool call.
func (s *Server) handleDeleteSaved(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	status, err := s.saved.Delete(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}

	return marshalResult(map[string]any{"status": status})
}

// handleSpotIssues handles the spot_issues tool call.
func (s *Server) handleSpotIssues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	analyzeCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	result, err := s.client.AnalyzeText(analyzeCtx, contracts.TextAnalysisRequest{
		Text:         text,
		Instructions: request.GetString("instructions", ""),
		Style:        request.GetString("style", ""),
		ReturnJSON:   true,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	return marshalResult(result)
}

func marshalResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
