package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"caselight-agent/src/contracts"
	"caselight-agent/src/store"
)

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return tc.Text
}

func TestHandleSaveWitness(t *testing.T) {
	srv := NewServer(nil, store.NewMemoryStore())
	ctx := context.Background()

	candidate, _ := json.Marshal(contracts.Candidate{
		ID:           "w1",
		Name:         "Dr. Jane Smith",
		Organization: "Acme Forensics",
	})

	result, err := srv.handleSaveWitness(ctx, toolRequest(map[string]any{
		"candidate": string(candidate),
	}))
	if err != nil {
		t.Fatalf("handleSaveWitness() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("handleSaveWitness() returned tool error: %s", textContent(t, result))
	}

	var out struct {
		Status string `json:"status"`
		ID     string `json:"id"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &out); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if out.Status != contracts.StatusOK {
		t.Errorf("status = %q, want %q", out.Status, contracts.StatusOK)
	}
	if out.ID != "w1" {
		t.Errorf("id = %q, want w1", out.ID)
	}

	// Saving the same candidate again reports duplicate, not an error.
	result, err = srv.handleSaveWitness(ctx, toolRequest(map[string]any{
		"candidate": string(candidate),
	}))
	if err != nil {
		t.Fatalf("handleSaveWitness() second call error = %v", err)
	}
	if result.IsError {
		t.Fatalf("duplicate save returned tool error: %s", textContent(t, result))
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &out); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if out.Status != contracts.StatusDuplicate {
		t.Errorf("status = %q, want %q", out.Status, contracts.StatusDuplicate)
	}
}

func TestHandleSaveWitness_InvalidInput(t *testing.T) {
	srv := NewServer(nil, store.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing candidate", map[string]any{}},
		{"invalid JSON", map[string]any{"candidate": "{not json"}},
		{"no name", map[string]any{"candidate": `{"id":"w1"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.handleSaveWitness(ctx, toolRequest(tt.args))
			if err != nil {
				t.Fatalf("handleSaveWitness() error = %v", err)
			}
			if !result.IsError {
				t.Errorf("expected tool error, got: %s", textContent(t, result))
			}
		})
	}
}

func TestHandleListAndDelete(t *testing.T) {
	saved := store.NewMemoryStore()
	ctx := context.Background()
	if _, err := saved.Save(ctx, contracts.Candidate{ID: "w1", Name: "Dr. A"}); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	srv := NewServer(nil, saved)

	result, err := srv.handleListSaved(ctx, toolRequest(nil))
	if err != nil {
		t.Fatalf("handleListSaved() error = %v", err)
	}
	var listOut struct {
		Count      int                   `json:"count"`
		Candidates []contracts.Candidate `json:"candidates"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &listOut); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if listOut.Count != 1 || len(listOut.Candidates) != 1 {
		t.Fatalf("list returned %d candidates, want 1", listOut.Count)
	}

	result, err = srv.handleDeleteSaved(ctx, toolRequest(map[string]any{"id": "w1"}))
	if err != nil {
		t.Fatalf("handleDeleteSaved() error = %v", err)
	}
	var delOut struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &delOut); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if delOut.Status != contracts.StatusOK {
		t.Errorf("delete status = %q, want %q", delOut.Status, contracts.StatusOK)
	}

	// Deleting an unknown id reports not_found without a tool error.
	result, err = srv.handleDeleteSaved(ctx, toolRequest(map[string]any{"id": "w1"}))
	if err != nil {
		t.Fatalf("handleDeleteSaved() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("delete of missing id returned tool error: %s", textContent(t, result))
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &delOut); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if delOut.Status != contracts.StatusNotFound {
		t.Errorf("delete status = %q, want %q", delOut.Status, contracts.StatusNotFound)
	}
}
