package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"caselight-agent/src/contracts"
)

func TestAnalyzeText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/issue-spotter/text" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req contracts.TextAnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Instructions != "Flag indemnity issues" {
			t.Errorf("instructions = %q", req.Instructions)
		}
		if !req.ReturnJSON {
			t.Error("return_json not forwarded")
		}

		json.NewEncoder(w).Encode(contracts.AnalysisResult{
			Summary: "Two issues found.",
			Findings: []contracts.Finding{
				{Issue: "Unlimited indemnity", Risk: "high", Span: &contracts.Span{Page: 3}},
				{Issue: "Missing governing law"},
			},
			Citations: []contracts.Citation{{Page: 3, Snippet: "shall indemnify"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.AnalyzeText(context.Background(), contracts.TextAnalysisRequest{
		Text:         "This agreement ...",
		Instructions: "Flag indemnity issues",
		ReturnJSON:   true,
	})
	if err != nil {
		t.Fatalf("AnalyzeText() error = %v", err)
	}
	if result.Summary != "Two issues found." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if len(result.Findings) != 2 || result.Findings[0].Span.Page != 3 {
		t.Errorf("Findings = %+v", result.Findings)
	}
}

func TestAnalyzeFile_MultipartForm(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "contract.txt")
	if err := os.WriteFile(docPath, []byte("the parties agree"), 0o644); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/issue-spotter/upload" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "contract.txt" {
			t.Errorf("filename = %q", header.Filename)
		}
		if r.FormValue("instructions") != "Spot issues" {
			t.Errorf("instructions = %q", r.FormValue("instructions"))
		}
		if r.FormValue("style") != "bullet" {
			t.Errorf("style = %q", r.FormValue("style"))
		}
		if r.FormValue("return_json") != "true" {
			t.Errorf("return_json = %q", r.FormValue("return_json"))
		}

		json.NewEncoder(w).Encode(contracts.AnalysisResult{Summary: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.AnalyzeFile(context.Background(), docPath, "Spot issues", "bullet", true)
	if err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}
	if result.Summary != "ok" {
		t.Errorf("Summary = %q", result.Summary)
	}
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	client := NewClient("http://localhost:0", 1*time.Second)
	if _, err := client.AnalyzeFile(context.Background(), "/nonexistent/doc.pdf", "x", "", false); err == nil {
		t.Error("expected error for missing file")
	}
}
