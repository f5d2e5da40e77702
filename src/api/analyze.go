package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"caselight-agent/src/contracts"
)

// AnalyzeText submits raw text to the issue-spotter endpoint.
func (c *Client) AnalyzeText(ctx context.Context, req contracts.TextAnalysisRequest) (*contracts.AnalysisResult, error) {
	var result contracts.AnalysisResult
	if err := c.postJSON(ctx, "/api/issue-spotter/text", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzeFile uploads a document for issue spotting as multipart form data.
func (c *Client) AnalyzeFile(ctx context.Context, path, instructions, style string, returnJSON bool) (*contracts.AnalysisResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	if err := form.WriteField("instructions", instructions); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if style != "" {
		if err := form.WriteField("style", style); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := form.WriteField("return_json", strconv.FormatBool(returnJSON)); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/issue-spotter/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var result contracts.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
