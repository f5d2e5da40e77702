package contracts

// Span locates a finding inside the analyzed document.
type Span struct {
	Page  int `json:"page,omitempty"`
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`
}

// Finding is a single issue spotted by the backend analyzer.
type Finding struct {
	Issue      string `json:"issue"`
	Risk       string `json:"risk,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Span       *Span  `json:"span,omitempty"`
}

// Citation points at the document passage a finding is based on.
type Citation struct {
	Page    int    `json:"page,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// AnalysisResult is the response of the issue-spotter endpoints.
// RawJSON carries the model's structured output verbatim when the caller
// requested it; it is untrusted and may not be valid JSON.
type AnalysisResult struct {
	Summary   string     `json:"summary"`
	Findings  []Finding  `json:"findings"`
	Citations []Citation `json:"citations"`
	RawJSON   string     `json:"raw_json,omitempty"`
}

// TextAnalysisRequest is the body for POST /api/issue-spotter/text.
type TextAnalysisRequest struct {
	Text         string `json:"text"`
	Instructions string `json:"instructions"`
	Style        string `json:"style,omitempty"`
	ReturnJSON   bool   `json:"return_json"`
}
