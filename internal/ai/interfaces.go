package ai

import (
	"context"
)

// SuggestionInput is the request for an AI suggestion pass. AnalysisSummary
// carries the deterministic engine's findings when available; realtime calls
// leave it empty.
type SuggestionInput struct {
	ResumeText      string
	JobDescription  string
	AnalysisSummary string
}

// SuggestionOutput mirrors the JSON schema the model is constrained to.
type SuggestionOutput struct {
	AIScore     int                `json:"aiScore"`
	Suggestions []SuggestionDetail `json:"suggestions"`
}

// SuggestionDetail is one improvement item from the model.
type SuggestionDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Section     string `json:"section"`
	Example     string `json:"example"`
}

// AIProvider abstracts the model backend. All methods return token usage;
// callers can ignore it.
type AIProvider interface {
	GenerateSuggestions(ctx context.Context, input SuggestionInput) (SuggestionOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	GetCircuitBreakerStats() map[string]any
	Close() error
}
