package ai

import (
	"context"
	"fmt"
	"strings"

	"resumetric/internal/config"
	"resumetric/internal/errors"
	"resumetric/internal/types"
)

// Service handles AI suggestion operations. It satisfies the analysis
// engine's Suggester interface and also serves the realtime fast path.
type Service struct {
	Provider AIProvider // Exported for access from the server package
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates an AI service for a specific operation type.
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries)

	var provider AIProvider
	var err error
	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Suggest produces AI suggestions grounded in a finished deterministic
// analysis. It implements engine.Suggester.
func (s *Service) Suggest(ctx context.Context, resumeText, jobText string, base *types.AnalysisResult) (*types.RealtimeResult, error) {
	out, _, err := s.Provider.GenerateSuggestions(ctx, SuggestionInput{
		ResumeText:      resumeText,
		JobDescription:  jobText,
		AnalysisSummary: summarizeAnalysis(base),
	})
	if err != nil {
		return nil, err
	}
	return toRealtimeResult(out), nil
}

// Realtime runs the AI-only fast path without a prior deterministic pass.
func (s *Service) Realtime(ctx context.Context, resumeText, jobText string) (*types.RealtimeResult, error) {
	result, _, err := s.RealtimeWithUsage(ctx, resumeText, jobText)
	return result, err
}

// RealtimeWithUsage is Realtime plus the token usage of the underlying model
// call, for callers that report usage metrics.
func (s *Service) RealtimeWithUsage(ctx context.Context, resumeText, jobText string) (*types.RealtimeResult, *TokenUsage, error) {
	out, usage, err := s.Provider.GenerateSuggestions(ctx, SuggestionInput{
		ResumeText:     resumeText,
		JobDescription: jobText,
	})
	if err != nil {
		return nil, usage, err
	}
	return toRealtimeResult(out), usage, nil
}

// GetModelInfo returns model information for health checks.
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

func toRealtimeResult(out SuggestionOutput) *types.RealtimeResult {
	suggestions := make([]types.AISuggestion, 0, len(out.Suggestions))
	for _, sug := range out.Suggestions {
		suggestions = append(suggestions, types.AISuggestion{
			Title:       sug.Title,
			Description: sug.Description,
			Priority:    sug.Priority,
			Section:     sug.Section,
			Example:     sug.Example,
		})
	}
	return &types.RealtimeResult{
		AISuggestions: suggestions,
		AIScore:       out.AIScore,
	}
}

// summarizeAnalysis condenses the deterministic result into a compact prompt
// section so the model builds on it instead of rediscovering it.
func summarizeAnalysis(base *types.AnalysisResult) string {
	if base == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total score %d/100. ATS compatibility %d/100. Industry: %s.\n", base.TotalScore, base.ATSScore, base.Industry)
	fmt.Fprintf(&b, "Dimension scores: keyword %d, grammar %d, formatting %d, section %d, actionVerb %d, relevance %d, bulletPoint %d, languageTone %d, length %d.\n",
		base.KeywordScore, base.GrammarScore, base.FormattingScore, base.SectionScore,
		base.ActionVerbScore, base.RelevanceScore, base.BulletPointScore,
		base.LanguageToneScore, base.LengthScore)

	limit := 8
	if len(base.SuggestionList) < limit {
		limit = len(base.SuggestionList)
	}
	for i := 0; i < limit; i++ {
		issue := base.SuggestionList[i]
		fmt.Fprintf(&b, "- [%s/%s] %s\n", issue.Category, issue.Severity, issue.Description)
	}

	return b.String()
}
