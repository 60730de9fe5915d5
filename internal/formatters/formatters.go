package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumetric/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "RealtimeResult", &RealtimeTextFormatter{})
	registry.RegisterFormatter("markdown", "RealtimeResult", &RealtimeMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult, *types.AnalysisResult:
		return "AnalysisResult"
	case types.RealtimeResult, *types.RealtimeResult:
		return "RealtimeResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

func asAnalysisResult(data any) (*types.AnalysisResult, error) {
	switch v := data.(type) {
	case types.AnalysisResult:
		return &v, nil
	case *types.AnalysisResult:
		return v, nil
	default:
		return nil, fmt.Errorf("expected AnalysisResult, got %T", data)
	}
}

func asRealtimeResult(data any) (*types.RealtimeResult, error) {
	switch v := data.(type) {
	case types.RealtimeResult:
		return &v, nil
	case *types.RealtimeResult:
		return v, nil
	default:
		return nil, fmt.Errorf("expected RealtimeResult, got %T", data)
	}
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, err := asAnalysisResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Total Score:       %d/100\n", result.TotalScore))
	output.WriteString(fmt.Sprintf("ATS Compatibility: %d/100\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("Industry:          %s\n\n", result.Industry))

	output.WriteString("--- Score Breakdown ---\n")
	for _, row := range scoreRows(result) {
		output.WriteString(fmt.Sprintf("%-14s %3d/100\n", row.label+":", row.value))
	}
	output.WriteString("\n")

	if len(result.ATSDetails.Issues) > 0 {
		output.WriteString("--- ATS Issues ---\n")
		for _, issue := range result.ATSDetails.Issues {
			output.WriteString(fmt.Sprintf("[-%d] %s\n      Fix: %s\n", issue.Impact, issue.Description, issue.Solution))
		}
		output.WriteString("\n")
	}

	if len(result.SuggestionList) > 0 {
		output.WriteString("--- Suggestions ---\n")
		for i, issue := range result.SuggestionList {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n   %s\n", i+1, issue.Severity, issue.Description, issue.Suggestion))
		}
		output.WriteString("\n")
	}

	if len(result.IndustryRecommendations) > 0 {
		output.WriteString(fmt.Sprintf("--- %s Industry Advice ---\n", result.Industry))
		for _, rec := range result.IndustryRecommendations {
			output.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		output.WriteString("\n")
	}

	if len(result.AISuggestions) > 0 {
		output.WriteString("--- AI Suggestions ---\n")
		if result.AIScore != nil {
			output.WriteString(fmt.Sprintf("AI Score: %d/100\n", *result.AIScore))
		}
		for _, sug := range result.AISuggestions {
			output.WriteString(fmt.Sprintf("[%s] %s\n   %s\n", sug.Priority, sug.Title, sug.Description))
			if sug.Example != "" {
				output.WriteString(fmt.Sprintf("   Example: %s\n", sug.Example))
			}
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, err := asAnalysisResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Total Score:** %d/100  \n", result.TotalScore))
	output.WriteString(fmt.Sprintf("**ATS Compatibility:** %d/100  \n", result.ATSScore))
	output.WriteString(fmt.Sprintf("**Industry:** %s\n\n", result.Industry))

	output.WriteString("## Score Breakdown\n\n")
	output.WriteString("| Dimension | Score |\n|---|---|\n")
	for _, row := range scoreRows(result) {
		output.WriteString(fmt.Sprintf("| %s | %d/100 |\n", row.label, row.value))
	}
	output.WriteString("\n")

	if len(result.ATSDetails.Issues) > 0 {
		output.WriteString("## ATS Issues\n\n")
		for _, issue := range result.ATSDetails.Issues {
			output.WriteString(fmt.Sprintf("- **%s** (-%d): %s  \n  Fix: %s\n", issue.Type, issue.Impact, issue.Description, issue.Solution))
		}
		output.WriteString("\n")
	}
	if len(result.ATSDetails.PassedChecks) > 0 {
		output.WriteString(fmt.Sprintf("Passed checks: %s\n\n", strings.Join(result.ATSDetails.PassedChecks, ", ")))
	}

	if len(result.SuggestionList) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, issue := range result.SuggestionList {
			output.WriteString(fmt.Sprintf("%d. **[%s]** %s  \n   %s\n", i+1, issue.Severity, issue.Description, issue.Suggestion))
		}
		output.WriteString("\n")
	}

	if len(result.IndustryRecommendations) > 0 {
		output.WriteString(fmt.Sprintf("## %s Industry Advice\n\n", result.Industry))
		for _, rec := range result.IndustryRecommendations {
			output.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		output.WriteString("\n")
	}

	if len(result.AISuggestions) > 0 {
		output.WriteString("## AI Suggestions\n\n")
		if result.AIScore != nil {
			output.WriteString(fmt.Sprintf("**AI Score:** %d/100\n\n", *result.AIScore))
		}
		for _, sug := range result.AISuggestions {
			output.WriteString(fmt.Sprintf("### %s (%s)\n\n%s\n", sug.Title, sug.Priority, sug.Description))
			if sug.Example != "" {
				output.WriteString(fmt.Sprintf("\n> %s\n", sug.Example))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

type scoreRow struct {
	label string
	value int
}

func scoreRows(result *types.AnalysisResult) []scoreRow {
	return []scoreRow{
		{"Keywords", result.KeywordScore},
		{"Grammar", result.GrammarScore},
		{"Formatting", result.FormattingScore},
		{"Sections", result.SectionScore},
		{"Action Verbs", result.ActionVerbScore},
		{"Relevance", result.RelevanceScore},
		{"Bullet Points", result.BulletPointScore},
		{"Language Tone", result.LanguageToneScore},
		{"Length", result.LengthScore},
	}
}

// RealtimeTextFormatter handles text formatting for realtime results
type RealtimeTextFormatter struct{}

func (rtf *RealtimeTextFormatter) Format(data any) (string, error) {
	result, err := asRealtimeResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("=== REALTIME FEEDBACK ===\n\n")
	output.WriteString(fmt.Sprintf("AI Score: %d/100\n\n", result.AIScore))
	for i, sug := range result.AISuggestions {
		output.WriteString(fmt.Sprintf("%d. [%s] %s\n   %s\n", i+1, sug.Priority, sug.Title, sug.Description))
		if sug.Example != "" {
			output.WriteString(fmt.Sprintf("   Example: %s\n", sug.Example))
		}
	}
	return output.String(), nil
}

func (rtf *RealtimeTextFormatter) SupportedType() string {
	return "RealtimeResult"
}

// RealtimeMarkdownFormatter handles markdown formatting for realtime results
type RealtimeMarkdownFormatter struct{}

func (rmf *RealtimeMarkdownFormatter) Format(data any) (string, error) {
	result, err := asRealtimeResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("# Realtime Feedback\n\n")
	output.WriteString(fmt.Sprintf("**AI Score:** %d/100\n\n", result.AIScore))
	for _, sug := range result.AISuggestions {
		output.WriteString(fmt.Sprintf("## %s (%s)\n\n%s\n", sug.Title, sug.Priority, sug.Description))
		if sug.Example != "" {
			output.WriteString(fmt.Sprintf("\n> %s\n", sug.Example))
		}
		output.WriteString("\n")
	}
	return output.String(), nil
}

func (rmf *RealtimeMarkdownFormatter) SupportedType() string {
	return "RealtimeResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
