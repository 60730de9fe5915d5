package engine

import (
	"fmt"
	"regexp"
	"strings"

	"resumetric/internal/types"
)

var (
	monthDateRe   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b`)
	slashDateRe   = regexp.MustCompile(`\b\d{1,2}/\d{4}\b`)
	isoDateRe     = regexp.MustCompile(`\b\d{4}-\d{2}\b`)
	multiSpaceRe  = regexp.MustCompile(`\S {3,}\S`)
)

// scoreFormatting penalizes inconsistent bullet styles, mixed date formats,
// irregular spacing, and overlong lines. Fixed deductions, floor 0.
func scoreFormatting(in scoreInput) types.SubScore {
	value := 100
	var issues []types.Issue

	if styles := bulletStyles(in.Lines); len(styles) > 1 {
		value -= 15
		issues = append(issues, types.Issue{
			Category:    ScorerFormatting,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("Mixed bullet styles in use: %s", strings.Join(styles, " ")),
			Suggestion:  "Pick one bullet character and use it throughout",
		})
	}

	if formats := dateFormats(in.Resume); len(formats) > 1 {
		value -= 15
		issues = append(issues, types.Issue{
			Category:    ScorerFormatting,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("Mixed date formats: %s", strings.Join(formats, ", ")),
			Suggestion:  "Standardize on one date format, e.g. \"Jan 2023\"",
		})
	}

	tabs := strings.Count(in.Resume, "\t")
	irregular := len(multiSpaceRe.FindAllString(in.Resume, -1))
	if tabs > 4 || irregular > 6 {
		value -= 10
		issues = append(issues, types.Issue{
			Category:    ScorerFormatting,
			Severity:    types.SeverityLow,
			Description: "Irregular spacing or tab alignment detected",
			Suggestion:  "Replace manual spacing with consistent single spaces; alignment rarely survives ATS parsing",
		})
	}

	var longLines int
	for i, line := range in.Lines {
		if len(line) > 140 {
			longLines++
			if longLines == 1 {
				issues = append(issues, types.Issue{
					Category:    ScorerFormatting,
					Severity:    types.SeverityLow,
					LineNumber:  i + 1,
					Description: "Very long lines found; they usually indicate paragraph-style entries",
					Suggestion:  "Break long entries into concise bullet points",
				})
			}
		}
	}
	if longLines > 0 {
		value -= 5 * min(longLines, 3)
	}

	return subScore(ScorerFormatting, value, issues)
}

func bulletStyles(lines []string) []string {
	seen := map[string]bool{}
	var styles []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, p := range bulletPrefixes {
			if strings.HasPrefix(trimmed, p+" ") {
				if !seen[p] {
					seen[p] = true
					styles = append(styles, p)
				}
				break
			}
		}
	}
	return styles
}

func dateFormats(text string) []string {
	var formats []string
	if monthDateRe.MatchString(text) {
		formats = append(formats, "month-year")
	}
	if slashDateRe.MatchString(text) {
		formats = append(formats, "mm/yyyy")
	}
	if isoDateRe.MatchString(text) {
		formats = append(formats, "yyyy-mm")
	}
	return formats
}
