package engine

import (
	"fmt"
	"strings"

	"resumetric/internal/types"
)

// scoreKeywords measures how much of the job description's keyword demand the
// resume covers, weighted by importance. Without a job description the resume
// is measured against the detected industry's baseline dictionary instead of
// being handed a free 100.
func scoreKeywords(in scoreInput) types.SubScore {
	if in.HasJob {
		return scoreKeywordsAgainstJob(in)
	}
	return scoreKeywordsAgainstBaseline(in)
}

func scoreKeywordsAgainstJob(in scoreInput) types.SubScore {
	var demanded, covered int
	var missing []types.Keyword

	for _, kw := range in.Keywords {
		if !kw.IsFromJobDescription {
			continue
		}
		demanded += kw.Importance
		if kw.IsMatch {
			covered += kw.Importance
		} else {
			missing = append(missing, kw)
		}
	}

	if demanded == 0 {
		// Job description produced no usable keywords; nothing to penalize.
		return subScore(ScorerKeyword, 100, nil)
	}

	value := covered * 100 / demanded

	var issues []types.Issue
	for _, kw := range missing {
		if kw.Importance < 3 {
			continue
		}
		issues = append(issues, types.Issue{
			Category:    ScorerKeyword,
			Severity:    severityForImportance(kw.Importance),
			Description: fmt.Sprintf("Job description keyword %q does not appear in the resume", kw.Text),
			Suggestion:  fmt.Sprintf("Work %q into a relevant experience bullet or the skills section", kw.Text),
		})
	}

	return subScore(ScorerKeyword, value, issues)
}

func scoreKeywordsAgainstBaseline(in scoreInput) types.SubScore {
	baseline := industryKeywords[in.Industry]
	if len(baseline) == 0 {
		baseline = industryKeywords["Technology"]
	}

	lower := strings.ToLower(in.Resume)
	var hits int
	for _, term := range baseline {
		if strings.Contains(lower, term) {
			hits++
		}
	}

	value := hits * 100 * 2 / len(baseline) // half the baseline present scores 100
	issues := []types.Issue{{
		Category:    ScorerKeyword,
		Severity:    types.SeverityLow,
		Description: fmt.Sprintf("No job description supplied; keywords scored against the %s industry baseline", in.Industry),
		Suggestion:  "Provide the target job description for precise keyword matching",
	}}
	if value < 50 {
		issues = append(issues, types.Issue{
			Category:    ScorerKeyword,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("Resume covers few common %s terms", in.Industry),
			Suggestion:  "Add concrete skills and tools recognized in your field",
		})
	}

	return subScore(ScorerKeyword, value, issues)
}

func severityForImportance(importance int) types.Severity {
	switch {
	case importance >= 5:
		return types.SeverityHigh
	case importance >= 4:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}
