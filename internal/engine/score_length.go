package engine

import (
	"fmt"

	"resumetric/internal/types"
)

// scoreLength rates overall resume length against a comfort band, sloping
// smoothly toward zero on either side rather than cutting off at the edges.
func scoreLength(in scoreInput) types.SubScore {
	words := wordCount(in.Resume)
	minW := in.Tunables.MinWords
	maxW := in.Tunables.MaxWords

	var value int
	var issues []types.Issue

	switch {
	case words == 0:
		value = 0
		issues = append(issues, types.Issue{
			Category:    ScorerLength,
			Severity:    types.SeverityHigh,
			Description: "Resume contains no readable text",
			Suggestion:  "Provide the resume content as plain text",
		})
	case words < minW:
		// Linear ramp from 0 at empty to 100 at the lower bound.
		value = words * 100 / minW
		issues = append(issues, types.Issue{
			Category:    ScorerLength,
			Severity:    lengthSeverity(value),
			Description: fmt.Sprintf("Resume is short at %d words (%d+ recommended)", words, minW),
			Suggestion:  "Expand experience bullets with scope, tools, and outcomes",
		})
	case words <= maxW:
		value = 100
	default:
		// Lose a point for every 1% past the upper bound.
		over := (words - maxW) * 100 / maxW
		value = 100 - over
		issues = append(issues, types.Issue{
			Category:    ScorerLength,
			Severity:    lengthSeverity(value),
			Description: fmt.Sprintf("Resume is long at %d words (%d max recommended)", words, maxW),
			Suggestion:  "Trim older roles and repeated details to tighten the document",
		})
	}

	return subScore(ScorerLength, value, issues)
}

func lengthSeverity(value int) types.Severity {
	switch {
	case value < 40:
		return types.SeverityHigh
	case value < 70:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}
