package engine

import (
	"fmt"
	"strings"

	"resumetric/internal/types"
)

// scoreActionVerbs rates experience bullets by their opening word: strong
// action verbs against weak or passive openers.
func scoreActionVerbs(in scoreInput) types.SubScore {
	var bullets []string
	for _, line := range experienceLines(in.Sections) {
		if isBulletLine(line) {
			bullets = append(bullets, stripBullet(line))
		}
	}

	if len(bullets) == 0 {
		return subScore(ScorerActionVerb, 50, []types.Issue{{
			Category:    ScorerActionVerb,
			Severity:    types.SeverityMedium,
			Description: "No experience bullet points to evaluate for action verbs",
			Suggestion:  "Describe each role with bullet points that open with strong verbs",
		}})
	}

	var strong, weak int
	var weakSamples []string
	for _, b := range bullets {
		fields := strings.Fields(strings.ToLower(b))
		if len(fields) == 0 {
			continue
		}
		opener := strings.Trim(fields[0], ".,;:")
		switch {
		case actionVerbs[opener]:
			strong++
		case weakOpeners[opener]:
			weak++
			if len(weakSamples) < 3 {
				weakSamples = append(weakSamples, opener)
			}
		}
	}

	value := strong * 100 / len(bullets)

	var issues []types.Issue
	if weak > 0 {
		issues = append(issues, types.Issue{
			Category:    ScorerActionVerb,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("%d bullet(s) open with weak phrasing (%s)", weak, strings.Join(weakSamples, ", ")),
			Suggestion:  "Swap openers like \"responsible for\" with verbs like led, built, or delivered",
		})
	}
	if value < 60 {
		issues = append(issues, types.Issue{
			Category:    ScorerActionVerb,
			Severity:    types.SeverityMedium,
			Description: "Most experience bullets do not start with a strong action verb",
			Suggestion:  "Open every bullet with a verb that owns the outcome",
		})
	}

	return subScore(ScorerActionVerb, value, issues)
}
