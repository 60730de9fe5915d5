package engine

import (
	"resumetric/internal/types"
)

// scoreBullets measures the ratio of bulleted to paragraph-style content in
// the experience sections. Wall-of-text experience entries score low.
func scoreBullets(in scoreInput) types.SubScore {
	lines := experienceLines(in.Sections)
	if len(lines) == 0 {
		return subScore(ScorerBullet, 40, []types.Issue{{
			Category:    ScorerBullet,
			Severity:    types.SeverityMedium,
			Description: "No experience content found to evaluate",
			Suggestion:  "Add an experience section with bulleted accomplishments",
		}})
	}

	var bullet, prose int
	for _, line := range lines {
		if isBulletLine(line) {
			bullet++
			continue
		}
		// Short non-bullet lines are role/company/date headers, not prose.
		if wordCount(line) > 8 {
			prose++
		}
	}

	total := bullet + prose
	if total == 0 {
		// Only header lines; nothing substantive either way.
		return subScore(ScorerBullet, 60, []types.Issue{{
			Category:    ScorerBullet,
			Severity:    types.SeverityLow,
			Description: "Experience entries carry no accomplishment detail",
			Suggestion:  "Add 2-5 bullets per role describing concrete outcomes",
		}})
	}

	value := bullet * 100 / total

	var issues []types.Issue
	if value < 50 {
		issues = append(issues, types.Issue{
			Category:    ScorerBullet,
			Severity:    types.SeverityMedium,
			Description: "Experience reads as paragraphs rather than bullet points",
			Suggestion:  "Convert paragraph descriptions into scannable bullets",
		})
	}

	// Extremely long bullets defeat the purpose of bullets.
	var overlong int
	for _, line := range lines {
		if isBulletLine(line) && wordCount(line) > 40 {
			overlong++
		}
	}
	if overlong > 0 {
		value -= 10
		issues = append(issues, types.Issue{
			Category:    ScorerBullet,
			Severity:    types.SeverityLow,
			Description: "Some bullets run longer than two lines",
			Suggestion:  "Keep each bullet to one or two lines with a single idea",
		})
	}

	return subScore(ScorerBullet, value, issues)
}
