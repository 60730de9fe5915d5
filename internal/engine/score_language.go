package engine

import (
	"fmt"
	"strings"

	"resumetric/internal/types"
)

var passiveAuxiliaries = map[string]bool{
	"was": true, "were": true, "been": true, "being": true, "is": true, "are": true,
}

var firstPersonPronouns = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true, "we": true, "our": true, "ours": true,
}

// scoreGrammar applies fixed deductions for passive voice, first-person
// usage, filler density, and flat sentence rhythm. Each check subtracts a
// fixed amount from 100; floor is 0.
func scoreGrammar(in scoreInput) types.SubScore {
	words := strings.Fields(strings.ToLower(in.Resume))
	if len(words) == 0 {
		return subScore(ScorerGrammar, 0, []types.Issue{{
			Category:    ScorerGrammar,
			Severity:    types.SeverityHigh,
			Description: "Resume contains no readable sentences",
			Suggestion:  "Add descriptive bullet points to your experience entries",
		}})
	}

	value := 100
	var issues []types.Issue

	if ratio := passiveRatio(words); ratio > 0.08 {
		value -= 20
		issues = append(issues, types.Issue{
			Category:    ScorerGrammar,
			Severity:    types.SeverityMedium,
			Description: "Frequent passive voice constructions weaken impact",
			Suggestion:  "Rewrite passive phrases with active verbs: \"was managed by\" becomes \"managed\"",
		})
	} else if ratio > 0.04 {
		value -= 10
		issues = append(issues, types.Issue{
			Category:    ScorerGrammar,
			Severity:    types.SeverityLow,
			Description: "Some passive voice constructions detected",
			Suggestion:  "Prefer active verbs over passive phrasing",
		})
	}

	if count := countIn(words, firstPersonPronouns); count > 2 {
		value -= 15
		issues = append(issues, types.Issue{
			Category:    ScorerGrammar,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("First-person pronouns used %d times", count),
			Suggestion:  "Drop \"I\" and \"my\"; resumes use implied first person",
		})
	}

	if varc := sentenceLengthVariance(in.Resume); varc >= 0 && varc < 4 {
		value -= 10
		issues = append(issues, types.Issue{
			Category:    ScorerGrammar,
			Severity:    types.SeverityLow,
			Description: "Sentences are uniform in length, which reads monotonously",
			Suggestion:  "Vary sentence length; mix short impact statements with detail",
		})
	}

	return subScore(ScorerGrammar, value, issues)
}

// scoreLanguageTone covers filler density and resume cliches. Reported on the
// result but not part of the composite weight set.
func scoreLanguageTone(in scoreInput) types.SubScore {
	words := strings.Fields(strings.ToLower(in.Resume))
	if len(words) == 0 {
		return subScore(ScorerTone, 0, nil)
	}

	value := 100
	var issues []types.Issue

	fillers := countIn(words, fillerWords)
	if density := float64(fillers) / float64(len(words)); density > 0.02 {
		value -= 20
		issues = append(issues, types.Issue{
			Category:    ScorerTone,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("High filler-word density (%d filler words)", fillers),
			Suggestion:  "Cut vague qualifiers like \"very\" and \"really\"; lead with specifics",
		})
	} else if fillers > 3 {
		value -= 10
		issues = append(issues, types.Issue{
			Category:    ScorerTone,
			Severity:    types.SeverityLow,
			Description: "Several filler words detected",
			Suggestion:  "Replace filler words with concrete detail",
		})
	}

	lower := strings.ToLower(in.Resume)
	var cliches []string
	for _, phrase := range buzzPhrases {
		if strings.Contains(lower, phrase) {
			cliches = append(cliches, phrase)
		}
	}
	if len(cliches) > 0 {
		value -= 10 * len(cliches)
		issues = append(issues, types.Issue{
			Category:    ScorerTone,
			Severity:    types.SeverityMedium,
			Description: fmt.Sprintf("Resume cliches found: %s", strings.Join(cliches, ", ")),
			Suggestion:  "Replace cliches with evidence: outcomes, numbers, named tools",
		})
	}

	return subScore(ScorerTone, value, issues)
}

// passiveRatio approximates passive constructions as an auxiliary followed by
// a participle-looking word.
func passiveRatio(words []string) float64 {
	if len(words) < 2 {
		return 0
	}
	var passive int
	for i := 0; i < len(words)-1; i++ {
		if passiveAuxiliaries[words[i]] && strings.HasSuffix(strings.Trim(words[i+1], ".,;:"), "ed") {
			passive++
		}
	}
	return float64(passive) / float64(len(words))
}

func countIn(words []string, dict map[string]bool) int {
	var n int
	for _, w := range words {
		if dict[strings.Trim(w, ".,;:!?")] {
			n++
		}
	}
	return n
}

// sentenceLengthVariance returns the variance of sentence word counts, or -1
// when there are too few sentences to judge.
func sentenceLengthVariance(text string) float64 {
	ss := sentences(text)
	if len(ss) < 4 {
		return -1
	}
	lengths := make([]float64, len(ss))
	var sum float64
	for i, s := range ss {
		lengths[i] = float64(wordCount(s))
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	var varc float64
	for _, l := range lengths {
		varc += (l - mean) * (l - mean)
	}
	return varc / float64(len(lengths))
}
