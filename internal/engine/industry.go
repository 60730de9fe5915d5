package engine

import (
	"strings"

	"resumetric/internal/types"
)

// ClassifyIndustry matches the resume, together with any job description,
// against per-industry term dictionaries. The posting counts because it names
// the industry even when the resume itself is vague. Ties resolve by the
// fixed priority in industryOrder; when no industry clears the threshold the
// result is General with score 0.
func ClassifyIndustry(resumeText, jobText string, threshold float64) types.IndustryMatch {
	text := resumeText
	if strings.TrimSpace(jobText) != "" {
		text += "\n" + jobText
	}
	lower := strings.ToLower(text)
	words := wordCount(text)
	if words == 0 {
		return types.IndustryMatch{Industry: "General", Recommendations: []string{}}
	}

	best := types.IndustryMatch{Industry: "General", Recommendations: []string{}}
	var bestOverlap float64

	for _, industry := range industryOrder {
		terms := industryKeywords[industry]
		if len(terms) == 0 {
			continue
		}
		var hits int
		for _, term := range terms {
			hits += strings.Count(lower, term)
		}
		overlap := float64(hits) / float64(words)
		if overlap < threshold {
			continue
		}
		// Strictly greater keeps earlier industries on ties.
		if overlap > bestOverlap {
			bestOverlap = overlap
			best.Industry = industry
			best.Score = clampScore(int(overlap * 1000))
		}
	}

	return best
}

// RecommendationsFor returns industry-specific advice for the weakest scoring
// dimensions, preserving the caller's ordering of weak scorers.
func RecommendationsFor(industry string, weakScorers []string) []string {
	templates := industryRecommendations[industry]
	if templates == nil {
		templates = industryRecommendations["General"]
	}

	out := []string{}
	for _, name := range weakScorers {
		if rec, ok := templates[name]; ok {
			out = append(out, rec)
		}
	}
	return out
}
