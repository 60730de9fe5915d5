package engine

import (
	"math"
	"strings"

	"resumetric/internal/types"
)

// scoreRelevance measures topical overlap between the resume and the job
// description as cosine similarity over normalized unigram frequencies.
// Without a job description it falls back to the industry baseline and says
// so in a low-severity issue.
func scoreRelevance(in scoreInput) types.SubScore {
	if !in.HasJob {
		return relevanceBaseline(in)
	}

	resumeVec := termFrequencies(in.Resume)
	jobVec := termFrequencies(in.Job)
	sim := cosineSimilarity(resumeVec, jobVec)

	// Raw cosine over natural language rarely exceeds ~0.6 even for strong
	// matches, so stretch the usable range before clamping.
	value := int(math.Round(sim * 160))

	var issues []types.Issue
	if value < 50 {
		issues = append(issues, types.Issue{
			Category:    ScorerRelevance,
			Severity:    types.SeverityMedium,
			Description: "Resume vocabulary overlaps little with the job description",
			Suggestion:  "Mirror the role's terminology where it truthfully applies to your work",
		})
	}

	return subScore(ScorerRelevance, value, issues)
}

func relevanceBaseline(in scoreInput) types.SubScore {
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

	value := hits * 100 * 2 / len(baseline)
	issues := []types.Issue{{
		Category:    ScorerRelevance,
		Severity:    types.SeverityLow,
		Description: "No job description provided; relevance scored against the " + in.Industry + " industry baseline",
		Suggestion:  "Provide the target job description for a precise relevance score",
	}}

	return subScore(ScorerRelevance, value, issues)
}

func termFrequencies(text string) map[string]float64 {
	freq := make(map[string]float64)
	var total float64
	for _, tok := range tokenize(text) {
		norm := singularize(tok.norm)
		if len(norm) < 2 || stopWords[norm] || isNumeric(norm) {
			continue
		}
		freq[norm]++
		total++
	}
	if total > 0 {
		for k := range freq {
			freq[k] /= total
		}
	}
	return freq
}

func cosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for k, va := range a {
		normA += va * va
		if vb, ok := b[k]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
