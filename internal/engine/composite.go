package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"resumetric/internal/types"
)

// scoreWeights is the single composite weight table. Entries sum to 1.0. The
// slice fixes the summation order: float addition is not associative, so a
// map-ordered sum could land on either side of a .5 rounding boundary. The
// language tone score is reported but intentionally carries no weight, and
// the ATS score is reported separately from the weighted total.
var scoreWeights = []struct {
	name   string
	weight float64
}{
	{ScorerKeyword, 0.20},
	{ScorerGrammar, 0.15},
	{ScorerFormatting, 0.10},
	{ScorerSection, 0.15},
	{ScorerActionVerb, 0.10},
	{ScorerRelevance, 0.15},
	{ScorerBullet, 0.05},
	{ScorerLength, 0.10},
}

// Weights returns the composite weight table keyed by scorer name.
func Weights() map[string]float64 {
	out := make(map[string]float64, len(scoreWeights))
	for _, entry := range scoreWeights {
		out[entry.name] = entry.weight
	}
	return out
}

// Combine computes the weighted total from the sub-scores and stamps each
// sub-score with its weight. Unweighted scores keep weight 0.
func Combine(subs map[string]*types.SubScore) int {
	var total float64
	for _, entry := range scoreWeights {
		sub, ok := subs[entry.name]
		if !ok {
			continue
		}
		sub.Weight = entry.weight
		total += float64(sub.Value) * entry.weight
	}
	return clampScore(int(math.Round(total)))
}

var severityRank = map[types.Severity]int{
	types.SeverityCritical: 0,
	types.SeverityHigh:     1,
	types.SeverityMedium:   2,
	types.SeverityLow:      3,
}

// BuildSuggestionList merges scorer issues with ATS failures into a single
// prioritized list: severity first, then ATS impact, then stable input order.
func BuildSuggestionList(subs map[string]*types.SubScore, ats types.ATSReport) []types.Issue {
	var list []types.Issue

	// Deterministic scorer order regardless of map iteration.
	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		list = append(list, subs[name].Issues...)
	}

	impacts := make(map[int]int) // index in list -> ATS impact
	for _, ai := range ats.Issues {
		list = append(list, types.Issue{
			Category:    "ats",
			Severity:    atsSeverity(ai.Impact),
			Description: ai.Description,
			Suggestion:  ai.Solution,
		})
		impacts[len(list)-1] = ai.Impact
	}

	idx := make([]int, len(list))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := severityRank[list[idx[a]].Severity], severityRank[list[idx[b]].Severity]
		if ra != rb {
			return ra < rb
		}
		return impacts[idx[a]] > impacts[idx[b]]
	})

	out := make([]types.Issue, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, i := range idx {
		key := list[i].Category + "|" + list[i].Description
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, list[i])
	}
	return out
}

func atsSeverity(impact int) types.Severity {
	switch {
	case impact >= 15:
		return types.SeverityCritical
	case impact >= 10:
		return types.SeverityHigh
	case impact >= 5:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

// SummarizeSuggestions renders the top suggestions as a single readable
// string for clients that want prose instead of the structured list.
func SummarizeSuggestions(list []types.Issue, top int) string {
	if len(list) == 0 {
		return "No significant issues found."
	}
	if top > 0 && len(list) > top {
		list = list[:top]
	}
	parts := make([]string, 0, len(list))
	for i, issue := range list {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, issue.Suggestion))
	}
	return strings.Join(parts, " ")
}

// weakestScorers returns the names of sub-scores under the cutoff, weakest
// first, for industry recommendation lookup.
func weakestScorers(subs map[string]*types.SubScore, cutoff int) []string {
	type pair struct {
		name  string
		value int
	}
	var weak []pair
	for name, sub := range subs {
		if sub.Value < cutoff {
			weak = append(weak, pair{name, sub.Value})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].value != weak[j].value {
			return weak[i].value < weak[j].value
		}
		return weak[i].name < weak[j].name
	})
	out := make([]string, len(weak))
	for i, p := range weak {
		out[i] = p.name
	}
	return out
}
