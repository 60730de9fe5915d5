package engine

import (
	"strings"

	"resumetric/internal/types"
)

// Scorer names. These key the composite weight table and the sub-score map;
// they also appear in issue categories.
const (
	ScorerKeyword    = "keyword"
	ScorerGrammar    = "grammar"
	ScorerFormatting = "formatting"
	ScorerSection    = "section"
	ScorerActionVerb = "actionVerb"
	ScorerRelevance  = "relevance"
	ScorerBullet     = "bulletPoint"
	ScorerLength     = "length"
	ScorerTone       = "languageTone"
)

// scoreInput bundles the immutable artifacts every heuristic scorer consumes.
// Scorers are pure functions over this value; none of them mutate it.
type scoreInput struct {
	Resume   string
	Lines    []string
	Sections []types.Section
	Keywords []types.Keyword
	Job      string
	HasJob   bool
	Industry string
	Tunables Tunables
}

// Tunables are the documented, centralized analysis constants. Zero values
// fall back to DefaultTunables via normalize.
type Tunables struct {
	MinWords          int     // lower bound of the comfortable length band
	MaxWords          int     // upper bound of the comfortable length band
	TopSuggestions    int     // issues folded into the summary string
	IndustryThreshold float64 // minimum normalized overlap before falling back to General
}

// DefaultTunables match typical one-to-two page resumes.
var DefaultTunables = Tunables{
	MinWords:          300,
	MaxWords:          1200,
	TopSuggestions:    5,
	IndustryThreshold: 0.02,
}

func (t Tunables) normalize() Tunables {
	if t.MinWords <= 0 {
		t.MinWords = DefaultTunables.MinWords
	}
	if t.MaxWords <= t.MinWords {
		t.MaxWords = DefaultTunables.MaxWords
	}
	if t.TopSuggestions <= 0 {
		t.TopSuggestions = DefaultTunables.TopSuggestions
	}
	if t.IndustryThreshold <= 0 {
		t.IndustryThreshold = DefaultTunables.IndustryThreshold
	}
	return t
}

func newScoreInput(resume string, sections []types.Section, keywords []types.Keyword, job, industry string, tun Tunables) scoreInput {
	return scoreInput{
		Resume:   resume,
		Lines:    strings.Split(resume, "\n"),
		Sections: sections,
		Keywords: keywords,
		Job:      job,
		HasJob:   strings.TrimSpace(job) != "",
		Industry: industry,
		Tunables: tun.normalize(),
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func subScore(name string, value int, issues []types.Issue) types.SubScore {
	if issues == nil {
		issues = []types.Issue{}
	}
	return types.SubScore{Name: name, Value: clampScore(value), Issues: issues}
}

// bulletPrefixes recognized as bullet markers at line start.
var bulletPrefixes = []string{"•", "-", "*", "‣", "▪", "·", "+"}

func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(trimmed, p+" ") || (strings.HasPrefix(trimmed, p) && len(trimmed) > len(p)) {
			return true
		}
	}
	return false
}

func stripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, p := range bulletPrefixes {
		trimmed = strings.TrimPrefix(trimmed, p)
	}
	return strings.TrimSpace(trimmed)
}

// experienceLines returns the non-heading lines of all Experience sections.
func experienceLines(sections []types.Section) []string {
	var out []string
	for _, s := range sections {
		if s.Name != types.SectionExperience {
			continue
		}
		lines := strings.Split(s.Content, "\n")
		for i, line := range lines {
			if i == 0 {
				// First line of the span is the section heading itself.
				continue
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return out
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// sentences splits text on terminal punctuation. Good enough for ratio
// heuristics; not a linguistic segmenter.
func sentences(text string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(cur.String())
			if wordCount(s) > 1 {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); wordCount(s) > 1 {
		out = append(out, s)
	}
	return out
}
