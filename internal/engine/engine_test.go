package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "resumetric/internal/errors"
	"resumetric/internal/types"
)

const sampleJob = `Looking for a Senior Backend Engineer.
Requirements: Python, SQL, Kubernetes, Docker, and experience with
distributed systems. AWS certification preferred.`

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	logger, err := apperrors.New("error")
	require.NoError(t, err)
	return New(logger, opts...)
}

func analyzeIn(resume, job string, ft types.FileType) AnalyzeInput {
	in := AnalyzeInput{Resume: types.ResumeDocument{RawText: resume, FileType: ft}}
	if job != "" {
		in.Job = &types.JobDescription{RawText: job}
	}
	return in
}

func TestAnalyzeEmptyResume(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Analyze(context.Background(), analyzeIn("  \n ", "", ""))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrCodeEmptyResume, appErr.Code)
}

func TestAnalyzeDeterministic(t *testing.T) {
	e := newTestEngine(t)
	in := analyzeIn(sampleResume, sampleJob, types.FileTypePDF)

	first, err := e.Analyze(context.Background(), in)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.Analyze(context.Background(), in)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON), "run %d differed", i)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	inputs := []AnalyzeInput{
		analyzeIn(sampleResume, sampleJob, ""),
		analyzeIn("x", "", ""),
		analyzeIn(strings.Repeat("word ", 5000), "", ""),
		analyzeIn("EXPERIENCE\n"+strings.Repeat("• did things\n", 200), "", ""),
		analyzeIn("|||||\t\t\t\t|||||\nEXPERIENCE\nstuff\n", "", types.FileTypeOther),
	}

	e := newTestEngine(t)
	for i, in := range inputs {
		res, err := e.Analyze(context.Background(), in)
		require.NoError(t, err, "input %d", i)

		for name, v := range map[string]int{
			"ats":        res.ATSScore,
			"keyword":    res.KeywordScore,
			"grammar":    res.GrammarScore,
			"formatting": res.FormattingScore,
			"section":    res.SectionScore,
			"actionVerb": res.ActionVerbScore,
			"relevance":  res.RelevanceScore,
			"bullet":     res.BulletPointScore,
			"tone":       res.LanguageToneScore,
			"length":     res.LengthScore,
			"total":      res.TotalScore,
		} {
			assert.GreaterOrEqual(t, v, 0, "input %d %s", i, name)
			assert.LessOrEqual(t, v, 100, "input %d %s", i, name)
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range Weights() {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

// Every weight is a multiple of 0.05, so weighted totals often land exactly
// on .5. The rounded result must not depend on which order the sub-scores
// were summed in; rebuilding the map each call re-randomizes Go's iteration
// order, which an order-sensitive sum would leak through.
func TestCombineStableOnHalfPointTotals(t *testing.T) {
	vectors := []map[string]int{
		// weighted sum 46.5
		{
			ScorerKeyword: 0, ScorerGrammar: 63, ScorerFormatting: 97,
			ScorerSection: 53, ScorerActionVerb: 31, ScorerRelevance: 77,
			ScorerBullet: 13, ScorerLength: 41,
		},
		// weighted sum 10.5
		{
			ScorerKeyword: 0, ScorerGrammar: 70, ScorerFormatting: 0,
			ScorerSection: 0, ScorerActionVerb: 0, ScorerRelevance: 0,
			ScorerBullet: 0, ScorerLength: 0,
		},
	}

	for vi, values := range vectors {
		build := func() map[string]*types.SubScore {
			subs := make(map[string]*types.SubScore, len(values))
			for name, v := range values {
				subs[name] = &types.SubScore{Name: name, Value: v}
			}
			return subs
		}

		first := Combine(build())
		for i := 0; i < 500; i++ {
			assert.Equal(t, first, Combine(build()), "vector %d run %d", vi, i)
		}
	}
}

func TestCombineStampsWeights(t *testing.T) {
	subs := map[string]*types.SubScore{
		ScorerKeyword: {Name: ScorerKeyword, Value: 100},
		ScorerTone:    {Name: ScorerTone, Value: 100},
	}
	Combine(subs)
	assert.Equal(t, 0.20, subs[ScorerKeyword].Weight)
	assert.Zero(t, subs[ScorerTone].Weight, "language tone carries no weight")
}

func TestTotalScoreExcludesATS(t *testing.T) {
	e := newTestEngine(t)

	// Identical text, wildly different ATS posture via file type.
	clean := analyzeIn(sampleResume, "", types.FileTypePDF)
	flagged := analyzeIn(sampleResume, "", types.FileTypeOther)

	a, err := e.Analyze(context.Background(), clean)
	require.NoError(t, err)
	b, err := e.Analyze(context.Background(), flagged)
	require.NoError(t, err)

	assert.Greater(t, a.ATSScore, b.ATSScore, "file type should move the ATS score")
	assert.Equal(t, a.TotalScore, b.TotalScore, "ATS score must not feed the weighted total")
}

func TestATSReportFormula(t *testing.T) {
	report := CheckATS("|a|b|\n|c|d|\nno email here at all", nil, types.FileTypeOther)

	var sum int
	for _, issue := range report.Issues {
		assert.Greater(t, issue.Impact, 0)
		sum += issue.Impact
	}
	want := 100 - sum
	if want < 0 {
		want = 0
	}
	assert.Equal(t, want, report.Score)

	// Issues sorted by impact descending.
	for i := 1; i < len(report.Issues); i++ {
		assert.GreaterOrEqual(t, report.Issues[i-1].Impact, report.Issues[i].Impact)
	}
}

func TestAnalyzeNoJobDescriptionFallback(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Analyze(context.Background(), analyzeIn(sampleResume, "", ""))
	require.NoError(t, err)

	var flagged bool
	for _, issue := range res.SuggestionList {
		if strings.Contains(issue.Description, "industry baseline") {
			flagged = true
		}
	}
	assert.True(t, flagged, "baseline scoring should be disclosed in the issues")
	assert.Equal(t, "Technology", res.Industry)
}

func TestClassifyIndustryThresholdFallsBackToGeneral(t *testing.T) {
	m := ClassifyIndustry("hello world nothing notable here whatsoever", "", 0.02)
	assert.Equal(t, "General", m.Industry)
	assert.Zero(t, m.Score)
}

func TestClassifyIndustryPicksTechnology(t *testing.T) {
	m := ClassifyIndustry(sampleResume, "", 0.02)
	assert.Equal(t, "Technology", m.Industry)
	assert.Greater(t, m.Score, 0)
}

func TestClassifyIndustryUsesJobDescription(t *testing.T) {
	vague := `JANE DOE
SUMMARY
Reliable generalist who gets things done.
EXPERIENCE
Coordinated schedules and wrote weekly updates.`

	alone := ClassifyIndustry(vague, "", 0.02)
	assert.Equal(t, "General", alone.Industry)

	withJob := ClassifyIndustry(vague, sampleJob, 0.02)
	assert.Equal(t, "Technology", withJob.Industry, "the posting names the industry")
}

type failingSuggester struct{}

func (failingSuggester) Suggest(context.Context, string, string, *types.AnalysisResult) (*types.RealtimeResult, error) {
	return nil, errors.New("provider down")
}

type fixedSuggester struct{ out types.RealtimeResult }

func (s fixedSuggester) Suggest(context.Context, string, string, *types.AnalysisResult) (*types.RealtimeResult, error) {
	return &s.out, nil
}

func TestAnalyzeAIFailureDegradesGracefully(t *testing.T) {
	e := newTestEngine(t, WithSuggester(failingSuggester{}))
	res, err := e.Analyze(context.Background(), analyzeIn(sampleResume, "", ""))
	require.NoError(t, err, "AI failure must not fail the analysis")
	assert.Nil(t, res.AISuggestions)
	assert.Nil(t, res.AIScore)
	assert.NotZero(t, res.TotalScore)
}

func TestAnalyzeAISuccessAttachesSuggestions(t *testing.T) {
	want := types.RealtimeResult{
		AIScore: 82,
		AISuggestions: []types.AISuggestion{
			{Title: "Quantify impact", Description: "Add metrics to bullets", Priority: "high"},
		},
	}
	e := newTestEngine(t, WithSuggester(fixedSuggester{out: want}))
	res, err := e.Analyze(context.Background(), analyzeIn(sampleResume, "", ""))
	require.NoError(t, err)
	require.NotNil(t, res.AIScore)
	assert.Equal(t, 82, *res.AIScore)
	assert.Equal(t, want.AISuggestions, res.AISuggestions)
}

func TestBuildSuggestionListOrdering(t *testing.T) {
	subs := map[string]*types.SubScore{
		ScorerLength: {Name: ScorerLength, Value: 40, Issues: []types.Issue{
			{Category: ScorerLength, Severity: types.SeverityLow, Description: "short", Suggestion: "expand"},
		}},
		ScorerKeyword: {Name: ScorerKeyword, Value: 30, Issues: []types.Issue{
			{Category: ScorerKeyword, Severity: types.SeverityHigh, Description: "missing terms", Suggestion: "add terms"},
		}},
	}
	ats := types.ATSReport{Issues: []types.ATSIssue{
		{Type: "contactInfo", Description: "no email", Impact: 15, Solution: "add email"},
	}}

	list := BuildSuggestionList(subs, ats)
	require.NotEmpty(t, list)
	assert.Equal(t, types.SeverityCritical, list[0].Severity, "highest severity first")
	assert.Equal(t, types.SeverityLow, list[len(list)-1].Severity)
}

func TestSummarizeSuggestionsTruncates(t *testing.T) {
	issues := []types.Issue{
		{Suggestion: "one"}, {Suggestion: "two"}, {Suggestion: "three"},
	}
	s := SummarizeSuggestions(issues, 2)
	assert.Contains(t, s, "1. one")
	assert.Contains(t, s, "2. two")
	assert.NotContains(t, s, "three")

	assert.Equal(t, "No significant issues found.", SummarizeSuggestions(nil, 5))
}
