package engine

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"resumetric/internal/errors"
	"resumetric/internal/types"
)

// Suggester produces AI-backed suggestions from a finished base analysis.
// The engine treats it as optional: a nil Suggester or a failed call leaves
// the deterministic result intact.
type Suggester interface {
	Suggest(ctx context.Context, resumeText, jobText string, base *types.AnalysisResult) (*types.RealtimeResult, error)
}

// AnalyzeInput carries one analysis request. Job is nil when the caller has
// no posting to score against.
type AnalyzeInput struct {
	Resume types.ResumeDocument
	Job    *types.JobDescription
}

func (in AnalyzeInput) jobText() string {
	if in.Job == nil {
		return ""
	}
	return in.Job.RawText
}

// Engine runs the deterministic analysis pipeline. Safe for concurrent use;
// all mutable state lives per call.
type Engine struct {
	tunables  Tunables
	logger    *errors.Logger
	suggester Suggester
}

// Option configures an Engine.
type Option func(*Engine)

// WithTunables overrides the default analysis constants.
func WithTunables(t Tunables) Option {
	return func(e *Engine) { e.tunables = t }
}

// WithSuggester attaches an optional AI suggestion provider.
func WithSuggester(s Suggester) Option {
	return func(e *Engine) { e.suggester = s }
}

func New(logger *errors.Logger, opts ...Option) *Engine {
	e := &Engine{
		tunables: DefaultTunables,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.tunables = e.tunables.normalize()
	return e
}

// Tunables returns the engine's effective analysis constants.
func (e *Engine) Tunables() Tunables {
	return e.tunables
}

type scorerFunc func(scoreInput) types.SubScore

// scorerTable fixes which scorers run; order is irrelevant because results
// key by name.
var scorerTable = map[string]scorerFunc{
	ScorerKeyword:    scoreKeywords,
	ScorerGrammar:    scoreGrammar,
	ScorerFormatting: scoreFormatting,
	ScorerSection:    scoreSections,
	ScorerActionVerb: scoreActionVerbs,
	ScorerRelevance:  scoreRelevance,
	ScorerBullet:     scoreBullets,
	ScorerLength:     scoreLength,
	ScorerTone:       scoreLanguageTone,
}

// Analyze runs the full pipeline: segmentation, keyword extraction, and
// industry classification in one parallel stage, then every heuristic scorer
// and the ATS rule engine in a second stage, then composition. Apart from the
// optional AI fields the output is deterministic for identical input.
func (e *Engine) Analyze(ctx context.Context, in AnalyzeInput) (*types.AnalysisResult, error) {
	ctx, span := otel.Tracer("resumetric/engine").Start(ctx, "engine.analyze",
		trace.WithAttributes(
			attribute.Int("resume.bytes", len(in.Resume.RawText)),
			attribute.Bool("job.provided", strings.TrimSpace(in.jobText()) != ""),
		))
	defer span.End()

	if strings.TrimSpace(in.Resume.RawText) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyResume, "resume text is empty", nil)
	}
	if in.Resume.FileType == "" {
		in.Resume.FileType = types.FileTypeTXT
	}

	var (
		sections []types.Section
		keywords []types.Keyword
		industry types.IndustryMatch
	)

	// Stage one: structural artifacts the scorers depend on.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sections, err = Segment(in.Resume.RawText)
		return err
	})
	g.Go(func() error {
		keywords = ExtractKeywords(in.Resume.RawText, in.jobText())
		return nil
	})
	g.Go(func() error {
		industry = ClassifyIndustry(in.Resume.RawText, in.jobText(), e.tunables.IndustryThreshold)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scoreIn := newScoreInput(in.Resume.RawText, sections, keywords, in.jobText(), industry.Industry, e.tunables)

	// Stage two: independent scorers plus the ATS rule engine. A panicking
	// scorer degrades to a zero sub-score instead of failing the analysis.
	subs := make(map[string]*types.SubScore, len(scorerTable))
	for name := range scorerTable {
		subs[name] = &types.SubScore{}
	}
	var ats types.ATSReport

	g2, _ := errgroup.WithContext(ctx)
	for name, fn := range scorerTable {
		g2.Go(func() error {
			*subs[name] = e.runScorer(name, fn, scoreIn)
			return nil
		})
	}
	g2.Go(func() error {
		ats = CheckATS(in.Resume.RawText, sections, in.Resume.FileType)
		return nil
	})
	if err := g2.Wait(); err != nil {
		return nil, err
	}

	result := e.compose(scoreIn, subs, ats, industry, sections, keywords)

	if e.suggester != nil {
		e.foldInSuggestions(ctx, in, result)
	}

	span.SetAttributes(attribute.Int("analysis.total_score", result.TotalScore))
	return result, nil
}

// runScorer isolates scorer panics so one broken heuristic cannot take down
// the whole analysis.
func (e *Engine) runScorer(name string, fn scorerFunc, in scoreInput) (sub types.SubScore) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.LogError(
					errors.NewInternalError(errors.ErrCodeScorerFailed, fmt.Sprintf("scorer %s panicked: %v", name, r), nil),
					"scorer failed, reporting zero score", "scorer", name)
			}
			sub = subScore(name, 0, []types.Issue{{
				Category:    name,
				Severity:    types.SeverityHigh,
				Description: fmt.Sprintf("The %s scorer was unavailable for this analysis", name),
				Suggestion:  "Re-run the analysis; if this persists, report the resume that triggers it",
			}})
		}
	}()
	return fn(in)
}

func (e *Engine) compose(in scoreInput, subs map[string]*types.SubScore, ats types.ATSReport, industry types.IndustryMatch, sections []types.Section, keywords []types.Keyword) *types.AnalysisResult {
	total := Combine(subs)
	suggestionList := BuildSuggestionList(subs, ats)
	industry.Recommendations = RecommendationsFor(industry.Industry, weakestScorers(subs, 70))

	// Per-section completeness scores ride along on the section list.
	scored := make([]types.Section, len(sections))
	for i, s := range sections {
		s.Score = sectionCompleteness(s)
		scored[i] = s
	}

	allIssues := make([]types.Issue, 0, len(suggestionList))
	allIssues = append(allIssues, suggestionList...)

	return &types.AnalysisResult{
		ATSScore:          ats.Score,
		KeywordScore:      subs[ScorerKeyword].Value,
		GrammarScore:      subs[ScorerGrammar].Value,
		FormattingScore:   subs[ScorerFormatting].Value,
		SectionScore:      subs[ScorerSection].Value,
		ActionVerbScore:   subs[ScorerActionVerb].Value,
		RelevanceScore:    subs[ScorerRelevance].Value,
		BulletPointScore:  subs[ScorerBullet].Value,
		LanguageToneScore: subs[ScorerTone].Value,
		LengthScore:       subs[ScorerLength].Value,
		TotalScore:        total,

		Suggestions:    SummarizeSuggestions(suggestionList, in.Tunables.TopSuggestions),
		SuggestionList: suggestionList,

		Industry:                industry.Industry,
		IndustryScore:           industry.Score,
		IndustryRecommendations: industry.Recommendations,

		ATSDetails: ats,
		Keywords:   keywords,
		Sections:   scored,
		Issues:     allIssues,
	}
}

// foldInSuggestions attaches AI output when the provider succeeds. Provider
// failure is logged and otherwise ignored.
func (e *Engine) foldInSuggestions(ctx context.Context, in AnalyzeInput, result *types.AnalysisResult) {
	rt, err := e.suggester.Suggest(ctx, in.Resume.RawText, in.jobText(), result)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("AI suggestions unavailable, returning heuristic result only", "error", err.Error())
		}
		return
	}
	if rt == nil {
		return
	}
	result.AISuggestions = rt.AISuggestions
	score := rt.AIScore
	result.AIScore = &score
}
