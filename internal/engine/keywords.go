package engine

import (
	"sort"
	"strings"
	"unicode"

	"resumetric/internal/types"
)

// multiwordTerms collects every multi-word phrase from the skill dictionaries
// so the n-gram pass only keeps phrases the engine actually knows about.
var multiwordTerms = func() map[string]bool {
	out := make(map[string]bool)
	for _, dict := range []map[string]bool{technicalTerms, softTerms, certificationTerms} {
		for term := range dict {
			if strings.Contains(term, " ") {
				out[term] = true
			}
		}
	}
	return out
}()

// termCount tracks occurrences of a normalized term, remembering the first
// surface form encountered for display.
type termCount struct {
	surface string
	count   int
}

// ExtractKeywords tokenizes the resume and optional job description into
// normalized 1-3 gram keywords, flags job-description matches, and assigns
// categories and importance. Output ordering is deterministic: sorted by
// normalized text, then source.
func ExtractKeywords(resumeText, jobText string) []types.Keyword {
	resumeTerms := collectTerms(resumeText)
	jobTerms := collectTerms(jobText)

	seen := make(map[string]bool, len(resumeTerms)+len(jobTerms))
	keywords := make([]types.Keyword, 0, len(resumeTerms)+len(jobTerms))

	add := func(norm string) {
		if seen[norm] {
			return
		}
		seen[norm] = true

		r, inResume := resumeTerms[norm]
		j, inJob := jobTerms[norm]

		kw := types.Keyword{
			NormalizedText:       norm,
			IsFromJobDescription: inJob,
			IsMatch:              inResume && inJob,
			Category:             categorize(norm),
			Importance:           importanceOf(norm, jobCount(j, inJob)),
		}
		switch {
		case inResume && inJob:
			kw.Source = types.SourceBoth
			kw.Text = r.surface
			kw.Count = r.count + j.count
		case inJob:
			kw.Source = types.SourceJob
			kw.Text = j.surface
			kw.Count = j.count
		default:
			kw.Source = types.SourceResume
			kw.Text = r.surface
			kw.Count = r.count
		}
		keywords = append(keywords, kw)
	}

	for norm := range resumeTerms {
		add(norm)
	}
	for norm := range jobTerms {
		add(norm)
	}

	sort.Slice(keywords, func(i, k int) bool {
		if keywords[i].NormalizedText != keywords[k].NormalizedText {
			return keywords[i].NormalizedText < keywords[k].NormalizedText
		}
		return keywords[i].Source < keywords[k].Source
	})

	return keywords
}

func jobCount(tc termCount, inJob bool) int {
	if !inJob {
		return 0
	}
	return tc.count
}

// collectTerms produces normalized term counts for one text: unigrams minus
// stop words, plus 2-3 grams that appear in the skill phrase dictionaries.
func collectTerms(text string) map[string]termCount {
	terms := make(map[string]termCount)
	if strings.TrimSpace(text) == "" {
		return terms
	}

	tokens := tokenize(text)

	record := func(norm, surface string) {
		tc := terms[norm]
		if tc.surface == "" {
			tc.surface = surface
		}
		tc.count++
		terms[norm] = tc
	}

	for i, tok := range tokens {
		norm := singularize(tok.norm)
		if !stopWords[norm] && len(norm) >= 2 && !isNumeric(norm) {
			record(norm, tok.surface)
		}

		// Phrase candidates keep the raw (non-singularized) token stream.
		for n := 2; n <= 3 && i+n <= len(tokens); n++ {
			parts := make([]string, n)
			surfaces := make([]string, n)
			for k := 0; k < n; k++ {
				parts[k] = tokens[i+k].norm
				surfaces[k] = tokens[i+k].surface
			}
			phrase := strings.Join(parts, " ")
			if multiwordTerms[phrase] {
				record(phrase, strings.Join(surfaces, " "))
			}
		}
	}

	return terms
}

type token struct {
	surface string
	norm    string
}

// tokenize splits text into word tokens, preserving characters that carry
// meaning in skill names (c++, c#, node.js, ci/cd).
func tokenize(text string) []token {
	var tokens []token
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		surface := strings.Trim(cur.String(), "./-")
		cur.Reset()
		if surface == "" {
			return
		}
		tokens = append(tokens, token{surface: surface, norm: strings.ToLower(surface)})
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '/' || r == '-' {
			cur.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// singularize applies light plural stemming so "skills" and "skill" count as
// one term. Deliberately conservative: short words and -ss/-us/-is endings
// are left alone.
func singularize(w string) string {
	if len(w) <= 3 {
		return w
	}
	if strings.HasSuffix(w, "ies") {
		return w[:len(w)-3] + "y"
	}
	if strings.HasSuffix(w, "ss") || strings.HasSuffix(w, "us") || strings.HasSuffix(w, "is") {
		return w
	}
	if strings.HasSuffix(w, "s") {
		return w[:len(w)-1]
	}
	return w
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '/' && r != '-' {
			return false
		}
	}
	return true
}

func categorize(norm string) types.KeywordCategory {
	switch {
	case certificationTerms[norm]:
		return types.CategoryCertification
	case technicalTerms[norm]:
		return types.CategoryTechnical
	case softTerms[norm]:
		return types.CategorySoft
	default:
		return types.CategoryGeneral
	}
}

// importanceOf derives the 1-5 importance rating from dictionary membership
// and job-description frequency. Exact certification matches rank highest.
func importanceOf(norm string, jobCount int) int {
	var imp int
	switch {
	case certificationTerms[norm]:
		imp = 5
	case technicalTerms[norm]:
		imp = 3
	case softTerms[norm]:
		imp = 2
	default:
		imp = 1
	}
	if jobCount >= 2 {
		imp++
	}
	if jobCount >= 4 {
		imp++
	}
	if imp > 5 {
		imp = 5
	}
	return imp
}
