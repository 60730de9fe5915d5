package engine

import (
	"fmt"

	"resumetric/internal/types"
)

// expectedSections weights presence of the standard resume structure. Weights
// sum to 100; a present-but-thin section earns half credit.
var expectedSections = []struct {
	Name     types.SectionName
	Weight   int
	MinWords int
}{
	{types.SectionExperience, 30, 40},
	{types.SectionEducation, 20, 10},
	{types.SectionSkills, 20, 8},
	{types.SectionSummary, 15, 15},
	{types.SectionContact, 15, 3},
}

// scoreSections measures presence and completeness of the expected resume
// sections. A missing section costs its full weight; a weak one costs half.
func scoreSections(in scoreInput) types.SubScore {
	value := 0
	var issues []types.Issue

	for _, exp := range expectedSections {
		sec := FindSection(in.Sections, exp.Name)
		if sec == nil {
			issues = append(issues, types.Issue{
				Category:    ScorerSection,
				Severity:    missingSeverity(exp.Weight),
				Description: fmt.Sprintf("No %s section detected", exp.Name),
				Suggestion:  fmt.Sprintf("Add a clearly labeled %s section", exp.Name),
			})
			continue
		}
		if wordCount(sec.Content) < exp.MinWords {
			value += exp.Weight / 2
			issues = append(issues, types.Issue{
				Category:    ScorerSection,
				Severity:    types.SeverityLow,
				Description: fmt.Sprintf("%s section is very thin", exp.Name),
				Suggestion:  fmt.Sprintf("Expand the %s section with more detail", exp.Name),
			})
			continue
		}
		value += exp.Weight
	}

	return subScore(ScorerSection, value, issues)
}

func missingSeverity(weight int) types.Severity {
	if weight >= 25 {
		return types.SeverityHigh
	}
	return types.SeverityMedium
}

// sectionCompleteness rates one section 0-100 for the per-section breakdown
// on the result.
func sectionCompleteness(sec types.Section) int {
	for _, exp := range expectedSections {
		if exp.Name != sec.Name {
			continue
		}
		wc := wordCount(sec.Content)
		if wc >= exp.MinWords*2 {
			return 100
		}
		if wc >= exp.MinWords {
			return 80
		}
		return 50
	}
	if wordCount(sec.Content) > 20 {
		return 70
	}
	return 50
}
