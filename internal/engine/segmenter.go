package engine

import (
	"strings"

	"resumetric/internal/errors"
	"resumetric/internal/types"
)

// Segment splits raw resume text into named, ordered sections using heading
// heuristics. The returned sections are contiguous and cover the full input:
// concatenating their contents in order reproduces the original text. Leading
// text before the first recognized heading becomes an implicit Contact
// section; a resume with no detectable headings yields a single Other section.
func Segment(text string) ([]types.Section, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyResume,
			"Resume text is empty or whitespace only", nil)
	}

	type headingMark struct {
		offset int
		name   types.SectionName
	}

	var marks []headingMark
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		if name, ok := matchHeading(line); ok {
			marks = append(marks, headingMark{offset: offset, name: name})
		}
		offset += len(line)
	}

	if len(marks) == 0 {
		return []types.Section{{
			Name:        types.SectionOther,
			Content:     text,
			StartOffset: 0,
			EndOffset:   len(text),
		}}, nil
	}

	var sections []types.Section
	if marks[0].offset > 0 {
		// Unrecognized leading text is the header/contact block.
		sections = append(sections, types.Section{
			Name:        types.SectionContact,
			Content:     text[:marks[0].offset],
			StartOffset: 0,
			EndOffset:   marks[0].offset,
		})
	}
	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].offset
		}
		sections = append(sections, types.Section{
			Name:        m.name,
			Content:     text[m.offset:end],
			StartOffset: m.offset,
			EndOffset:   end,
		})
	}

	return sections, nil
}

// matchHeading reports whether a line looks like a section heading and, if
// so, which canonical section it opens. A heading is short, carries no
// sentence punctuation, and either hits the section-name dictionary or is a
// standalone all-caps label.
func matchHeading(line string) (types.SectionName, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimRight(trimmed, ":")
	trimmed = strings.TrimLeft(trimmed, "-•*# ")

	if trimmed == "" || len(trimmed) > 48 {
		return "", false
	}
	if strings.ContainsAny(trimmed, ".,;") {
		return "", false
	}
	if len(strings.Fields(trimmed)) > 5 {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, h := range sectionHeadings {
		if !strings.Contains(lower, h.Phrase) {
			continue
		}
		// Guard against mid-sentence hits: the phrase must lead the line, or
		// the line must be cased like a label.
		if strings.HasPrefix(lower, h.Phrase) || isTitleCase(trimmed) || isAllCapsLabel(trimmed) {
			return h.Name, true
		}
	}

	// Standalone all-caps labels open a section even when the name is not in
	// the dictionary ("AWARDS AND HONORS" style).
	if isAllCapsLabel(trimmed) {
		return types.SectionOther, true
	}

	return "", false
}

func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := rune(w[0])
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

func isAllCapsLabel(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
		if r >= '0' && r <= '9' {
			// Lines dominated by digits are dates or phone numbers, not headings.
			return false
		}
	}
	return hasLetter
}

// FindSection returns the first section with the given name, or nil.
func FindSection(sections []types.Section, name types.SectionName) *types.Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}
