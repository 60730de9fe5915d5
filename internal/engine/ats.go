package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"resumetric/internal/types"
)

// atsCheck is one ATS compatibility rule. fail returns true when the check
// fails; checks that cannot be evaluated from plain text report pass.
type atsCheck struct {
	name     string
	impact   int
	solution string
	fail     func(atsInput) (bool, string)
}

type atsInput struct {
	Text     string
	Lines    []string
	Sections []types.Section
	FileType types.FileType
}

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// atsChecks is the ordered rule table. Score is max(0, 100 minus the sum of
// failed impacts); order here fixes PassedChecks order in the report.
var atsChecks = []atsCheck{
	{
		name:     "tableLayout",
		impact:   15,
		solution: "Replace table layouts with plain left-aligned text",
		fail: func(in atsInput) (bool, string) {
			var tableLines int
			for _, line := range in.Lines {
				if strings.Count(line, "|") >= 2 || strings.Count(line, "\t") >= 3 {
					tableLines++
				}
			}
			if tableLines >= 2 {
				return true, fmt.Sprintf("%d line(s) look like table rows, which parsers flatten unpredictably", tableLines)
			}
			return false, ""
		},
	},
	{
		name:     "extractionArtifacts",
		impact:   10,
		solution: "Export the resume as text-based PDF or plain text, not a scan",
		fail: func(in atsInput) (bool, string) {
			if strings.Contains(in.Text, "�") || strings.Contains(in.Text, "[image]") || strings.Contains(in.Text, "<image") {
				return true, "Text contains extraction artifacts suggesting embedded images or a scanned source"
			}
			return false, ""
		},
	},
	{
		name:     "standardHeadings",
		impact:   10,
		solution: "Use conventional headings such as Experience, Education, and Skills",
		fail: func(in atsInput) (bool, string) {
			var recognized int
			for _, s := range in.Sections {
				if s.Name != types.SectionOther {
					recognized++
				}
			}
			if recognized < 2 {
				return true, "Fewer than two conventional section headings were recognized"
			}
			return false, ""
		},
	},
	{
		name:     "contactInfo",
		impact:   15,
		solution: "Put an email address near the top of the document",
		fail: func(in atsInput) (bool, string) {
			head := in.Text
			for _, s := range in.Sections {
				if s.Name == types.SectionContact {
					head = s.Content
					break
				}
			}
			// Fall back to the first 500 bytes when no contact section exists.
			if len(head) > 500 && head == in.Text {
				head = in.Text[:500]
			}
			if !emailRe.MatchString(head) {
				return true, "No email address found near the top of the resume"
			}
			return false, ""
		},
	},
	{
		name:     "fileType",
		impact:   10,
		solution: "Submit the resume as PDF, DOCX, or plain text",
		fail: func(in atsInput) (bool, string) {
			if in.FileType == types.FileTypeOther {
				return true, "Unrecognized source file format may not parse in applicant tracking systems"
			}
			return false, ""
		},
	},
	{
		name:     "specialCharacters",
		impact:   5,
		solution: "Limit decorative symbols to plain bullet markers",
		fail: func(in atsInput) (bool, string) {
			var nonASCII, total int
			for _, r := range in.Text {
				total++
				if r > unicode.MaxASCII && !isCommonBulletRune(r) {
					nonASCII++
				}
			}
			if total > 0 && nonASCII*100/total > 5 {
				return true, "Heavy use of non-standard characters can corrupt parsed output"
			}
			return false, ""
		},
	},
}

func isCommonBulletRune(r rune) bool {
	switch r {
	case '•', '‣', '▪', '·', '–', '—', ' ':
		return true
	}
	return false
}

// CheckATS runs the compatibility rule table and builds the report. Failed
// checks are ordered by impact, largest first.
func CheckATS(text string, sections []types.Section, fileType types.FileType) types.ATSReport {
	in := atsInput{
		Text:     text,
		Lines:    strings.Split(text, "\n"),
		Sections: sections,
		FileType: fileType,
	}

	report := types.ATSReport{
		Issues:       []types.ATSIssue{},
		PassedChecks: []string{},
	}

	var deducted int
	for _, c := range atsChecks {
		failed, desc := c.fail(in)
		if !failed {
			report.PassedChecks = append(report.PassedChecks, c.name)
			continue
		}
		deducted += c.impact
		report.Issues = append(report.Issues, types.ATSIssue{
			Type:        c.name,
			Description: desc,
			Impact:      c.impact,
			Solution:    c.solution,
		})
	}

	sort.SliceStable(report.Issues, func(i, j int) bool {
		return report.Issues[i].Impact > report.Issues[j].Impact
	})

	report.Score = 100 - deducted
	if report.Score < 0 {
		report.Score = 0
	}
	return report
}
