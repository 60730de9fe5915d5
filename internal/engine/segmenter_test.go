package engine

import (
	"strings"
	"testing"

	"resumetric/internal/types"
)

const sampleResume = `Jane Smith
jane.smith@example.com | (555) 123-4567

SUMMARY
Backend engineer with eight years building distributed systems.

EXPERIENCE
Senior Software Engineer, Acme Corp
• Led migration of billing services to Kubernetes
• Built REST APIs in Python serving 2M requests per day
• Reduced deployment time by 40% through CI/CD automation

EDUCATION
B.S. Computer Science, State University

SKILLS
Python, SQL, Go, Docker, Kubernetes, PostgreSQL
`

func TestSegmentRecognizesStandardHeadings(t *testing.T) {
	sections, err := Segment(sampleResume)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}

	got := make(map[types.SectionName]bool)
	for _, s := range sections {
		got[s.Name] = true
	}

	for _, want := range []types.SectionName{
		types.SectionContact,
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	} {
		if !got[want] {
			t.Errorf("expected section %q in output, got %v", want, sections)
		}
	}
}

func TestSegmentSpansCoverInput(t *testing.T) {
	sections, err := Segment(sampleResume)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}

	var rebuilt strings.Builder
	prevEnd := 0
	for _, s := range sections {
		if s.StartOffset != prevEnd {
			t.Errorf("section %q starts at %d, want %d", s.Name, s.StartOffset, prevEnd)
		}
		if s.Content != sampleResume[s.StartOffset:s.EndOffset] {
			t.Errorf("section %q content does not match its offsets", s.Name)
		}
		rebuilt.WriteString(s.Content)
		prevEnd = s.EndOffset
	}
	if rebuilt.String() != sampleResume {
		t.Error("concatenated section contents do not reproduce the input")
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if _, err := Segment("   \n\n  "); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestSegmentNoHeadings(t *testing.T) {
	text := "just a paragraph of text with no structure at all\nand a second line\n"
	sections, err := Segment(text)
	if err != nil {
		t.Fatalf("Segment returned error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected one fallback section, got %d", len(sections))
	}
	if sections[0].Name != types.SectionOther {
		t.Errorf("fallback section name = %q, want %q", sections[0].Name, types.SectionOther)
	}
	if sections[0].Content != text {
		t.Error("fallback section should cover the whole input")
	}
}

func TestMatchHeadingRejectsProse(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"EXPERIENCE", true},
		{"Work Experience", true},
		{"Education:", true},
		{"I have experience building large systems.", false},
		{"my education was mostly informal", false},
		{"Skills", true},
	}
	for _, tt := range tests {
		_, ok := matchHeading(tt.line)
		if ok != tt.want {
			t.Errorf("matchHeading(%q) = %v, want %v", tt.line, ok, tt.want)
		}
	}
}
