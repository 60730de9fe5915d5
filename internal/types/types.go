package types

// FileType identifies the original format of an uploaded resume. The engine
// receives plain text regardless; the type only informs ATS checks.
type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeDOCX  FileType = "docx"
	FileTypeTXT   FileType = "txt"
	FileTypeOther FileType = "other"
)

// ResumeDocument is the immutable input value for a single analysis request.
type ResumeDocument struct {
	RawText  string   `json:"rawText"`
	FileType FileType `json:"fileType"`
	FileName string   `json:"fileName"`
}

// JobDescription is the optional job posting a resume is scored against.
type JobDescription struct {
	RawText string `json:"rawText"`
}

// SectionName is the canonical name of a structural resume region.
type SectionName string

const (
	SectionContact    SectionName = "Contact"
	SectionSummary    SectionName = "Summary"
	SectionExperience SectionName = "Experience"
	SectionEducation  SectionName = "Education"
	SectionSkills     SectionName = "Skills"
	SectionProjects   SectionName = "Projects"
	SectionCerts      SectionName = "Certifications"
	SectionOther      SectionName = "Other"
)

// Section is a named region of the resume text. Sections produced by the
// segmenter are ordered, non-overlapping, and together cover the full input.
type Section struct {
	Name        SectionName `json:"name"`
	Content     string      `json:"content"`
	StartOffset int         `json:"startOffset"`
	EndOffset   int         `json:"endOffset"`
	Score       int         `json:"score,omitempty"`
}

// KeywordCategory classifies an extracted keyword.
type KeywordCategory string

const (
	CategoryTechnical     KeywordCategory = "technical"
	CategorySoft          KeywordCategory = "soft"
	CategoryCertification KeywordCategory = "certification"
	CategoryGeneral       KeywordCategory = "general"
)

// KeywordSource records which text(s) a keyword was observed in.
type KeywordSource string

const (
	SourceResume KeywordSource = "resume"
	SourceJob    KeywordSource = "jobDescription"
	SourceBoth   KeywordSource = "both"
)

// Keyword is a normalized term extracted from the resume and/or job
// description. Keys are unique on NormalizedText+Source.
type Keyword struct {
	Text                 string          `json:"text"`
	NormalizedText       string          `json:"normalizedText"`
	Count                int             `json:"count"`
	IsFromJobDescription bool            `json:"isFromJobDescription"`
	IsMatch              bool            `json:"isMatch"`
	Category             KeywordCategory `json:"category"`
	Importance           int             `json:"importance"` // 1-5
	Source               KeywordSource   `json:"source"`
}

// Severity ranks how urgently an issue should be addressed.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Issue is a single point deduction or structural problem found by a scorer
// or the ATS checker, with an actionable suggestion.
type Issue struct {
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	LineNumber  int      `json:"lineNumber,omitempty"`
	Suggestion  string   `json:"suggestion"`
}

// SubScore is one scored dimension of resume quality.
type SubScore struct {
	Name   string  `json:"name"`
	Value  int     `json:"value"`  // clamped to [0,100]
	Weight float64 `json:"weight"` // 0-1, composite share
	Issues []Issue `json:"issues"`
}

// ATSIssue is a failed ATS compatibility check.
type ATSIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Impact      int    `json:"impact"` // points deducted, always > 0
	Solution    string `json:"solution"`
}

// ATSReport is the result of the ATS compatibility rule engine.
// Score == max(0, 100 - sum of failed check impacts).
type ATSReport struct {
	Score        int        `json:"score"`
	Issues       []ATSIssue `json:"issues"`
	PassedChecks []string   `json:"passedChecks"`
}

// AISuggestion is a single improvement produced by the AI provider.
type AISuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // critical, high, medium, low
	Section     string `json:"section,omitempty"`
	Example     string `json:"example,omitempty"`
}

// RealtimeResult is the AI-only fast path output.
type RealtimeResult struct {
	AISuggestions []AISuggestion `json:"aiSuggestions"`
	AIScore       int            `json:"aiScore"`
}

// IndustryMatch is the industry classifier output.
type IndustryMatch struct {
	Industry        string   `json:"industry"`
	Score           int      `json:"industryScore"`
	Recommendations []string `json:"industryRecommendations"`
}

// AnalysisResult is the aggregate returned to callers. It is constructed once
// per request and never mutated afterwards; callers own persistence. Field
// names are part of the stored JSON contract - renames break consumers.
type AnalysisResult struct {
	ATSScore          int    `json:"atsScore"`
	KeywordScore      int    `json:"keywordScore"`
	GrammarScore      int    `json:"grammarScore"`
	FormattingScore   int    `json:"formattingScore"`
	SectionScore      int    `json:"sectionScore"`
	ActionVerbScore   int    `json:"actionVerbScore"`
	RelevanceScore    int    `json:"relevanceScore"`
	BulletPointScore  int    `json:"bulletPointScore"`
	LanguageToneScore int    `json:"languageToneScore"`
	LengthScore       int    `json:"lengthScore"`
	TotalScore        int    `json:"totalScore"`

	Suggestions    string  `json:"suggestions"`
	SuggestionList []Issue `json:"suggestionList"`

	AISuggestions []AISuggestion `json:"aiSuggestions,omitempty"`
	AIScore       *int           `json:"aiScore,omitempty"`

	Industry                string   `json:"industry"`
	IndustryScore           int      `json:"industryScore"`
	IndustryRecommendations []string `json:"industryRecommendations"`

	ATSDetails ATSReport `json:"atsDetails"`
	Keywords   []Keyword `json:"keywords"`
	Sections   []Section `json:"sections"`
	Issues     []Issue   `json:"issues"`
}
