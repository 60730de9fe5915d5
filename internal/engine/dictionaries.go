package engine

import "resumetric/internal/types"

// Static lookup tables used across the engine. All of them are read-only
// after package initialization and safe for concurrent reads.

// stopWords are excluded from keyword extraction.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "he": true, "her": true, "his": true,
	"i": true, "in": true, "into": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "or": true, "our": true, "she": true, "that": true,
	"the": true, "their": true, "them": true, "they": true, "this": true,
	"to": true, "was": true, "we": true, "were": true, "will": true, "with": true,
	"you": true, "your": true, "my": true, "me": true, "us": true, "am": true,
	"do": true, "does": true, "did": true, "not": true, "no": true, "yes": true,
	"can": true, "could": true, "would": true, "should": true, "may": true,
	"also": true, "than": true, "then": true, "so": true, "such": true,
	"about": true, "after": true, "before": true, "between": true, "during": true,
	"each": true, "which": true, "while": true, "where": true, "when": true,
	"who": true, "whom": true, "what": true, "how": true, "all": true, "any": true,
	"both": true, "more": true, "most": true, "other": true, "some": true,
	"only": true, "own": true, "same": true, "very": true, "out": true, "up": true,
	"if": true, "etc": true, "eg": true, "ie": true,
}

// sectionHeadings maps heading phrases (lowercased) to canonical section names.
// Matching is substring based, so "professional experience" hits "experience".
var sectionHeadings = []struct {
	Phrase string
	Name   types.SectionName
}{
	{"work experience", types.SectionExperience},
	{"professional experience", types.SectionExperience},
	{"employment history", types.SectionExperience},
	{"career history", types.SectionExperience},
	{"experience", types.SectionExperience},
	{"employment", types.SectionExperience},
	{"academic background", types.SectionEducation},
	{"education", types.SectionEducation},
	{"qualifications", types.SectionEducation},
	{"technical skills", types.SectionSkills},
	{"core competencies", types.SectionSkills},
	{"competencies", types.SectionSkills},
	{"skills", types.SectionSkills},
	{"technologies", types.SectionSkills},
	{"expertise", types.SectionSkills},
	{"professional summary", types.SectionSummary},
	{"career summary", types.SectionSummary},
	{"summary", types.SectionSummary},
	{"objective", types.SectionSummary},
	{"profile", types.SectionSummary},
	{"about me", types.SectionSummary},
	{"contact information", types.SectionContact},
	{"contact", types.SectionContact},
	{"personal projects", types.SectionProjects},
	{"projects", types.SectionProjects},
	{"portfolio", types.SectionProjects},
	{"certifications", types.SectionCerts},
	{"certificates", types.SectionCerts},
	{"licenses", types.SectionCerts},
	{"awards", types.SectionOther},
	{"honors", types.SectionOther},
	{"publications", types.SectionOther},
	{"references", types.SectionOther},
	{"languages", types.SectionOther},
	{"volunteering", types.SectionOther},
	{"interests", types.SectionOther},
}

// technicalTerms is the curated high-value skill dictionary. Presence raises
// keyword importance and drives the technical category.
var technicalTerms = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"golang": true, "go": true, "rust": true, "c++": true, "c#": true,
	"ruby": true, "php": true, "swift": true, "kotlin": true, "scala": true,
	"sql": true, "nosql": true, "postgresql": true, "mysql": true,
	"mongodb": true, "redis": true, "elasticsearch": true, "kafka": true,
	"docker": true, "kubernetes": true, "terraform": true, "ansible": true,
	"aws": true, "azure": true, "gcp": true, "linux": true, "git": true,
	"react": true, "angular": true, "vue": true, "node.js": true, "nodejs": true,
	"django": true, "flask": true, "spring": true, "rails": true,
	"rest": true, "graphql": true, "grpc": true, "microservices": true,
	"ci/cd": true, "devops": true, "agile": true, "scrum": true, "kanban": true,
	"machine learning": true, "deep learning": true, "data science": true,
	"data analysis": true, "data engineering": true, "etl": true,
	"tensorflow": true, "pytorch": true, "pandas": true, "numpy": true,
	"tableau": true, "power bi": true, "excel": true, "spark": true,
	"hadoop": true, "airflow": true, "snowflake": true, "dbt": true,
	"html": true, "css": true, "sass": true, "webpack": true,
	"unit testing": true, "test automation": true, "selenium": true,
	"jira": true, "salesforce": true, "sap": true, "oracle": true,
	"seo": true, "sem": true, "google analytics": true, "crm": true,
	"financial modeling": true, "accounting": true, "forecasting": true,
	"project management": true, "product management": true,
	"ehr": true, "hipaa": true, "clinical research": true,
}

// softTerms categorize interpersonal keywords.
var softTerms = map[string]bool{
	"leadership": true, "communication": true, "collaboration": true,
	"teamwork": true, "mentoring": true, "mentorship": true,
	"problem solving": true, "critical thinking": true, "adaptability": true,
	"time management": true, "negotiation": true, "presentation": true,
	"stakeholder management": true, "public speaking": true,
	"conflict resolution": true, "decision making": true, "creativity": true,
}

// certificationTerms match to the certification category at top importance.
var certificationTerms = map[string]bool{
	"pmp": true, "cpa": true, "cfa": true, "cissp": true, "ccna": true,
	"ccnp": true, "comptia": true, "security+": true, "network+": true,
	"aws certified": true, "azure certified": true, "gcp certified": true,
	"cka": true, "ckad": true, "rhce": true, "itil": true, "six sigma": true,
	"scrum master": true, "csm": true, "safe": true, "prince2": true,
	"cpr": true, "acls": true, "rn": true, "pe": true, "series 7": true,
	"series 63": true, "cfp": true, "shrm": true, "phr": true,
}

// actionVerbs are strong openers for experience bullets.
var actionVerbs = map[string]bool{
	"achieved": true, "accelerated": true, "architected": true, "automated": true,
	"built": true, "championed": true, "created": true, "delivered": true,
	"designed": true, "developed": true, "directed": true, "drove": true,
	"engineered": true, "established": true, "executed": true, "expanded": true,
	"founded": true, "generated": true, "grew": true, "implemented": true,
	"improved": true, "increased": true, "initiated": true, "launched": true,
	"led": true, "managed": true, "mentored": true, "migrated": true,
	"modernized": true, "negotiated": true, "optimized": true, "orchestrated": true,
	"overhauled": true, "owned": true, "partnered": true, "pioneered": true,
	"produced": true, "reduced": true, "redesigned": true, "refactored": true,
	"resolved": true, "restructured": true, "scaled": true, "secured": true,
	"shipped": true, "spearheaded": true, "streamlined": true, "strengthened": true,
	"supervised": true, "transformed": true, "upgraded": true, "won": true,
}

// weakOpeners are passive or duty-style bullet openers that drag scores down.
var weakOpeners = map[string]bool{
	"responsible": true, "worked": true, "helped": true, "assisted": true,
	"duties": true, "tasked": true, "involved": true, "participated": true,
	"was": true, "were": true, "did": true, "handled": true, "used": true,
	"attended": true, "supported": true, "various": true,
}

// fillerWords thin out language-tone scores.
var fillerWords = map[string]bool{
	"very": true, "really": true, "just": true, "quite": true, "basically": true,
	"actually": true, "literally": true, "stuff": true, "things": true,
	"somewhat": true, "perhaps": true, "maybe": true, "nice": true,
	"great": true, "good": true, "many": true, "lots": true,
}

// buzzPhrases are resume cliches flagged by the tone check.
var buzzPhrases = []string{
	"team player", "hard worker", "go-getter", "think outside the box",
	"results-driven", "detail-oriented", "self-starter", "synergy",
	"best of breed", "go the extra mile", "proven track record",
}

// industryOrder fixes tie-break priority for the classifier.
var industryOrder = []string{
	"Technology", "Finance", "Healthcare", "Marketing", "Education", "General",
}

// industryKeywords back the classifier and the no-job-description baselines.
var industryKeywords = map[string][]string{
	"Technology": {
		"software", "engineer", "developer", "programming", "cloud", "api",
		"backend", "frontend", "database", "python", "java", "javascript",
		"devops", "kubernetes", "docker", "agile", "microservices", "sql",
		"machine learning", "infrastructure", "deployment", "architecture",
	},
	"Finance": {
		"financial", "accounting", "audit", "banking", "investment", "portfolio",
		"trading", "equity", "budget", "forecasting", "compliance", "risk",
		"valuation", "hedge", "asset", "revenue", "tax", "cpa", "cfa",
		"reconciliation", "treasury", "derivatives",
	},
	"Healthcare": {
		"patient", "clinical", "medical", "nursing", "hospital", "physician",
		"healthcare", "pharmacy", "diagnosis", "treatment", "hipaa", "ehr",
		"care", "therapy", "surgical", "laboratory", "triage", "oncology",
		"pediatric", "icu", "emr", "telehealth",
	},
	"Marketing": {
		"marketing", "brand", "campaign", "seo", "sem", "content", "social media",
		"advertising", "engagement", "conversion", "analytics", "copywriting",
		"email marketing", "audience", "funnel", "growth", "ppc", "crm",
		"market research", "positioning", "influencer", "retention",
	},
	"Education": {
		"teaching", "curriculum", "classroom", "students", "instruction",
		"lesson", "pedagogy", "assessment", "tutoring", "learning", "faculty",
		"academic", "literacy", "education", "k-12", "stem", "syllabus",
		"enrollment", "training", "mentoring", "professional development",
	},
}

// industryRecommendations are template suggestions keyed by industry and the
// sub-scores they address.
var industryRecommendations = map[string]map[string]string{
	"Technology": {
		"keyword":    "List concrete technologies (languages, frameworks, cloud platforms) that mirror the job posting",
		"actionVerb": "Open bullets with engineering verbs like built, automated, scaled, or migrated",
		"section":    "Add a dedicated Skills section grouping languages, tools, and platforms",
		"relevance":  "Mirror the stack named in the job description in your most recent role",
		"length":     "Keep the resume to one or two pages focused on recent, relevant work",
	},
	"Finance": {
		"keyword":    "Name regulations, instruments, and modeling tools relevant to the role",
		"actionVerb": "Lead bullets with quantified outcomes: reduced cost, grew revenue, managed portfolio",
		"section":    "Include certifications such as CPA or CFA in a dedicated section",
		"relevance":  "Quantify portfolio sizes, budgets, and deal values",
		"length":     "Keep descriptions tight; senior finance resumes rarely exceed two pages",
	},
	"Healthcare": {
		"keyword":    "Include credentials, specialties, and systems such as EHR or HIPAA compliance",
		"actionVerb": "Describe patient outcomes and care improvements with active verbs",
		"section":    "List licenses and certifications prominently near the top",
		"relevance":  "Highlight clinical settings that match the posting",
		"length":     "Summarize older rotations briefly to keep focus on recent practice",
	},
	"Marketing": {
		"keyword":    "Name channels, platforms, and metrics (CTR, CAC, ROAS) from the posting",
		"actionVerb": "Open with growth verbs: launched, grew, converted, positioned",
		"section":    "Add a campaign highlights or portfolio section",
		"relevance":  "Tie each role to audience growth or conversion outcomes",
		"length":     "Trim older roles to make room for measurable campaign results",
	},
	"Education": {
		"keyword":    "Reference curricula, grade levels, and instructional methods from the posting",
		"actionVerb": "Use verbs like designed, instructed, assessed, and mentored",
		"section":    "Include certifications and endorsements in their own section",
		"relevance":  "Align subject areas and age groups with the position",
		"length":     "Keep the resume concise; emphasize recent teaching outcomes",
	},
	"General": {
		"keyword":    "Work the job posting's own vocabulary into your experience bullets",
		"actionVerb": "Start every bullet with a strong action verb",
		"section":    "Cover the standard sections: summary, experience, education, skills",
		"relevance":  "Tailor the top third of the resume to the specific role",
		"length":     "Aim for roughly one page per decade of experience",
	},
}
