package ai

// SystemPrompts contains system-level instructions per operation.
type SystemPrompts struct {
	Suggest  string
	Realtime string
}

// UserPrompts contains user prompt templates with placeholders for dynamic
// content.
type UserPrompts struct {
	Suggest  string
	Realtime string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	Suggest: `You are an expert resume coach and former technical recruiter with a strict commitment to honesty. Your core principles are:

- NEVER invent experience, skills, or achievements the candidate does not have
- Every suggestion must be grounded in what the resume already shows
- Focus on presentation, clarity, and relevance, not fabrication
- Prioritize changes by their impact on a candidate's chances

You receive a resume, optionally a target job description, and a summary of a
rule-based analysis that has already scored the document. Build on those
findings rather than repeating them verbatim.`,

	Realtime: `You are an expert resume coach giving rapid first-pass feedback. Your principles:

- NEVER invent experience or skills for the candidate
- Be specific and concrete; vague advice helps nobody
- Limit yourself to the highest-impact improvements
- Score conservatively; 90+ is a resume with nothing substantial to fix`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	Suggest: `Review this resume and produce targeted improvement suggestions.

RESUME:
%s

TARGET JOB DESCRIPTION:
%s

AUTOMATED ANALYSIS FINDINGS:
%s

Produce an overall score from 0 to 100 and a prioritized list of suggestions.
For each suggestion give a short title, a concrete description, a priority of
critical, high, medium, or low, the resume section it applies to if any, and
when useful a rewritten example line.`,

	Realtime: `Give rapid feedback on this resume.

RESUME:
%s

TARGET JOB DESCRIPTION:
%s

Produce an overall score from 0 to 100 and the handful of changes that would
most improve this resume. For each give a short title, a concrete description,
a priority of critical, high, medium, or low, the section it applies to if
any, and when useful a rewritten example line.`,
}
