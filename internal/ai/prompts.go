package ai

import "resumelens/internal/config"

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	AnalyzeResume string
	EnhanceResume string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	AnalyzeResume string
	EnhanceResume string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	AnalyzeResume: `You are an expert ATS (Applicant Tracking System) analyst and resume reviewer. Your core principles are:

- Provide honest, data-driven analysis grounded in the supplied documents
- Score consistently: the same resume and job description must always yield the same assessment
- Focus on the substance of requirements, not boilerplate
- Respond only with the requested JSON structure, never with commentary

Your expertise includes:
- ATS scoring and keyword matching
- Resume structure and content quality assessment
- Recruitment and HR best practices`,

	EnhanceResume: `You are an expert resume writer with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills or experiences
- Every piece of information must be directly traceable to the original resume
- Preserve the candidate's voice while optimizing for relevance
- Weave in keywords naturally, never as bare lists`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	AnalyzeResume: `Please analyze the provided resume against the job description and produce an ATS compatibility assessment.

**Scoring:**

Compute an overall ATS score from 0 to 100 as a weighted combination:
- 60%% keyword match: how well the resume covers the skills, technologies, and qualifications the job description asks for
- 30%% semantic similarity: how closely the resume's experience aligns with the role's responsibilities
- 10%% quality: resume structure, clarity, and use of measurable achievements

Interpret the overall score on this scale:
- 90-100: excellent match
- 75-89: strong match
- 60-74: good match
- 40-59: fair match
- below 40: poor match

Ignore sections of the job description about company culture, benefits, or perks; score only against the actual requirements.

**Suggestions:**

Provide 3 to 5 specific, actionable suggestions. Each suggestion's "type" must be one of: "keyword", "content", "format", "structure".

**Response format:**

Respond ONLY with a JSON object in exactly this structure:
{
  "ats_score": <integer 0-100>,
  "score_breakdown": {
    "keywords": <number 0-100>,
    "similarity": <number 0-100>,
    "quality": <number 0-100>
  },
  "matched_keywords": [{"keyword": "<term>", "relevance": "<high|medium|low>"}],
  "missing_keywords": [{"keyword": "<term>", "importance": "<high|medium|low>"}],
  "suggestions": [{"type": "<keyword|content|format|structure>", "title": "<short title>", "description": "<what to do>", "priority": "<high|medium|low>", "section": "<resume section>"}]
}

**Resume:**
-----
%s
-----

**Job Description:**
-----
%s
-----`,

	EnhanceResume: `Please rewrite the provided resume to improve its match against the job description, guided by the analysis below.

**Current analysis:**

ATS score: %d

Missing keywords (with importance):
%s

Matched keywords already present:
%s

Improvement suggestions:
%s

**Requirements:**

1. Preserve the resume's overall structure, all dates, and all contact information exactly as given.
2. Naturally incorporate the missing keywords where the candidate's real experience supports them.
3. Address the improvement suggestions above.
4. Do NOT fabricate skills, experiences, metrics, or qualifications that are not in the original resume.
5. Prioritize changes to the experience and skills sections.

Return ONLY the rewritten resume text, with no introduction, explanation, or markdown fences.

**Job Description:**
-----
%s
-----

**Resume:**
-----
%s
-----`,
}

// resolvePrompt selects the correct prompt string based on priority order:
// 1. A prompt loaded from a file (hot-reloadable).
// 2. A prompt defined directly in the configuration.
// 3. The hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}

// analyzeSystemPrompt returns the system prompt for the analyze operation
func analyzeSystemPrompt(cfg *config.OperationAIConfig) string {
	loaded := config.GetPromptsForOperation("analyze")
	return resolvePrompt(
		loaded.SystemPrompts.AnalyzeResume,
		cfg.CustomPrompts.SystemPrompts.AnalyzeResume,
		DefaultSystemPrompts.AnalyzeResume,
	)
}

// analyzeUserPrompt returns the user prompt template for the analyze operation
func analyzeUserPrompt(cfg *config.OperationAIConfig) string {
	loaded := config.GetPromptsForOperation("analyze")
	return resolvePrompt(
		loaded.UserPrompts.AnalyzeResume,
		cfg.CustomPrompts.UserPrompts.AnalyzeResume,
		DefaultUserPrompts.AnalyzeResume,
	)
}

// enhanceSystemPrompt returns the system prompt for the enhance operation
func enhanceSystemPrompt(cfg *config.OperationAIConfig) string {
	loaded := config.GetPromptsForOperation("enhance")
	return resolvePrompt(
		loaded.SystemPrompts.EnhanceResume,
		cfg.CustomPrompts.SystemPrompts.EnhanceResume,
		DefaultSystemPrompts.EnhanceResume,
	)
}

// enhanceUserPrompt returns the user prompt template for the enhance operation
func enhanceUserPrompt(cfg *config.OperationAIConfig) string {
	loaded := config.GetPromptsForOperation("enhance")
	return resolvePrompt(
		loaded.UserPrompts.EnhanceResume,
		cfg.CustomPrompts.UserPrompts.EnhanceResume,
		DefaultUserPrompts.EnhanceResume,
	)
}
