// Package types contains shared domain types for resume analysis and
// enhancement results exchanged between the core, the CLI, and the server.
package types

// ScoreBreakdown carries the component scores that feed the final ATS score.
type ScoreBreakdown struct {
	Keywords   float64 `json:"keywords"`
	Similarity float64 `json:"similarity"`
	Quality    float64 `json:"quality"`
}

// MatchedKeyword is a job-description term found in the resume.
type MatchedKeyword struct {
	Keyword   string `json:"keyword"`
	Relevance string `json:"relevance"`
}

// MissingKeyword is a job-description term absent from the resume.
type MissingKeyword struct {
	Keyword    string `json:"keyword"`
	Importance string `json:"importance"`
}

// Suggestion is a single actionable improvement for the resume.
type Suggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Section     string `json:"section"`
}

// AnalysisResult is the canonical output of both the lexical scorer and the
// generative analyzer.
type AnalysisResult struct {
	ATSScore        int              `json:"ats_score"`
	ScoreBreakdown  ScoreBreakdown   `json:"score_breakdown"`
	MatchedKeywords []MatchedKeyword `json:"matched_keywords"`
	MissingKeywords []MissingKeyword `json:"missing_keywords"`
	Suggestions     []Suggestion     `json:"suggestions"`
}

// EnhancementResult is the output of the resume enhancer. Status is "success"
// when the provider produced a rewrite and "error" when the original resume is
// returned unmodified.
type EnhancementResult struct {
	Status         string   `json:"status"`
	EnhancedResume string   `json:"enhanced_resume"`
	ChangesMade    []string `json:"changes_made"`
}
