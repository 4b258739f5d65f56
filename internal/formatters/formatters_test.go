package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"resumelens/internal/types"
)

func sampleAnalysis() types.AnalysisResult {
	return types.AnalysisResult{
		ATSScore: 72,
		ScoreBreakdown: types.ScoreBreakdown{
			Keywords:   60,
			Similarity: 72,
			Quality:    0,
		},
		MatchedKeywords: []types.MatchedKeyword{
			{Keyword: "golang", Relevance: "high"},
		},
		MissingKeywords: []types.MissingKeyword{
			{Keyword: "terraform", Importance: "high"},
		},
		Suggestions: []types.Suggestion{
			{
				Type:        "keyword",
				Title:       "Add missing keywords",
				Description: "Consider adding these keywords from the job description: terraform",
				Priority:    "high",
				Section:     "Skills/Experience",
			},
		},
	}
}

func TestJSONFormatterAnalysis(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleAnalysis(), "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["ats_score"] != float64(72) {
		t.Errorf("ats_score = %v, want 72", decoded["ats_score"])
	}
	if _, ok := decoded["score_breakdown"]; !ok {
		t.Error("Expected score_breakdown key in JSON output")
	}
}

func TestTextFormatterAnalysis(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleAnalysis(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{"ATS Score: 72/100", "golang", "terraform", "Add missing keywords"} {
		if !strings.Contains(output, want) {
			t.Errorf("Text output missing %q", want)
		}
	}
}

func TestMarkdownFormatterAnalysis(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleAnalysis(), "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(output, "# ATS Analysis") {
		t.Error("Markdown output missing top-level heading")
	}
	if !strings.Contains(output, "**ATS Score:** 72/100") {
		t.Error("Markdown output missing score line")
	}
}

func TestEnhancementFormatters(t *testing.T) {
	result := types.EnhancementResult{
		Status:         "success",
		EnhancedResume: "Senior Engineer\nDeployed services with terraform",
		ChangesMade:    []string{"deployed services with terraform"},
	}

	registry := NewFormatterRegistry()

	text, err := registry.Format(result, "text")
	if err != nil {
		t.Fatalf("Format(text) error = %v", err)
	}
	if !strings.Contains(text, "Status: success") || !strings.Contains(text, "CHANGES MADE") {
		t.Errorf("Text output missing status or changes section:\n%s", text)
	}

	md, err := registry.Format(result, "markdown")
	if err != nil {
		t.Fatalf("Format(markdown) error = %v", err)
	}
	if !strings.Contains(md, "# Enhanced Resume") || !strings.Contains(md, "## Changes Made") {
		t.Errorf("Markdown output missing headings:\n%s", md)
	}
}

func TestFormatPointerResults(t *testing.T) {
	// CLI operations hand pointer results to the registry; they must dispatch
	// to the same formatters as values.
	registry := NewFormatterRegistry()

	analysis := sampleAnalysis()
	for _, format := range []string{"text", "markdown", "json"} {
		fromPtr, err := registry.Format(&analysis, format)
		if err != nil {
			t.Fatalf("Format(pointer, %s) error = %v", format, err)
		}
		fromValue, err := registry.Format(analysis, format)
		if err != nil {
			t.Fatalf("Format(value, %s) error = %v", format, err)
		}
		if fromPtr != fromValue {
			t.Errorf("Format(%s): pointer and value outputs differ", format)
		}
	}

	enhancement := &types.EnhancementResult{
		Status:         "error",
		EnhancedResume: "original text",
		ChangesMade:    []string{},
	}
	text, err := registry.Format(enhancement, "text")
	if err != nil {
		t.Fatalf("Format(*EnhancementResult, text) error = %v", err)
	}
	if !strings.Contains(text, "Status: error") || !strings.Contains(text, "No changes reported") {
		t.Errorf("Unexpected text output:\n%s", text)
	}
	if _, err := registry.Format(enhancement, "markdown"); err != nil {
		t.Fatalf("Format(*EnhancementResult, markdown) error = %v", err)
	}
}

func TestFormatNilPointer(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format((*types.AnalysisResult)(nil), "text"); err == nil {
		t.Error("Expected error for nil analysis result")
	}
	if _, err := registry.Format((*types.EnhancementResult)(nil), "markdown"); err == nil {
		t.Error("Expected error for nil enhancement result")
	}
}

func TestUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(sampleAnalysis(), "yaml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestJSONFallbackForUnknownType(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(map[string]string{"hello": "world"}, "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(output, `"hello": "world"`) {
		t.Errorf("Unexpected JSON output: %s", output)
	}
}
