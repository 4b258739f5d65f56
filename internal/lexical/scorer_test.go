package lexical

import (
	"strings"
	"testing"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

const scorerTestResume = `Senior software engineer with golang and kubernetes experience.
Developed microservices, implemented pipelines, led migrations, built tooling,
optimized deployments, and mentored engineers.`

const scorerTestJD = `We are hiring a senior software engineer. The role requires
golang, kubernetes, and terraform experience. The engineer will design
microservices and terraform modules.`

func TestScorerAnalyze(t *testing.T) {
	scorer := NewScorer(0)
	result, err := scorer.Analyze(scorerTestResume, scorerTestJD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ATSScore < 0 || result.ATSScore > 100 {
		t.Errorf("ats_score out of range: %d", result.ATSScore)
	}
	if result.ScoreBreakdown.Similarity != float64(result.ATSScore) {
		t.Errorf("similarity breakdown %v should equal ats_score %d",
			result.ScoreBreakdown.Similarity, result.ATSScore)
	}
	if result.ScoreBreakdown.Keywords < 0 || result.ScoreBreakdown.Keywords > 100 {
		t.Errorf("keyword breakdown out of range: %v", result.ScoreBreakdown.Keywords)
	}

	matched := make(map[string]bool)
	for _, mk := range result.MatchedKeywords {
		matched[mk.Keyword] = true
		if mk.Relevance != "high" {
			t.Errorf("matched keyword %q has relevance %q, want high", mk.Keyword, mk.Relevance)
		}
	}
	for _, kw := range []string{"golang", "kubernetes"} {
		if !matched[kw] {
			t.Errorf("expected %q in matched keywords", kw)
		}
	}

	missing := make(map[string]bool)
	for _, mk := range result.MissingKeywords {
		missing[mk.Keyword] = true
		if matched[mk.Keyword] {
			t.Errorf("keyword %q appears as both matched and missing", mk.Keyword)
		}
		if mk.Importance != "high" {
			t.Errorf("missing keyword %q has importance %q, want high", mk.Keyword, mk.Importance)
		}
	}
	if !missing["terraform"] {
		t.Error("expected terraform in missing keywords")
	}
}

func TestScorerMissingKeywordSuggestion(t *testing.T) {
	scorer := NewScorer(0)
	result, err := scorer.Analyze(
		"developed implemented led built managed golang services",
		"we need golang terraform kubernetes docker ansible prometheus grafana experience",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var keywordSuggestion *string
	for i, s := range result.Suggestions {
		if s.Type == "keyword" {
			keywordSuggestion = &result.Suggestions[i].Description
			if s.Priority != "high" {
				t.Errorf("keyword suggestion priority = %q, want high", s.Priority)
			}
			if s.Section != "Skills/Experience" {
				t.Errorf("keyword suggestion section = %q, want Skills/Experience", s.Section)
			}
		}
	}
	if keywordSuggestion == nil {
		t.Fatal("expected a keyword suggestion when keywords are missing")
	}
	// At most five keywords listed in the description.
	listed := strings.Split(strings.SplitN(*keywordSuggestion, ": ", 2)[1], ", ")
	if len(listed) > 5 {
		t.Errorf("suggestion lists %d keywords, want at most 5", len(listed))
	}
}

func TestScorerActionVerbSuggestion(t *testing.T) {
	scorer := NewScorer(0)

	// Fewer than five action verbs triggers the content suggestion.
	weak, err := scorer.Analyze(
		"responsible for golang terraform kubernetes docker ansible things",
		"golang terraform kubernetes docker ansible",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasSuggestionType(weak.Suggestions, "content") {
		t.Error("expected an action verb suggestion for a weak resume")
	}

	strong, err := scorer.Analyze(scorerTestResume, scorerTestJD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasSuggestionType(strong.Suggestions, "content") {
		t.Error("did not expect an action verb suggestion for a verb-rich resume")
	}
}

func TestScorerRejectsEmptyInput(t *testing.T) {
	scorer := NewScorer(0)

	if _, err := scorer.Analyze("   ", scorerTestJD); !errors.IsInvalidInput(err) {
		t.Errorf("empty resume should be rejected, got %v", err)
	}
	if _, err := scorer.Analyze(scorerTestResume, ""); !errors.IsInvalidInput(err) {
		t.Errorf("empty job description should be rejected, got %v", err)
	}
}

func TestScorerIdenticalTexts(t *testing.T) {
	scorer := NewScorer(0)
	result, err := scorer.Analyze(scorerTestResume, scorerTestResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ATSScore != 100 {
		t.Errorf("identical texts should score 100, got %d", result.ATSScore)
	}
	if len(result.MissingKeywords) != 0 {
		t.Errorf("identical texts should have no missing keywords, got %v", result.MissingKeywords)
	}
}

func hasSuggestionType(suggestions []types.Suggestion, typ string) bool {
	for _, s := range suggestions {
		if s.Type == typ {
			return true
		}
	}
	return false
}
