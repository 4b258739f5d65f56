package ai

import (
	stderrors "errors"
	"strings"
	"testing"

	"resumelens/internal/errors"
)

func TestNormalizeAnalysisResponseRecomputesScore(t *testing.T) {
	raw := `{
		"ats_score": 12,
		"score_breakdown": {"keywords": 80, "similarity": 90, "quality": 50},
		"matched_keywords": [{"keyword": "golang", "relevance": "high"}],
		"missing_keywords": [{"keyword": "terraform", "importance": "high"}],
		"suggestions": [{"type": "keyword", "title": "Add terraform", "description": "Mention terraform experience", "priority": "high", "section": "Skills"}]
	}`

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}

	// 0.6*80 + 0.3*90 + 0.1*50 = 80, plus the bonus for keywords > 50
	// and similarity > 75.
	if result.ATSScore != 85 {
		t.Errorf("ATSScore = %d, want 85 (model's own ats_score must be ignored)", result.ATSScore)
	}
	if result.ScoreBreakdown.Keywords != 80 || result.ScoreBreakdown.Similarity != 90 || result.ScoreBreakdown.Quality != 50 {
		t.Errorf("ScoreBreakdown = %+v, want keywords=80 similarity=90 quality=50", result.ScoreBreakdown)
	}
	if len(result.MatchedKeywords) != 1 || result.MatchedKeywords[0].Keyword != "golang" {
		t.Errorf("MatchedKeywords = %+v, want single golang entry", result.MatchedKeywords)
	}
	if len(result.MissingKeywords) != 1 || result.MissingKeywords[0].Keyword != "terraform" {
		t.Errorf("MissingKeywords = %+v, want single terraform entry", result.MissingKeywords)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0].Type != "keyword" {
		t.Errorf("Suggestions = %+v, want single keyword suggestion", result.Suggestions)
	}
}

func TestNormalizeAnalysisResponseCapsScore(t *testing.T) {
	raw := `{"score_breakdown": {"keywords": 100, "similarity": 100, "quality": 100}}`

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}
	if result.ATSScore != 100 {
		t.Errorf("ATSScore = %d, want 100 (bonus must not push past the cap)", result.ATSScore)
	}
}

func TestNormalizeAnalysisResponseNoBonus(t *testing.T) {
	// similarity <= 75, so no bonus applies
	raw := `{"score_breakdown": {"keywords": 80, "similarity": 70, "quality": 50}}`

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}
	// 0.6*80 + 0.3*70 + 0.1*50 = 74
	if result.ATSScore != 74 {
		t.Errorf("ATSScore = %d, want 74", result.ATSScore)
	}
}

func TestNormalizeAnalysisResponseProseWrappedJSON(t *testing.T) {
	raw := "Here is the analysis you asked for:\n```json\n" +
		`{"score_breakdown": {"keywords": 60, "similarity": 40, "quality": 20}}` +
		"\n```\nLet me know if you need anything else."

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}
	// 0.6*60 + 0.3*40 + 0.1*20 = 50
	if result.ATSScore != 50 {
		t.Errorf("ATSScore = %d, want 50", result.ATSScore)
	}
}

func TestNormalizeAnalysisResponseMissingScoresDefaultToZero(t *testing.T) {
	raw := `{"matched_keywords": []}`

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}
	if result.ATSScore != 0 {
		t.Errorf("ATSScore = %d, want 0 when no scores are present", result.ATSScore)
	}
}

func TestNormalizeAnalysisResponseMalformed(t *testing.T) {
	_, err := NormalizeAnalysisResponse("I could not analyze this resume, sorry.")
	if err == nil {
		t.Fatal("Expected error for response without JSON")
	}
	if !errors.IsMalformedResponse(err) {
		t.Errorf("Expected malformed response error, got %v", err)
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatal("Expected an AppError")
	}
	if _, ok := appErr.Context["raw_response"]; !ok {
		t.Error("Expected raw_response snippet in error context")
	}
}

func TestNormalizeAnalysisResponseSuggestionDefaults(t *testing.T) {
	raw := `{
		"score_breakdown": {"keywords": 10, "similarity": 10, "quality": 10},
		"suggestions": [{"title": "Tighten the summary"}, "not an object", 42]
	}`

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("Suggestions = %+v, want only the object entry kept", result.Suggestions)
	}

	s := result.Suggestions[0]
	if s.Title != "Tighten the summary" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Type != "content" || s.Priority != "medium" || s.Section != "Other" {
		t.Errorf("Suggestion defaults not applied: %+v", s)
	}
	if s.Description != "" {
		t.Errorf("Description = %q, want empty", s.Description)
	}
}

func TestNormalizeAnalysisResponseKeywordDefaults(t *testing.T) {
	raw := `{
		"score_breakdown": {"keywords": 10, "similarity": 10, "quality": 10},
		"matched_keywords": [{"keyword": "python"}, {"relevance": "high"}],
		"missing_keywords": [{"keyword": "aws"}, "docker"]
	}`

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		t.Fatalf("NormalizeAnalysisResponse() error = %v", err)
	}

	if len(result.MatchedKeywords) != 1 {
		t.Fatalf("MatchedKeywords = %+v, want entries without a keyword dropped", result.MatchedKeywords)
	}
	if result.MatchedKeywords[0].Relevance != "medium" {
		t.Errorf("Relevance = %q, want default medium", result.MatchedKeywords[0].Relevance)
	}

	if len(result.MissingKeywords) != 1 {
		t.Fatalf("MissingKeywords = %+v, want non-object entries dropped", result.MissingKeywords)
	}
	if result.MissingKeywords[0].Importance != "medium" {
		t.Errorf("Importance = %q, want default medium", result.MissingKeywords[0].Importance)
	}
}

func TestRecoverJSONObjectSnippetLimit(t *testing.T) {
	raw := strings.Repeat("x", rawSnippetLimit+200)

	_, err := recoverJSONObject(raw)
	if err == nil {
		t.Fatal("Expected error")
	}

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatal("Expected an AppError")
	}
	snippet, _ := appErr.Context["raw_response"].(string)
	if len(snippet) != rawSnippetLimit {
		t.Errorf("Snippet length = %d, want %d", len(snippet), rawSnippetLimit)
	}
}
