package ai

import (
	"encoding/json"
	"math"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// rawSnippetLimit caps how much of an unparseable response is attached to the
// error for diagnostics.
const rawSnippetLimit = 500

// Score weights applied when recomputing the ATS score from the model's
// component scores.
const (
	keywordWeight    = 0.6
	similarityWeight = 0.3
	qualityWeight    = 0.1
)

// NormalizeAnalysisResponse recovers a structured AnalysisResult from raw
// model output. The model responds without a schema constraint, so the text
// may wrap the JSON payload in prose or markdown fences. The ATS score is
// always recomputed server-side from the component scores rather than trusted
// from the model.
func NormalizeAnalysisResponse(raw string) (*types.AnalysisResult, error) {
	payload, err := recoverJSONObject(raw)
	if err != nil {
		return nil, err
	}

	k, s, q := componentScores(payload)

	weighted := keywordWeight*k + similarityWeight*s + qualityWeight*q
	// Bonus for resumes that clear both keyword and similarity bars.
	if k > 50 && s > 75 {
		weighted += 5
	}
	ats := int(math.Round(weighted))
	if ats > 100 {
		ats = 100
	}

	return &types.AnalysisResult{
		ATSScore: ats,
		ScoreBreakdown: types.ScoreBreakdown{
			Keywords:   k,
			Similarity: s,
			Quality:    q,
		},
		MatchedKeywords: matchedKeywords(payload["matched_keywords"]),
		MissingKeywords: missingKeywords(payload["missing_keywords"]),
		Suggestions:     normalizeSuggestions(payload["suggestions"]),
	}, nil
}

// recoverJSONObject extracts a JSON object from raw text. It first tries the
// substring between the outermost braces, then the whole text.
func recoverJSONObject(raw string) (map[string]any, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start >= 0 && end > start {
		var payload map[string]any
		if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err == nil {
			return payload, nil
		}
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		return payload, nil
	}

	snippet := raw
	if len(snippet) > rawSnippetLimit {
		snippet = snippet[:rawSnippetLimit]
	}
	return nil, errors.NewMalformedResponseError("AI response does not contain a parseable JSON object", snippet, nil)
}

// componentScores pulls the keyword, similarity, and quality scores out of the
// score_breakdown object. Missing or non-numeric values default to zero.
func componentScores(payload map[string]any) (float64, float64, float64) {
	breakdown, _ := payload["score_breakdown"].(map[string]any)
	return numberOrZero(breakdown["keywords"]),
		numberOrZero(breakdown["similarity"]),
		numberOrZero(breakdown["quality"])
}

func numberOrZero(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func stringOr(value any, fallback string) string {
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return fallback
}

func matchedKeywords(value any) []types.MatchedKeyword {
	entries, _ := value.([]any)
	result := make([]types.MatchedKeyword, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		keyword := stringOr(obj["keyword"], "")
		if keyword == "" {
			continue
		}
		result = append(result, types.MatchedKeyword{
			Keyword:   keyword,
			Relevance: stringOr(obj["relevance"], "medium"),
		})
	}
	return result
}

func missingKeywords(value any) []types.MissingKeyword {
	entries, _ := value.([]any)
	result := make([]types.MissingKeyword, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		keyword := stringOr(obj["keyword"], "")
		if keyword == "" {
			continue
		}
		result = append(result, types.MissingKeyword{
			Keyword:    keyword,
			Importance: stringOr(obj["importance"], "medium"),
		})
	}
	return result
}

// normalizeSuggestions fills in defaults for partial suggestion objects and
// silently drops entries that are not objects at all.
func normalizeSuggestions(value any) []types.Suggestion {
	entries, _ := value.([]any)
	result := make([]types.Suggestion, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, types.Suggestion{
			Type:        stringOr(obj["type"], "content"),
			Title:       stringOr(obj["title"], "Suggestion"),
			Description: stringOr(obj["description"], ""),
			Priority:    stringOr(obj["priority"], "medium"),
			Section:     stringOr(obj["section"], "Other"),
		})
	}
	return result
}
