package lexical

import (
	"fmt"
	"math"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// minActionVerbs is the threshold below which the scorer suggests adding
// action verbs to the resume.
const minActionVerbs = 5

// maxSuggestedKeywords caps how many missing keywords a suggestion lists.
const maxSuggestedKeywords = 5

// Scorer produces AnalysisResults from resume and job-description text using
// keyword overlap and TF-IDF similarity only. It performs no network calls.
type Scorer struct {
	topKeywords int
}

// NewScorer returns a Scorer extracting up to topKeywords terms per document.
// A non-positive value selects DefaultTopKeywords.
func NewScorer(topKeywords int) *Scorer {
	if topKeywords <= 0 {
		topKeywords = DefaultTopKeywords
	}
	return &Scorer{topKeywords: topKeywords}
}

// Analyze scores resumeText against jobDescription. Keyword membership uses
// set semantics: repeated terms count once, and ordering follows the job
// description's keyword ranking.
func (s *Scorer) Analyze(resumeText, jobDescription string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, errors.NewInvalidInputError("resume text is empty", nil)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.NewInvalidInputError("job description is empty", nil)
	}

	resumeKeywords, err := ExtractKeywords(resumeText, s.topKeywords)
	if err != nil {
		return nil, err
	}
	jdKeywords, err := ExtractKeywords(jobDescription, s.topKeywords)
	if err != nil {
		return nil, err
	}

	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[kw] = struct{}{}
	}

	matched := make([]types.MatchedKeyword, 0, len(jdKeywords))
	missing := make([]types.MissingKeyword, 0, len(jdKeywords))
	for _, kw := range jdKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, types.MatchedKeyword{Keyword: kw, Relevance: "high"})
		} else {
			missing = append(missing, types.MissingKeyword{Keyword: kw, Importance: "high"})
		}
	}

	similarity, err := Similarity(resumeText, jobDescription)
	if err != nil {
		return nil, err
	}
	atsScore := int(math.Round(100 * similarity))

	keywordScore := 0.0
	if len(jdKeywords) > 0 {
		keywordScore = 100 * float64(len(matched)) / float64(len(jdKeywords))
	}

	suggestions, err := s.buildSuggestions(resumeText, missing)
	if err != nil {
		return nil, err
	}

	return &types.AnalysisResult{
		ATSScore: atsScore,
		ScoreBreakdown: types.ScoreBreakdown{
			Keywords:   keywordScore,
			Similarity: float64(atsScore),
		},
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     suggestions,
	}, nil
}

func (s *Scorer) buildSuggestions(resumeText string, missing []types.MissingKeyword) ([]types.Suggestion, error) {
	suggestions := make([]types.Suggestion, 0, 2)

	if len(missing) > 0 {
		listed := make([]string, 0, maxSuggestedKeywords)
		for _, mk := range missing {
			if len(listed) == maxSuggestedKeywords {
				break
			}
			listed = append(listed, mk.Keyword)
		}
		suggestions = append(suggestions, types.Suggestion{
			Type:        "keyword",
			Title:       "Add missing keywords",
			Description: fmt.Sprintf("Consider adding these keywords from the job description: %s", strings.Join(listed, ", ")),
			Priority:    "high",
			Section:     "Skills/Experience",
		})
	}

	verbCount, err := CountActionVerbs(resumeText)
	if err != nil {
		return nil, err
	}
	if verbCount < minActionVerbs {
		suggestions = append(suggestions, types.Suggestion{
			Type:        "content",
			Title:       "Add more action verbs",
			Description: "Use strong action verbs like 'developed', 'implemented', 'led' to describe your achievements",
			Priority:    "medium",
			Section:     "Experience",
		})
	}

	return suggestions, nil
}
