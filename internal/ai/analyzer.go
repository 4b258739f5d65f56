package ai

import (
	"context"
	"fmt"
	"strings"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Analyzer scores a resume against a job description using a generative
// model. Unlike the lexical scorer, it judges semantic fit and content
// quality, at the cost of a network round trip per request.
type Analyzer struct {
	service  *Service
	config   *config.OperationAIConfig
	analysis config.AnalysisConfig
	logger   *errors.Logger
}

// NewAnalyzer creates an Analyzer backed by the configured provider
func NewAnalyzer(cfg *config.OperationAIConfig, analysisCfg config.AnalysisConfig, logger *errors.Logger) (*Analyzer, error) {
	service, err := NewService(cfg, "analyze", logger)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		service:  service,
		config:   cfg,
		analysis: analysisCfg,
		logger:   logger,
	}, nil
}

// Analyze runs a generative analysis of resumeText against jobDescription.
// Provider failures surface as errors; there is no silent fallback here, the
// caller decides whether to degrade to the lexical path.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisResult, *TokenUsage, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, nil, errors.NewInvalidInputError("resume text is empty", nil)
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, nil, errors.NewInvalidInputError("job description is empty", nil)
	}

	resume := truncateForPrompt(resumeText, a.analysis.MaxPromptChars)
	job := truncateForPrompt(jobDescription, a.analysis.MaxPromptChars)

	userPrompt := fmt.Sprintf(analyzeUserPrompt(a.config), resume, job)
	systemPrompt := analyzeSystemPrompt(a.config)

	raw, tokenUsage, err := a.service.Provider.GenerateText(ctx, "analyze_resume", systemPrompt, userPrompt)
	if err != nil {
		return nil, nil, err
	}

	result, err := NormalizeAnalysisResponse(raw)
	if err != nil {
		a.logger.LogError(err, "Failed to normalize analysis response",
			"response_length", len(raw))
		return nil, tokenUsage, err
	}

	return result, tokenUsage, nil
}

// GetModelInfo reports the availability of the underlying model
func (a *Analyzer) GetModelInfo(ctx context.Context) *ModelInfo {
	return a.service.GetModelInfo(ctx)
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (a *Analyzer) GetCircuitBreakerStats() map[string]any {
	return a.service.GetCircuitBreakerStats()
}

// Close releases provider resources
func (a *Analyzer) Close() error {
	return a.service.Close()
}

// truncateForPrompt caps text at maxChars characters. Both documents are
// truncated the same way so neither dominates the prompt budget.
func truncateForPrompt(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
