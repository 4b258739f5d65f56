package ai

import (
	"context"
	"fmt"
	"strings"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Enhancer rewrites a resume to better match a job description, guided by a
// prior analysis. Enhancement is best-effort: when the provider fails, the
// caller gets the original resume back with an error status instead of an
// error. A degraded rewrite is worse than no rewrite, but losing the resume
// text is worse than both.
type Enhancer struct {
	service  *Service
	config   *config.OperationAIConfig
	analysis config.AnalysisConfig
	logger   *errors.Logger
}

// NewEnhancer creates an Enhancer backed by the configured provider
func NewEnhancer(cfg *config.OperationAIConfig, analysisCfg config.AnalysisConfig, logger *errors.Logger) (*Enhancer, error) {
	service, err := NewService(cfg, "enhance", logger)
	if err != nil {
		return nil, err
	}

	return &Enhancer{
		service:  service,
		config:   cfg,
		analysis: analysisCfg,
		logger:   logger,
	}, nil
}

// Enhance rewrites resumeText guided by analysis. It never returns an error:
// provider failures yield an "error" status with the original resume
// unmodified and an empty change list.
func (e *Enhancer) Enhance(ctx context.Context, resumeText, jobDescription string, analysis *types.AnalysisResult) (*types.EnhancementResult, *TokenUsage) {
	userPrompt := e.buildPrompt(resumeText, jobDescription, analysis)
	systemPrompt := enhanceSystemPrompt(e.config)

	raw, tokenUsage, err := e.service.Provider.GenerateText(ctx, "enhance_resume", systemPrompt, userPrompt)
	if err != nil {
		e.logger.LogError(err, "Resume enhancement failed, returning original resume")
		return &types.EnhancementResult{
			Status:         "error",
			EnhancedResume: resumeText,
			ChangesMade:    []string{},
		}, tokenUsage
	}

	enhanced := strings.TrimSpace(raw)
	if enhanced == "" {
		e.logger.Warn("Enhancement produced empty output, returning original resume")
		return &types.EnhancementResult{
			Status:         "error",
			EnhancedResume: resumeText,
			ChangesMade:    []string{},
		}, tokenUsage
	}

	return &types.EnhancementResult{
		Status:         "success",
		EnhancedResume: enhanced,
		ChangesMade:    diffChanges(resumeText, enhanced),
	}, tokenUsage
}

// buildPrompt renders the enhancement prompt from the analysis result
func (e *Enhancer) buildPrompt(resumeText, jobDescription string, analysis *types.AnalysisResult) string {
	resume := truncateForPrompt(resumeText, e.analysis.MaxPromptChars)
	job := truncateForPrompt(jobDescription, e.analysis.MaxPromptChars)

	return fmt.Sprintf(enhanceUserPrompt(e.config),
		analysis.ATSScore,
		formatMissingKeywords(analysis.MissingKeywords),
		formatMatchedKeywords(analysis.MatchedKeywords),
		formatSuggestions(analysis.Suggestions),
		job,
		resume,
	)
}

// GetModelInfo reports the availability of the underlying model
func (e *Enhancer) GetModelInfo(ctx context.Context) *ModelInfo {
	return e.service.GetModelInfo(ctx)
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (e *Enhancer) GetCircuitBreakerStats() map[string]any {
	return e.service.GetCircuitBreakerStats()
}

// Close releases provider resources
func (e *Enhancer) Close() error {
	return e.service.Close()
}

func formatMissingKeywords(missing []types.MissingKeyword) string {
	if len(missing) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(missing))
	for _, mk := range missing {
		lines = append(lines, fmt.Sprintf("- %s (importance: %s)", mk.Keyword, mk.Importance))
	}
	return strings.Join(lines, "\n")
}

func formatMatchedKeywords(matched []types.MatchedKeyword) string {
	if len(matched) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(matched))
	for _, mk := range matched {
		lines = append(lines, "- "+mk.Keyword)
	}
	return strings.Join(lines, "\n")
}

func formatSuggestions(suggestions []types.Suggestion) string {
	if len(suggestions) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		line := fmt.Sprintf("- [%s] %s (%s)", s.Priority, s.Title, s.Section)
		if s.Description != "" {
			line += ": " + s.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
