package ai

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// fakeProvider is an in-memory AIProvider for exercising the operation
// layers without a network dependency.
type fakeProvider struct {
	output string
	usage  *TokenUsage
	err    error

	lastOperation  string
	lastUserPrompt string
}

func (f *fakeProvider) GenerateText(ctx context.Context, operation, systemPrompt, userPrompt string) (string, *TokenUsage, error) {
	f.lastOperation = operation
	f.lastUserPrompt = userPrompt
	return f.output, f.usage, f.err
}

func (f *fakeProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	return &ModelInfo{Name: "fake", Available: true}
}

func (f *fakeProvider) GetCircuitBreakerStats() map[string]any {
	return map[string]any{}
}

func (f *fakeProvider) Close() error { return nil }

func newTestEnhancer(t *testing.T, provider AIProvider) *Enhancer {
	t.Helper()
	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	cfg := &config.OperationAIConfig{}
	return &Enhancer{
		service:  &Service{Provider: provider, config: cfg, logger: logger},
		config:   cfg,
		analysis: config.AnalysisConfig{MaxPromptChars: 4000},
		logger:   logger,
	}
}

func TestEnhanceProviderFailureReturnsOriginalResume(t *testing.T) {
	resume := "John Doe\nSoftware Engineer with Go experience"
	provider := &fakeProvider{err: stderrors.New("upstream unavailable")}
	enhancer := newTestEnhancer(t, provider)

	result, _ := enhancer.Enhance(context.Background(), resume, "Go developer role", &types.AnalysisResult{ATSScore: 40})

	if result.Status != "error" {
		t.Errorf("Status = %q, want %q", result.Status, "error")
	}
	if result.EnhancedResume != resume {
		t.Errorf("EnhancedResume = %q, want original resume unchanged", result.EnhancedResume)
	}
	if result.ChangesMade == nil || len(result.ChangesMade) != 0 {
		t.Errorf("ChangesMade = %v, want empty non-nil slice", result.ChangesMade)
	}
}

func TestEnhanceEmptyOutputReturnsOriginalResume(t *testing.T) {
	resume := "John Doe\nSoftware Engineer"
	provider := &fakeProvider{output: "   \n\t  "}
	enhancer := newTestEnhancer(t, provider)

	result, _ := enhancer.Enhance(context.Background(), resume, "Go developer role", &types.AnalysisResult{})

	if result.Status != "error" {
		t.Errorf("Status = %q, want %q", result.Status, "error")
	}
	if result.EnhancedResume != resume {
		t.Errorf("EnhancedResume = %q, want original resume unchanged", result.EnhancedResume)
	}
	if len(result.ChangesMade) != 0 {
		t.Errorf("ChangesMade = %v, want empty", result.ChangesMade)
	}
}

func TestEnhanceSuccessReportsChanges(t *testing.T) {
	resume := "John Doe\nSoftware Engineer"
	enhanced := "John Doe\nSoftware Engineer\nLed Kubernetes migration for the platform team\n"
	usage := &TokenUsage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150}
	provider := &fakeProvider{output: enhanced, usage: usage}
	enhancer := newTestEnhancer(t, provider)

	analysis := &types.AnalysisResult{
		ATSScore:        55,
		MissingKeywords: []types.MissingKeyword{{Keyword: "kubernetes", Importance: "high"}},
	}
	result, tokenUsage := enhancer.Enhance(context.Background(), resume, "Platform engineer role", analysis)

	if result.Status != "success" {
		t.Fatalf("Status = %q, want %q", result.Status, "success")
	}
	if result.EnhancedResume != strings.TrimSpace(enhanced) {
		t.Errorf("EnhancedResume = %q, want trimmed provider output", result.EnhancedResume)
	}
	if len(result.ChangesMade) != 1 || !strings.Contains(result.ChangesMade[0], "kubernetes migration") {
		t.Errorf("ChangesMade = %v, want the added line reported", result.ChangesMade)
	}
	if tokenUsage != usage {
		t.Errorf("tokenUsage = %v, want provider usage passed through", tokenUsage)
	}
	if provider.lastOperation != "enhance_resume" {
		t.Errorf("operation = %q, want %q", provider.lastOperation, "enhance_resume")
	}
	if !strings.Contains(provider.lastUserPrompt, "kubernetes") {
		t.Errorf("user prompt does not mention the missing keyword:\n%s", provider.lastUserPrompt)
	}
}
