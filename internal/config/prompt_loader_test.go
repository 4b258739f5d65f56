package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPromptsFromFiles(t *testing.T) {
	tempDir := t.TempDir()

	systemPromptContent := "Test system prompt for analysis"
	userPromptContent := "Test user prompt template: %s and %s"

	systemPromptFile := filepath.Join(tempDir, "system.analyze.md")
	userPromptFile := filepath.Join(tempDir, "user.analyze.md")

	if err := os.WriteFile(systemPromptFile, []byte(systemPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test system prompt file: %v", err)
	}
	if err := os.WriteFile(userPromptFile, []byte(userPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test user prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Analyze: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						AnalyzeResumeFile: systemPromptFile,
					},
					UserPrompts: UserPrompts{
						AnalyzeResumeFile: userPromptFile,
					},
				},
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	loaded := GetPromptsForOperation("analyze")

	if loaded.SystemPrompts.AnalyzeResume != systemPromptContent {
		t.Errorf("Loaded system prompt = %q, want %q",
			loaded.SystemPrompts.AnalyzeResume, systemPromptContent)
	}
	if loaded.UserPrompts.AnalyzeResume != userPromptContent {
		t.Errorf("Loaded user prompt = %q, want %q",
			loaded.UserPrompts.AnalyzeResume, userPromptContent)
	}

	// File paths must be preserved so the watcher can reload them
	if config.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResumeFile != systemPromptFile {
		t.Error("Expected system prompt file path to be preserved")
	}
}

func TestLoadPromptsFromFilesOperationIsolation(t *testing.T) {
	tempDir := t.TempDir()

	enhanceFile := filepath.Join(tempDir, "system.enhance.md")
	if err := os.WriteFile(enhanceFile, []byte("Enhance instructions"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Enhance: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						EnhanceResumeFile: enhanceFile,
					},
				},
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	if got := GetPromptsForOperation("enhance").SystemPrompts.EnhanceResume; got != "Enhance instructions" {
		t.Errorf("Enhance system prompt = %q", got)
	}
	if got := GetPromptsForOperation("analyze").SystemPrompts.EnhanceResume; got != "" {
		t.Errorf("Analyze prompts should not pick up enhance file content, got %q", got)
	}
}

func TestValidatePromptFiles(t *testing.T) {
	tempDir := t.TempDir()

	validFile := filepath.Join(tempDir, "valid.md")
	if err := os.WriteFile(validFile, []byte("Valid content"), 0600); err != nil {
		t.Fatalf("Failed to create valid test file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Analyze: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						AnalyzeResumeFile: validFile,
					},
				},
			},
		},
	}

	if err := config.validatePromptFiles(); err != nil {
		t.Errorf("Expected validation to pass for valid file, got error: %v", err)
	}

	config.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResumeFile = filepath.Join(tempDir, "nonexistent.md")
	if err := config.validatePromptFiles(); err == nil {
		t.Error("Expected validation to fail for non-existent file")
	}
}

func TestLoadPromptFromFile(t *testing.T) {
	tempDir := t.TempDir()
	config := &Config{}

	content := "Test prompt content"
	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte("  "+content+"\n\n"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	loaded, err := config.loadPromptFromFile(testFile, "system", "analyzeResume")
	if err != nil {
		t.Fatalf("loadPromptFromFile() error = %v", err)
	}
	if loaded != content {
		t.Errorf("Loaded content = %q, want trimmed %q", loaded, content)
	}

	emptyFile := filepath.Join(tempDir, "empty.md")
	if err := os.WriteFile(emptyFile, []byte("   \n"), 0600); err != nil {
		t.Fatalf("Failed to create empty test file: %v", err)
	}
	if _, err := config.loadPromptFromFile(emptyFile, "user", "analyzeResume"); err == nil {
		t.Error("Expected error for whitespace-only prompt file")
	}

	if _, err := config.loadPromptFromFile(filepath.Join(tempDir, "missing.md"), "user", "analyzeResume"); err == nil {
		t.Error("Expected error for missing prompt file")
	}
}
