package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	loadedPromptsMu.Lock()
	defer loadedPromptsMu.Unlock()

	fresh := AllLoadedPrompts{}

	// Load global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &fresh.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &fresh.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Load operation-specific prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.Analyze.CustomPrompts.SystemPrompts, &fresh.Analyze.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load analyze system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Analyze.CustomPrompts.UserPrompts, &fresh.Analyze.UserPrompts); err != nil {
		return fmt.Errorf("failed to load analyze user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.Enhance.CustomPrompts.SystemPrompts, &fresh.Enhance.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load enhance system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Enhance.CustomPrompts.UserPrompts, &fresh.Enhance.UserPrompts); err != nil {
		return fmt.Errorf("failed to load enhance user prompts: %w", err)
	}

	loadedPrompts = fresh
	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	if prompts.AnalyzeResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.AnalyzeResumeFile, "system", "analyzeResume")
		if err != nil {
			return err
		}
		target.AnalyzeResume = content
	}

	if prompts.EnhanceResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.EnhanceResumeFile, "system", "enhanceResume")
		if err != nil {
			return err
		}
		target.EnhanceResume = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	if prompts.AnalyzeResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.AnalyzeResumeFile, "user", "analyzeResume")
		if err != nil {
			return err
		}
		target.AnalyzeResume = content
	}

	if prompts.EnhanceResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.EnhanceResumeFile, "user", "enhanceResume")
		if err != nil {
			return err
		}
		target.EnhanceResume = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	return trimmedContent, nil
}

// promptFilePaths collects every configured prompt file path
func (c *Config) promptFilePaths() []string {
	candidates := []string{
		c.AI.CustomPrompts.SystemPrompts.AnalyzeResumeFile,
		c.AI.CustomPrompts.SystemPrompts.EnhanceResumeFile,
		c.AI.CustomPrompts.UserPrompts.AnalyzeResumeFile,
		c.AI.CustomPrompts.UserPrompts.EnhanceResumeFile,
		c.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResumeFile,
		c.AI.Analyze.CustomPrompts.UserPrompts.AnalyzeResumeFile,
		c.AI.Enhance.CustomPrompts.SystemPrompts.EnhanceResumeFile,
		c.AI.Enhance.CustomPrompts.UserPrompts.EnhanceResumeFile,
	}

	var paths []string
	seen := make(map[string]struct{})
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}
	return paths
}

// validatePromptFiles validates that prompt files exist before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	for _, filePath := range c.promptFilePaths() {
		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid prompt file path: %s", filePath))
			continue
		}
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("prompt file not found: %s", absPath))
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}
