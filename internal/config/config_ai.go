package config

import "fmt"

// ValidateAICredentials checks that every LLM-backed operation has an API key
// resolved, after all fallbacks and Vault secrets have been applied. Callers
// that expose LLM-backed operations run this at startup so a missing
// credential fails immediately instead of on the first request.
func (c *Config) ValidateAICredentials() error {
	if c.GetAnalyzeConfig().APIKey == "" {
		return fmt.Errorf("no API key configured for analyze operations (set ai.apiKey, GEMINI_API_KEY, or a Vault secret)")
	}
	if c.GetEnhanceConfig().APIKey == "" {
		return fmt.Errorf("no API key configured for enhance operations (set ai.apiKey, GEMINI_API_KEY, or a Vault secret)")
	}
	return nil
}

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetAnalyzeConfig returns the AI configuration for analyze operations with fallback to global config
func (c *Config) GetAnalyzeConfig() OperationAIConfig {
	config := c.AI.Analyze

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply analyze-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AnalyzeResume == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeResume = c.AI.CustomPrompts.SystemPrompts.AnalyzeResume
	}
	if config.CustomPrompts.UserPrompts.AnalyzeResume == "" {
		config.CustomPrompts.UserPrompts.AnalyzeResume = c.AI.CustomPrompts.UserPrompts.AnalyzeResume
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AnalyzeResumeFile == "" {
		config.CustomPrompts.SystemPrompts.AnalyzeResumeFile = c.AI.CustomPrompts.SystemPrompts.AnalyzeResumeFile
	}
	if config.CustomPrompts.UserPrompts.AnalyzeResumeFile == "" {
		config.CustomPrompts.UserPrompts.AnalyzeResumeFile = c.AI.CustomPrompts.UserPrompts.AnalyzeResumeFile
	}

	return config
}

// GetEnhanceConfig returns the AI configuration for enhance operations with fallback to global config
func (c *Config) GetEnhanceConfig() OperationAIConfig {
	config := c.AI.Enhance

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply enhance-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.EnhanceResume == "" {
		config.CustomPrompts.SystemPrompts.EnhanceResume = c.AI.CustomPrompts.SystemPrompts.EnhanceResume
	}
	if config.CustomPrompts.UserPrompts.EnhanceResume == "" {
		config.CustomPrompts.UserPrompts.EnhanceResume = c.AI.CustomPrompts.UserPrompts.EnhanceResume
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.EnhanceResumeFile == "" {
		config.CustomPrompts.SystemPrompts.EnhanceResumeFile = c.AI.CustomPrompts.SystemPrompts.EnhanceResumeFile
	}
	if config.CustomPrompts.UserPrompts.EnhanceResumeFile == "" {
		config.CustomPrompts.UserPrompts.EnhanceResumeFile = c.AI.CustomPrompts.UserPrompts.EnhanceResumeFile
	}

	return config
}

// GetLoadedAnalyzePrompts returns a copy of the loaded prompts for analyze operation
func (c *Config) GetLoadedAnalyzePrompts() OperationLoadedPrompts {
	return getLoadedPromptsCopy().Analyze
}

// GetLoadedEnhancePrompts returns a copy of the loaded prompts for enhance operation
func (c *Config) GetLoadedEnhancePrompts() OperationLoadedPrompts {
	return getLoadedPromptsCopy().Enhance
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return getLoadedPromptsCopy().Global
}
