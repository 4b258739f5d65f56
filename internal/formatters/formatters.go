package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "EnhancementResult", &EnhancementTextFormatter{})
	registry.RegisterFormatter("markdown", "EnhancementResult", &EnhancementMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult, *types.AnalysisResult:
		return "AnalysisResult"
	case types.EnhancementResult, *types.EnhancementResult:
		return "EnhancementResult"
	default:
		return "any"
	}
}

// asAnalysisResult accepts both value and pointer results, since CLI
// operations return pointers.
func asAnalysisResult(data any) (types.AnalysisResult, bool) {
	switch v := data.(type) {
	case types.AnalysisResult:
		return v, true
	case *types.AnalysisResult:
		if v != nil {
			return *v, true
		}
	}
	return types.AnalysisResult{}, false
}

func asEnhancementResult(data any) (types.EnhancementResult, bool) {
	switch v := data.(type) {
	case types.EnhancementResult:
		return v, true
	case *types.EnhancementResult:
		if v != nil {
			return *v, true
		}
	}
	return types.EnhancementResult{}, false
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := asAnalysisResult(data)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("ATS Score: %d/100\n\n", result.ATSScore))

	output.WriteString("Score Breakdown:\n")
	output.WriteString(fmt.Sprintf("  Keywords:   %.1f\n", result.ScoreBreakdown.Keywords))
	output.WriteString(fmt.Sprintf("  Similarity: %.1f\n", result.ScoreBreakdown.Similarity))
	output.WriteString(fmt.Sprintf("  Quality:    %.1f\n", result.ScoreBreakdown.Quality))
	output.WriteString("\n")

	if len(result.MatchedKeywords) > 0 {
		output.WriteString("=== MATCHED KEYWORDS ===\n")
		for _, kw := range result.MatchedKeywords {
			output.WriteString(fmt.Sprintf("- %s (relevance: %s)\n", kw.Keyword, kw.Relevance))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("=== MISSING KEYWORDS ===\n")
		for _, kw := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- %s (importance: %s)\n", kw.Keyword, kw.Importance))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. [%s] %s (%s)\n", i+1, suggestion.Priority, suggestion.Title, suggestion.Section))
			if suggestion.Description != "" {
				output.WriteString("   ")
				output.WriteString(suggestion.Description)
				output.WriteString("\n")
			}
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asAnalysisResult(data)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Analysis\n\n")
	output.WriteString(fmt.Sprintf("**ATS Score:** %d/100\n\n", result.ATSScore))

	output.WriteString("## Score Breakdown\n\n")
	output.WriteString(fmt.Sprintf("| Keywords | Similarity | Quality |\n|---|---|---|\n| %.1f | %.1f | %.1f |\n\n",
		result.ScoreBreakdown.Keywords, result.ScoreBreakdown.Similarity, result.ScoreBreakdown.Quality))

	if len(result.MatchedKeywords) > 0 {
		output.WriteString("## Matched Keywords\n\n")
		for _, kw := range result.MatchedKeywords {
			output.WriteString(fmt.Sprintf("- **%s** (relevance: %s)\n", kw.Keyword, kw.Relevance))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("## Missing Keywords\n\n")
		for _, kw := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("- **%s** (importance: %s)\n", kw.Keyword, kw.Importance))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, suggestion.Title))
			output.WriteString(fmt.Sprintf("**Priority:** %s | **Section:** %s | **Type:** %s\n\n",
				suggestion.Priority, suggestion.Section, suggestion.Type))
			if suggestion.Description != "" {
				output.WriteString(suggestion.Description)
				output.WriteString("\n\n")
			}
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// EnhancementTextFormatter handles text formatting for enhancement results
type EnhancementTextFormatter struct{}

func (etf *EnhancementTextFormatter) Format(data any) (string, error) {
	result, ok := asEnhancementResult(data)
	if !ok {
		return "", fmt.Errorf("expected EnhancementResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ENHANCED RESUME ===\n\n")
	output.WriteString(result.EnhancedResume)
	output.WriteString("\n\n")

	output.WriteString(fmt.Sprintf("Status: %s\n\n", result.Status))

	if len(result.ChangesMade) > 0 {
		output.WriteString("=== CHANGES MADE ===\n")
		for i, change := range result.ChangesMade {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, change))
		}
	} else {
		output.WriteString("No changes reported.\n")
	}

	return output.String(), nil
}

func (etf *EnhancementTextFormatter) SupportedType() string {
	return "EnhancementResult"
}

// EnhancementMarkdownFormatter handles markdown formatting for enhancement results
type EnhancementMarkdownFormatter struct{}

func (emf *EnhancementMarkdownFormatter) Format(data any) (string, error) {
	result, ok := asEnhancementResult(data)
	if !ok {
		return "", fmt.Errorf("expected EnhancementResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Enhanced Resume\n\n")
	output.WriteString(result.EnhancedResume)
	output.WriteString("\n\n")

	output.WriteString(fmt.Sprintf("**Status:** %s\n\n", result.Status))

	if len(result.ChangesMade) > 0 {
		output.WriteString("## Changes Made\n\n")
		for i, change := range result.ChangesMade {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, change))
		}
	} else {
		output.WriteString("## No Changes Reported\n")
	}

	return output.String(), nil
}

func (emf *EnhancementMarkdownFormatter) SupportedType() string {
	return "EnhancementResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
