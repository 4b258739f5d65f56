package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat validates format against configured supported formats
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil // No restrictions configured
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}

// ValidateAnalysisInput checks the resume and job description texts before an
// analysis or enhancement run. The job description has a minimum length so
// keyword extraction has something to work with.
func ValidateAnalysisInput(resumeText, jobDescription string, minJobDescLen int) error {
	if strings.TrimSpace(resumeText) == "" {
		return fmt.Errorf("resume text cannot be empty")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("job description cannot be empty")
	}
	if len(jobDescription) < minJobDescLen {
		return fmt.Errorf("job description must be at least %d characters, got %d",
			minJobDescLen, len(jobDescription))
	}
	return nil
}
