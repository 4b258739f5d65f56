package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
		expectedError    string
	}{
		{
			name:             "valid format - json",
			format:           "json",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      false,
		},
		{
			name:             "valid format - markdown",
			format:           "markdown",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      false,
		},
		{
			name:             "invalid format - xml",
			format:           "xml",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      true,
			expectedError:    "unsupported output format 'xml'. Supported formats: [json text markdown]",
		},
		{
			name:             "case sensitive - JSON uppercase",
			format:           "JSON",
			supportedFormats: []string{"json", "text", "markdown"},
			expectError:      true,
			expectedError:    "unsupported output format 'JSON'. Supported formats: [json text markdown]",
		},
		{
			name:             "empty supported formats - should allow all",
			format:           "xml",
			supportedFormats: []string{},
			expectError:      false,
		},
		{
			name:             "single supported format - invalid",
			format:           "text",
			supportedFormats: []string{"json"},
			expectError:      true,
			expectedError:    "unsupported output format 'text'. Supported formats: [json]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
					return
				}
				if tt.expectedError != "" && err.Error() != tt.expectedError {
					t.Errorf("Expected error '%s', got '%s'", tt.expectedError, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error but got: %v", err)
				}
			}
		})
	}
}

func TestValidateAnalysisInput(t *testing.T) {
	validJob := strings.Repeat("We are hiring a Go engineer. ", 3)

	tests := []struct {
		name           string
		resumeText     string
		jobDescription string
		minJobDescLen  int
		expectError    bool
	}{
		{
			name:           "valid inputs",
			resumeText:     "Experienced Go developer",
			jobDescription: validJob,
			minJobDescLen:  50,
			expectError:    false,
		},
		{
			name:           "empty resume",
			resumeText:     "",
			jobDescription: validJob,
			minJobDescLen:  50,
			expectError:    true,
		},
		{
			name:           "whitespace only resume",
			resumeText:     "   \n\t  ",
			jobDescription: validJob,
			minJobDescLen:  50,
			expectError:    true,
		},
		{
			name:           "empty job description",
			resumeText:     "Experienced Go developer",
			jobDescription: "",
			minJobDescLen:  50,
			expectError:    true,
		},
		{
			name:           "job description too short",
			resumeText:     "Experienced Go developer",
			jobDescription: "Go engineer wanted",
			minJobDescLen:  50,
			expectError:    true,
		},
		{
			name:           "no minimum length configured",
			resumeText:     "Experienced Go developer",
			jobDescription: "Go engineer wanted",
			minJobDescLen:  0,
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnalysisInput(tt.resumeText, tt.jobDescription, tt.minJobDescLen)

			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func BenchmarkValidateOutputFormat(b *testing.B) {
	supportedFormats := []string{"json", "text", "markdown"}

	b.Run("valid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("json", supportedFormats)
		}
	})

	b.Run("invalid format", func(b *testing.B) {
		for b.Loop() {
			_ = ValidateOutputFormat("xml", supportedFormats)
		}
	})
}
