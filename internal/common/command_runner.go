package common

import (
	"context"
	"fmt"
	"os"

	"resumelens/internal/ai"
	"resumelens/internal/errors"
)

// ResumeJobOperation is the signature shared by analysis and enhancement
// operations: both take a resume and a job description and report token usage.
type ResumeJobOperation[Output any] func(ctx context.Context, resumeText, jobDescription string) (Output, *ai.TokenUsage, error)

// LogDetailsFunc logs the start of an operation once inputs are loaded.
type LogDetailsFunc func(resumeText, jobDescription string, cfg CommandConfig)

// RunResumeJobCommand encapsulates the common logic for CLI commands that read
// a resume file and a job description file, run an operation, and write the
// formatted result.
func RunResumeJobCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	resumeFile, jobFile string,
	minJobDescLen int,
	operation ResumeJobOperation[Output],
	logDetails LogDetailsFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	resumeText, jobDescription, err := fileProcessor.ReadResumeAndJob(resumeFile, jobFile)
	if err != nil {
		return err
	}

	if err := ValidateAnalysisInput(resumeText, jobDescription, minJobDescLen); err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest, err.Error(), nil)
	}

	if logDetails != nil {
		logDetails(resumeText, jobDescription, cmdConfig)
	}

	result, tokenUsage, err := operation(ctx, resumeText, jobDescription)
	if err != nil {
		return err
	}

	// Report token usage
	if tokenUsage != nil {
		if logger != nil {
			logger.Info("AI token usage", "input_tokens", tokenUsage.InputTokens, "output_tokens", tokenUsage.OutputTokens, "total_tokens", tokenUsage.TotalTokens)
		} else {
			fmt.Fprintf(os.Stderr, "AI token usage: input=%d, output=%d, total=%d\n", tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
		}
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
