package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file] [job-description-file]",
	Short: "Analyze a resume against a job description using AI",
	Long: `Analyze how well a resume matches a job description using AI.
The command takes two arguments: the path to the resume file and the path
to the job description file. Both files should be in plain text format.
The result includes an ATS score, matched and missing keywords, and
improvement suggestions.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	analyzeAIConfig := cfg.GetAnalyzeConfig()
	analyzer, err := ai.NewAnalyzer(&analyzeAIConfig, cfg.Analysis, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI analyzer: %w", err)
	}
	defer func() { _ = analyzer.Close() }()

	logDetails := func(resumeText, jobDescription string, cmdCfg common.CommandConfig) {
		logger.Info("Starting AI resume analysis",
			"resume_chars", len(resumeText),
			"job_chars", len(jobDescription),
			"output_format", cmdCfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisResult, *ai.TokenUsage, error) {
		return analyzer.Analyze(ctx, resumeText, jobDescription)
	}

	err = common.RunResumeJobCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		args[1],
		cfg.Analysis.MinJobDescLen,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
