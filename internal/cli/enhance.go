package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/lexical"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [resume-file] [job-description-file]",
	Short: "Rewrite a resume to better target a job description",
	Long: `Rewrite a resume to better target a specific job description using AI.
The command first scores the resume lexically to find missing keywords and
weak areas, then asks the AI to rewrite the resume addressing them. If the
AI provider is unavailable the original resume is returned unchanged with
an error status.
The command takes two arguments: the path to the resume file and the path
to the job description file.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if enhanceConfig.OutputFormat == "" {
			enhanceConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(enhanceConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runEnhance,
}

var enhanceConfig common.CommandConfig

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	enhanceCmd.Flags().StringVar(&enhanceConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = enhanceCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runEnhance(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	enhanceAIConfig := cfg.GetEnhanceConfig()
	enhancer, err := ai.NewEnhancer(&enhanceAIConfig, cfg.Analysis, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI enhancer: %w", err)
	}
	defer func() { _ = enhancer.Close() }()

	scorer := lexical.NewScorer(cfg.Analysis.TopKeywords)

	logDetails := func(resumeText, jobDescription string, cmdCfg common.CommandConfig) {
		logger.Info("Starting resume enhancement",
			"resume_chars", len(resumeText),
			"job_chars", len(jobDescription),
			"output_format", cmdCfg.OutputFormat)
	}

	enhanceOperation := func(ctx context.Context, resumeText, jobDescription string) (*types.EnhancementResult, *ai.TokenUsage, error) {
		analysis, err := scorer.Analyze(resumeText, jobDescription)
		if err != nil {
			return nil, nil, err
		}
		result, tokenUsage := enhancer.Enhance(ctx, resumeText, jobDescription, analysis)
		if result.Status != "success" {
			logger.Warn("Enhancement unavailable, returning original resume")
		}
		return result, tokenUsage, nil
	}

	err = common.RunResumeJobCommand(
		cmd.Context(),
		logger,
		enhanceConfig,
		args[0],
		args[1],
		cfg.Analysis.MinJobDescLen,
		enhanceOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to enhance resume: %w", err)
	}
	logger.Info("Resume enhancement completed")
	return nil
}
