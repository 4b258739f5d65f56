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

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume against a job description without AI",
	Long: `Score how well a resume matches a job description using fast lexical
analysis. No AI provider or API key is required: the score is computed from
keyword overlap and TF-IDF cosine similarity between the two documents.
The command takes two arguments: the path to the resume file and the path
to the job description file.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scorer := lexical.NewScorer(cfg.Analysis.TopKeywords)

	logDetails := func(resumeText, jobDescription string, cmdCfg common.CommandConfig) {
		logger.Info("Starting lexical resume scoring",
			"resume_chars", len(resumeText),
			"job_chars", len(jobDescription),
			"output_format", cmdCfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisResult, *ai.TokenUsage, error) {
		result, err := scorer.Analyze(resumeText, jobDescription)
		return result, nil, err
	}

	err := common.RunResumeJobCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args[0],
		args[1],
		cfg.Analysis.MinJobDescLen,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
