package cli

import (
	"context"
	"fmt"

	"resumetric/internal/ai"
	"resumetric/internal/common"
	"resumetric/internal/config"
	"resumetric/internal/types"

	"github.com/spf13/cobra"
)

var realtimeCmd = &cobra.Command{
	Use:   "realtime [resume-file] [job-description-file]",
	Short: "Get fast AI feedback on a resume draft",
	Long: `Run the rapid AI feedback pass on a resume draft. This skips the full
deterministic pipeline and asks the model for a quick score and a handful of
high-impact suggestions, which makes it suitable for editor integrations
that call it on every save.

Requires a configured AI API key.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if realtimeConfig.OutputFormat == "" {
			realtimeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(realtimeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRealtime,
}

var realtimeConfig common.CommandConfig

func init() {
	realtimeCmd.Flags().StringVarP(&realtimeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	realtimeCmd.Flags().StringVar(&realtimeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = realtimeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

type realtimeInput struct {
	Resume string
	Job    string
}

func runRealtime(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	if !cfg.HasAIKey() {
		return fmt.Errorf("realtime feedback requires an AI API key (set ai.apiKey or GEMINI_API_KEY)")
	}

	// Create AI service for the realtime operation
	realtimeAIConfig := cfg.GetRealtimeConfig()
	aiService, err := ai.NewService(&realtimeAIConfig, config.OperationRealtime, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (realtimeInput, error) {
		if len(contents) == 0 {
			return realtimeInput{}, fmt.Errorf("expected at least 1 file path, got %d", len(contents))
		}
		input := realtimeInput{Resume: contents[0]}
		if len(contents) > 1 {
			input.Job = contents[1]
		}
		return input, nil
	}

	logDetails := func(input realtimeInput, cfg common.CommandConfig) {
		logger.Info("Starting realtime feedback",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.Job),
			"output_format", cfg.OutputFormat)
	}

	realtimeOperation := func(ctx context.Context, input realtimeInput) (*types.RealtimeResult, error) {
		return aiService.Realtime(ctx, input.Resume, input.Job)
	}

	err = common.RunCommand(
		cmd.Context(),
		logger,
		realtimeConfig,
		args,
		createInput,
		realtimeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to get realtime feedback: %w", err)
	}
	logger.Info("Realtime feedback completed successfully")
	return nil
}
