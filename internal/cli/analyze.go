package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"resumetric/internal/ai"
	"resumetric/internal/common"
	"resumetric/internal/config"
	"resumetric/internal/engine"
	"resumetric/internal/errors"
	"resumetric/internal/types"
	"resumetric/internal/utils"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file] [job-description-file]",
	Short: "Analyze a resume and score it across all dimensions",
	Long: `Analyze a resume with the deterministic scoring pipeline. When a job
description file is provided, keyword matching and relevance scoring compare
the resume against it; otherwise both fall back to an industry baseline.

The analysis includes:
- Weighted dimension scores (keywords, grammar, formatting, sections,
  action verbs, relevance, bullets, length)
- ATS compatibility report with concrete fixes
- Industry classification and targeted recommendations
- Prioritized, deduplicated suggestions
- Optional AI-generated suggestions when an API key is configured`,
	Args: cobra.RangeArgs(1, 2),
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

var (
	analyzeConfig common.CommandConfig
	analyzeNoAI   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().BoolVar(&analyzeNoAI, "no-ai", false, "Skip AI suggestions even when an API key is configured")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// engineTunables resolves the analysis tunables: config values first, then
// overrides from the tunables file when one is configured. A broken tunables
// file is logged and ignored so a one-shot analysis still runs.
func engineTunables(cfg *config.Config, logger *errors.Logger) engine.Tunables {
	tun := engine.Tunables{
		MinWords:          cfg.Analysis.MinWords,
		MaxWords:          cfg.Analysis.MaxWords,
		TopSuggestions:    cfg.Analysis.TopSuggestions,
		IndustryThreshold: cfg.Analysis.IndustryThreshold,
	}
	if cfg.Analysis.TunablesFile == "" {
		return tun
	}
	tf, err := config.ReadTunablesFile(cfg.Analysis.TunablesFile)
	if err != nil {
		logger.Warn("Ignoring unreadable tunables file",
			"file", cfg.Analysis.TunablesFile,
			"error", err)
		return tun
	}
	return applyTunablesFile(tun, tf)
}

// applyTunablesFile overlays the non-zero fields of a tunables file onto the
// current tunables.
func applyTunablesFile(tun engine.Tunables, tf config.TunablesFile) engine.Tunables {
	if tf.MinWords > 0 {
		tun.MinWords = tf.MinWords
	}
	if tf.MaxWords > 0 {
		tun.MaxWords = tf.MaxWords
	}
	if tf.TopSuggestions > 0 {
		tun.TopSuggestions = tf.TopSuggestions
	}
	if tf.IndustryThreshold > 0 {
		tun.IndustryThreshold = tf.IndustryThreshold
	}
	return tun
}

// buildEngine assembles the analysis engine, attaching the AI suggester only
// when a key is configured and AI was not disabled for this invocation.
func buildEngine(cfg *config.Config, logger *errors.Logger, withAI bool) *engine.Engine {
	opts := []engine.Option{engine.WithTunables(engineTunables(cfg, logger))}
	if withAI && cfg.HasAIKey() {
		suggestCfg := cfg.GetSuggestConfig()
		aiService, err := ai.NewService(&suggestCfg, config.OperationSuggest, logger)
		if err != nil {
			logger.Warn("AI suggestions unavailable, continuing without them", "error", err)
		} else {
			opts = append(opts, engine.WithSuggester(aiService))
		}
	}
	return engine.New(logger, opts...)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	eng := buildEngine(cfg, logger, !analyzeNoAI)

	createInput := func(contents []string) (engine.AnalyzeInput, error) {
		if len(contents) == 0 {
			return engine.AnalyzeInput{}, fmt.Errorf("expected at least 1 file path, got %d", len(contents))
		}
		input := engine.AnalyzeInput{
			Resume: types.ResumeDocument{
				RawText:  contents[0],
				FileType: utils.FileTypeFromPath(args[0]),
				FileName: filepath.Base(args[0]),
			},
		}
		if len(contents) > 1 {
			input.Job = &types.JobDescription{RawText: contents[1]}
		}
		return input, nil
	}

	logDetails := func(input engine.AnalyzeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.Resume.RawText),
			"job_provided", input.Job != nil,
			"file_type", input.Resume.FileType,
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input engine.AnalyzeInput) (*types.AnalysisResult, error) {
		return eng.Analyze(ctx, input)
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
