package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/video-summarizer/internal/config"
	"github.com/jonathan/video-summarizer/internal/llm"
	"github.com/jonathan/video-summarizer/internal/metadata"
	"github.com/jonathan/video-summarizer/internal/observability"
	"github.com/jonathan/video-summarizer/internal/pipeline"
	"github.com/jonathan/video-summarizer/internal/resolve"
	"github.com/jonathan/video-summarizer/internal/summarize"
	"github.com/jonathan/video-summarizer/internal/transcript"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Summarize a single video end-to-end",
	Long: `Resolves the video identifier from the URL, retrieves the caption transcript,
generates a bounded-length summary and writes summary_<id>.txt and
transcript_<id>.txt to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runSummarizeCmd,
}

var (
	runConfigPath string
	runURL        string
	runMaxLength  int
	runMinLength  int
	runOutputDir  string
	runAPIKey     string
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runURL, "url", "u", "", "YouTube video URL")
	runCommand.Flags().IntVar(&runMaxLength, "max-length", 0, "Maximum summary length (capability units)")
	runCommand.Flags().IntVar(&runMinLength, "min-length", 0, "Minimum summary length (capability units)")
	runCommand.Flags().StringVarP(&runOutputDir, "output", "o", "", "Directory for summary/transcript artifacts")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runSummarizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("url") {
		cfg.URL = runURL
	}
	if cmd.Flags().Changed("max-length") {
		cfg.MaxLength = runMaxLength
	}
	if cmd.Flags().Changed("min-length") {
		cfg.MinLength = runMinLength
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		MaxLength: summarize.DefaultMaxLength,
		MinLength: summarize.DefaultMinLength,
		OutputDir: ".",
	})

	// Step 4: Validate required fields and merged bounds
	if cfg.URL == "" {
		return fmt.Errorf("--url must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	deps := pipeline.Deps{
		Fetcher:   transcript.NewInnertubeFetcher(),
		Generator: summarize.NewLLMGenerator(client),
		Titles:    metadata.NewLookup(),
	}

	outcome, err := pipeline.Run(ctx, pipeline.RunOptions{
		URL:       cfg.URL,
		MaxLength: cfg.MaxLength,
		MinLength: cfg.MinLength,
		Verbose:   cfg.Verbose,
	}, deps)
	if err != nil {
		return fmt.Errorf("%s", failureMessage(err))
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintVideoInfo(outcome.VideoID, outcome.Title)
	printer.PrintTranscriptMetrics(outcome)
	printer.PrintSummary(outcome)

	summaryPath, transcriptPath, err := pipeline.WriteArtifacts(cfg.OutputDir, outcome)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s and %s\n", summaryPath, transcriptPath)

	return nil
}

// failureMessage maps pipeline errors to the human-readable messages shown to
// the user; internal detail stays in verbose logs.
func failureMessage(err error) string {
	var unavailable *transcript.UnavailableError
	switch {
	case errors.Is(err, resolve.ErrNoVideoID):
		return "Invalid YouTube URL. Please check the link and try again."
	case errors.As(err, &unavailable):
		return "Could not retrieve transcript. This video might not have captions available."
	default:
		return err.Error()
	}
}
