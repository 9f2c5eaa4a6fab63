package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordsearch",
		Short: "Generate word search puzzles",
		Long: `wordsearch builds word search puzzles from a list of words.

The generate command works entirely offline and writes a printable PNG.
The puzzle and wordlist commands talk to a running wordsearch server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Format != FormatText && cfg.Format != FormatJSON {
				return fmt.Errorf("unknown format %q: must be text or json", cfg.Format)
			}
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WORDSEARCH_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, json (env: WORDSEARCH_FORMAT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPuzzleCmd())
	rootCmd.AddCommand(newWordListCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a debug logger on stderr when verbose, otherwise a silent one
func newLogger(cmd *cobra.Command) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
