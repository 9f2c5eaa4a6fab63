package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/factory"
	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/services/puzzle"
	"github.com/mcoot/wordsearch-go/internal/services/render"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
)

type generateOptions struct {
	file        string
	output      string
	columns     int
	rows        int
	imageWidth  int
	imageHeight int
	attempts    int
	resultType  string
	seeds       seedFlags
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle locally from a word list file",
		Long: `Generate reads one word per line, hides every word in a letter grid and
writes the result. Nothing is sent to a server.

By default a PNG with the grid and a word legend is written next to the word
list, e.g. words.txt becomes words.png.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "words.txt", "File containing the list of words")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output image file (default: <file>.png)")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", 0, "Width of the grid, in letters")
	cmd.Flags().IntVarP(&opts.rows, "rows", "r", 0, "Height of the grid, in letters")
	cmd.Flags().IntVarP(&opts.imageWidth, "image-width", "x", puzzle.DefaultImageWidth, "Width of the produced image")
	cmd.Flags().IntVarP(&opts.imageHeight, "image-height", "y", puzzle.DefaultImageHeight, "Height of the produced image")
	cmd.Flags().IntVar(&opts.attempts, "attempts", puzzle.DefaultAttempts, "Generation runs to try before giving up")
	cmd.Flags().StringVarP(&opts.resultType, "type", "t", FormatPNG, "Result type: png, text, json")
	opts.seeds.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	switch opts.resultType {
	case FormatPNG, FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown type %q: must be png, text or json", opts.resultType)
	}
	if opts.columns < 0 || opts.rows < 0 {
		return fmt.Errorf("columns and rows must not be negative")
	}
	if err := generator.CheckSizeHints(opts.columns, opts.rows); err != nil {
		return err
	}
	if err := render.CheckImageSize(opts.imageWidth, opts.imageHeight); err != nil {
		return err
	}
	if opts.attempts < 1 || opts.attempts > puzzle.MaxAttempts {
		return fmt.Errorf("attempts must be between 1 and %d", puzzle.MaxAttempts)
	}

	words, err := wordlist.ReadFile(opts.file)
	if err != nil {
		return err
	}

	app, err := factory.New(factory.Config{Logger: newLogger(cmd)})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	p, err := app.PuzzleController.Create(ctx, puzzle.CreateRequest{
		Words:    words,
		Width:    opts.columns,
		Height:   opts.rows,
		Seed:     opts.seeds.resolve(cmd),
		Attempts: opts.attempts,
	})
	if err != nil {
		return err
	}

	switch opts.resultType {
	case FormatText, FormatJSON:
		local := puzzleFromModel(p)
		local.ID = "" // only meaningful inside this process
		NewOutput(opts.resultType, cmd.OutOrStdout()).Print(local)
		return nil
	}

	path := opts.output
	if path == "" {
		path = defaultImagePath(opts.file)
	}

	// Render fully before touching the output file
	var buf bytes.Buffer
	if err := app.PuzzleController.RenderPNG(ctx, p.ID, opts.imageWidth, opts.imageHeight, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	NewOutput(cfg.Format, cmd.OutOrStdout()).PrintMessage(
		fmt.Sprintf("Wrote %s (%dx%d grid, %d words)", path, p.Width, p.Height, len(p.Words)))
	return nil
}

// defaultImagePath swaps the word list extension for .png
func defaultImagePath(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
}

func puzzleFromModel(p *model.Puzzle) Puzzle {
	placements := make([]Placement, len(p.Placements))
	for i, pl := range p.Placements {
		placements[i] = Placement{
			Word:      pl.Word,
			Row:       pl.Start.Row,
			Col:       pl.Start.Col,
			Direction: pl.Direction.String(),
			EndRow:    pl.End().Row,
			EndCol:    pl.End().Col,
		}
	}
	return Puzzle{
		ID:         string(p.ID),
		Words:      p.Words,
		Width:      p.Width,
		Height:     p.Height,
		Rows:       p.Rows,
		Placements: placements,
		Seed:       p.Seed,
		CreatedAt:  p.CreatedAt,
	}
}
