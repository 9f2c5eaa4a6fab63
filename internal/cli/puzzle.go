package cli

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/services/generator"
	"github.com/mcoot/wordsearch-go/internal/services/render"
	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Puzzle commands against the server",
	}

	cmd.AddCommand(newPuzzleCreateCmd())
	cmd.AddCommand(newPuzzleGetCmd())
	cmd.AddCommand(newPuzzleListCmd())
	cmd.AddCommand(newPuzzleDeleteCmd())
	cmd.AddCommand(newPuzzleImageCmd())

	return cmd
}

func newPuzzleCreateCmd() *cobra.Command {
	var (
		words    []string
		file     string
		list     string
		columns  int
		rows     int
		attempts int
		seeds    seedFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate and store a new puzzle",
		Example: `  wordsearch puzzle create --words cat,dog,bird
  wordsearch puzzle create -f words.txt --seed 42
  wordsearch puzzle create --wordlist animals --attempts 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				fromFile, err := wordlist.ReadFile(file)
				if err != nil {
					return err
				}
				words = append(words, fromFile...)
			}
			if len(words) == 0 && list == "" {
				return fmt.Errorf("one of --words, --file or --wordlist is required")
			}
			if err := generator.CheckSizeHints(columns, rows); err != nil {
				return err
			}

			req := map[string]any{}
			if len(words) > 0 {
				req["words"] = words
			}
			if list != "" {
				req["wordlist"] = list
			}
			if columns > 0 {
				req["width"] = columns
			}
			if rows > 0 {
				req["height"] = rows
			}
			if attempts > 0 {
				req["attempts"] = attempts
			}
			if seed := seeds.resolve(cmd); seed != nil {
				req["seed"] = *seed
			}

			var result Puzzle
			if err := client.Post("/api/v1/puzzles", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&words, "words", nil, "Comma separated words")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File containing one word per line")
	cmd.Flags().StringVar(&list, "wordlist", "", "Name of a word list stored on the server")
	cmd.Flags().IntVarP(&columns, "columns", "c", 0, "Width of the grid, in letters")
	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "Height of the grid, in letters")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "Generation runs to try (default: server default)")
	seeds.register(cmd)

	return cmd
}

func newPuzzleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle

			if err := client.Get(fmt.Sprintf("/api/v1/puzzles/%s", url.PathEscape(args[0])), &result); err != nil {
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPuzzleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PuzzleList

			if err := client.Get("/api/v1/puzzles", &result); err != nil {
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPuzzleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/puzzles/%s", url.PathEscape(args[0]))); err != nil {
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).PrintMessage("Deleted puzzle " + args[0])
			return nil
		},
	}
}

func newPuzzleImageCmd() *cobra.Command {
	var (
		output string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "image <id>",
		Short: "Download a puzzle as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if width > render.MaxImageSide || height > render.MaxImageSide {
				return render.ErrImageTooLarge
			}
			if output == "" {
				output = id + ".png"
			}

			query := url.Values{}
			if width > 0 {
				query.Set("width", strconv.Itoa(width))
			}
			if height > 0 {
				query.Set("height", strconv.Itoa(height))
			}
			path := fmt.Sprintf("/api/v1/puzzles/%s/image.png", url.PathEscape(id))
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			n, err := client.Download(path, f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				_ = os.Remove(output)
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Wrote %s (%d bytes)", output, n))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <id>.png)")
	cmd.Flags().IntVarP(&width, "image-width", "x", 0, "Image width (default: server default)")
	cmd.Flags().IntVarP(&height, "image-height", "y", 0, "Image height (default: server default)")

	return cmd
}
