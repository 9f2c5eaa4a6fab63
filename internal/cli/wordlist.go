package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/services/wordlist"
)

func newWordListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage word lists stored on the server",
	}

	cmd.AddCommand(newWordListPutCmd())
	cmd.AddCommand(newWordListGetCmd())

	return cmd
}

func newWordListPutCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "put <name> [words...]",
		Short: "Store a word list, replacing any list with the same name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			words := args[1:]
			if file != "" {
				fromFile, err := wordlist.ReadFile(file)
				if err != nil {
					return err
				}
				words = append(words, fromFile...)
			}
			if len(words) == 0 {
				return fmt.Errorf("no words given")
			}

			var result WordList
			if err := client.Put("/api/v1/wordlists/"+url.PathEscape(name), map[string]any{"words": words}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File containing one word per line")

	return cmd
}

func newWordListGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a stored word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WordList

			if err := client.Get("/api/v1/wordlists/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Format, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
