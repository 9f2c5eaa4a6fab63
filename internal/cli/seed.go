package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordsearch-go/internal/dependencies/random"
)

// seedFlags are the mutually exclusive --seed and --seed-phrase flags
type seedFlags struct {
	seed   uint64
	phrase string
}

func (s *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&s.seed, "seed", 0, "Seed for a reproducible puzzle")
	cmd.Flags().StringVar(&s.phrase, "seed-phrase", "", "Phrase hashed into a seed for a reproducible puzzle")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-phrase")
}

// resolve returns the chosen seed, or nil when neither flag was given
func (s *seedFlags) resolve(cmd *cobra.Command) *uint64 {
	switch {
	case cmd.Flags().Changed("seed"):
		seed := s.seed
		return &seed
	case s.phrase != "":
		seed := random.SeedFromPhrase(s.phrase)
		return &seed
	}
	return nil
}
