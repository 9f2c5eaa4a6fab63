package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/storage"
)

// Service manages named word lists kept in storage
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new WordListService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Normalize uppercases a word and drops everything outside A-Z
func Normalize(word string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToUpper(r)
		if r < 'A' || r > 'Z' {
			return -1
		}
		return r
	}, word)
}

// NormalizeAll normalizes every word, skipping words left empty
func NormalizeAll(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" {
			result = append(result, n)
		}
	}
	return result
}

// Parse reads one word per line and normalizes them.
// Returns model.ErrEmptyWordList if no usable words remain.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := Normalize(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrEmptyWordList
	}
	return words, nil
}

// ReadFile parses the word list file at path
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Save normalizes words and stores them under name, replacing any existing list
func (s *Service) Save(ctx context.Context, name string, words []string) ([]string, error) {
	normalized := NormalizeAll(words)
	if len(normalized) == 0 {
		return nil, model.ErrEmptyWordList
	}
	if err := s.storage.SaveWordList(ctx, name, normalized); err != nil {
		return nil, err
	}

	s.logger.Info("word list saved",
		slog.String("name", name),
		slog.Int("word_count", len(normalized)),
	)
	return normalized, nil
}

// ImportFile reads a word list file and stores it under name
func (s *Service) ImportFile(ctx context.Context, name, path string) ([]string, error) {
	words, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Save(ctx, name, words)
}

// Get retrieves a stored word list
func (s *Service) Get(ctx context.Context, name string) ([]string, error) {
	return s.storage.GetWordList(ctx, name)
}
