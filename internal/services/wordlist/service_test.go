package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordsearch-go/internal/model"
	"github.com/mcoot/wordsearch-go/internal/storage/memory"
	"github.com/mcoot/wordsearch-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

// Normalize tests

func (s *ServiceSuite) TestNormalize() {
	s.Equal("CAT", Normalize("cat"))
	s.Equal("ICECREAM", Normalize("ice-cream"))
	s.Equal("DONT", Normalize(" Don't\t"))
	s.Equal("", Normalize("1234"))
	s.Equal("CAF", Normalize("café"))
}

func (s *ServiceSuite) TestNormalizeAllDropsEmptyWords() {
	s.Equal([]string{"CAT", "DOG"}, NormalizeAll([]string{"cat", "", "42", "Dog"}))
}

// Parse tests

func (s *ServiceSuite) TestParse() {
	words, err := Parse(strings.NewReader("cat\n\nDog\r\n  bird  \n"))
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG", "BIRD"}, words)
}

func (s *ServiceSuite) TestParseEmpty() {
	_, err := Parse(strings.NewReader("\n \n123\n"))
	s.ErrorIs(err, model.ErrEmptyWordList)
}

// ReadFile tests

func (s *ServiceSuite) TestReadFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("apple\nbanana\n"), 0o600))

	words, err := ReadFile(path)
	s.Require().NoError(err)
	s.Equal([]string{"APPLE", "BANANA"}, words)
}

func (s *ServiceSuite) TestReadFileEmpty() {
	path := filepath.Join(s.T().TempDir(), "empty.txt")
	s.Require().NoError(os.WriteFile(path, nil, 0o600))

	_, err := ReadFile(path)
	s.ErrorIs(err, model.ErrEmptyWordList)
	s.Contains(err.Error(), "empty.txt")
}

func (s *ServiceSuite) TestReadFileMissing() {
	_, err := ReadFile(filepath.Join(s.T().TempDir(), "nope.txt"))
	s.ErrorIs(err, os.ErrNotExist)
}

// Save / Get tests

func (s *ServiceSuite) TestSaveAndGet() {
	saved, err := s.service.Save(s.ctx, "animals", []string{"cat", "dog"})
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG"}, saved)

	words, err := s.service.Get(s.ctx, "animals")
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG"}, words)
}

func (s *ServiceSuite) TestSaveReplacesList() {
	_, _ = s.service.Save(s.ctx, "animals", []string{"cat", "dog"})
	_, err := s.service.Save(s.ctx, "animals", []string{"owl"})
	s.Require().NoError(err)

	words, err := s.service.Get(s.ctx, "animals")
	s.Require().NoError(err)
	s.Equal([]string{"OWL"}, words)
}

func (s *ServiceSuite) TestSaveRejectsEmptyList() {
	_, err := s.service.Save(s.ctx, "empty", []string{"", "!!"})
	s.ErrorIs(err, model.ErrEmptyWordList)

	_, err = s.service.Get(s.ctx, "empty")
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *ServiceSuite) TestImportFile() {
	path := filepath.Join(s.T().TempDir(), "fruit.txt")
	s.Require().NoError(os.WriteFile(path, []byte("kiwi\nlime\n"), 0o600))

	words, err := s.service.ImportFile(s.ctx, "fruit", path)
	s.Require().NoError(err)
	s.Equal([]string{"KIWI", "LIME"}, words)

	stored, err := s.service.Get(s.ctx, "fruit")
	s.Require().NoError(err)
	s.Equal(words, stored)
}

func (s *ServiceSuite) TestGetMissing() {
	_, err := s.service.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrWordListNotFound)
}
