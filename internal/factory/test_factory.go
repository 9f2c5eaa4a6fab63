package factory

import (
	"context"

	"github.com/mcoot/wordsearch-go/internal/dependencies/mocks"
	"github.com/mcoot/wordsearch-go/internal/storage/memory"
	"github.com/mcoot/wordsearch-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(testutil.FixedTime)
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordList stores a small animal word list under "animals"
func (t *TestApp) LoadTestWordList() error {
	words := []string{
		"cat", "dog", "emu", "owl", "yak",
		"bear", "deer", "frog", "goat", "hare", "lion", "mole", "seal", "wolf",
		"camel", "horse", "llama", "otter", "panda", "tiger", "zebra",
	}
	_, err := t.WordListService.Save(context.Background(), "animals", words)
	return err
}
