package request

// CreatePuzzleRequest is the request body for generating a puzzle.
// Either Words or WordList must be given; Words wins when both are.
type CreatePuzzleRequest struct {
	Words    []string `json:"words,omitempty"`
	WordList string   `json:"wordlist,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Seed     *uint64  `json:"seed,omitempty"`
	Attempts int      `json:"attempts,omitempty"`
}

// PutWordListRequest is the request body for storing a word list
type PutWordListRequest struct {
	Words []string `json:"words"`
}
