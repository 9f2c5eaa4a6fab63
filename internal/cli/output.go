package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Puzzle:
		o.printPuzzle(v)
	case PuzzleList:
		o.printPuzzleList(v)
	case WordList:
		o.printWordList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Placement response type (matches API)
type Placement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	EndRow    int    `json:"end_row"`
	EndCol    int    `json:"end_col"`
}

// Puzzle response type
type Puzzle struct {
	ID         string      `json:"id"`
	Words      []string    `json:"words"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Rows       []string    `json:"rows"`
	Placements []Placement `json:"placements"`
	Seed       *uint64     `json:"seed,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PuzzleList response type
type PuzzleList struct {
	IDs []string `json:"ids"`
}

// WordList response type
type WordList struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPuzzle(p Puzzle) {
	if p.ID != "" {
		fmt.Fprintf(o.w, "Puzzle: %s\n", p.ID)
	}
	fmt.Fprintf(o.w, "Size: %dx%d\n", p.Width, p.Height)
	if p.Seed != nil {
		fmt.Fprintf(o.w, "Seed: %d\n", *p.Seed)
	}
	fmt.Fprintln(o.w)
	o.printGrid(p.Rows)

	fmt.Fprintf(o.w, "\nWords (%d):\n", len(p.Words))
	for _, w := range p.Words {
		fmt.Fprintf(o.w, "  %s\n", w)
	}
}

func (o *Output) printGrid(rows []string) {
	if len(rows) == 0 {
		return
	}
	border := "+" + strings.Repeat("-", len(rows[0])*2+1) + "+"

	fmt.Fprintln(o.w, border)
	for _, row := range rows {
		fmt.Fprint(o.w, "|")
		for _, letter := range row {
			fmt.Fprintf(o.w, " %c", letter)
		}
		fmt.Fprintln(o.w, " |")
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printPuzzleList(l PuzzleList) {
	if len(l.IDs) == 0 {
		fmt.Fprintln(o.w, "No puzzles")
		return
	}
	fmt.Fprintf(o.w, "Puzzles (%d):\n", len(l.IDs))
	for _, id := range l.IDs {
		fmt.Fprintf(o.w, "  %s\n", id)
	}
}

func (o *Output) printWordList(l WordList) {
	fmt.Fprintf(o.w, "Word list: %s (%d words)\n", l.Name, len(l.Words))
	for _, w := range l.Words {
		fmt.Fprintf(o.w, "  %s\n", w)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
