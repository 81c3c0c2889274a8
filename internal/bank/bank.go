package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Question is one entry of the static question bank. The bank is loaded
// once at startup and never mutated afterwards.
type Question struct {
	ID          int      `json:"id"`
	Section     string   `json:"section"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// OptionLetters labels answer options A through E.
var OptionLetters = []string{"A", "B", "C", "D", "E"}

// Bank holds the full question set plus a section index.
type Bank struct {
	Questions []Question

	sections  []string
	bySection map[string][]Question
}

// New builds a Bank from a question slice. Sections keep the order of
// their first appearance in the slice.
func New(questions []Question) *Bank {
	b := &Bank{
		Questions: questions,
		bySection: make(map[string][]Question),
	}
	for _, q := range questions {
		if _, seen := b.bySection[q.Section]; !seen {
			b.sections = append(b.sections, q.Section)
		}
		b.bySection[q.Section] = append(b.bySection[q.Section], q)
	}
	return b
}

// Load reads and parses the question bank at path. Any failure here is
// fatal to startup: the app has no degraded mode without questions.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", filepath.Base(path), err)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", filepath.Base(path), err)
	}
	if len(questions) == 0 {
		return nil, errors.New("question bank is empty")
	}

	return New(questions), nil
}

// Sections returns section names in first-appearance order.
func (b *Bank) Sections() []string {
	return b.sections
}

// Section returns the question slice for a named section. The second
// return value is false for unknown section names.
func (b *Bank) Section(name string) ([]Question, bool) {
	qs, ok := b.bySection[name]
	return qs, ok
}

// Total returns the number of questions in the bank.
func (b *Bank) Total() int {
	return len(b.Questions)
}
