package progress

import (
	"math"

	"github.com/oguzk/denizci/internal/bank"
)

// Stats is the derived score summary for a record over a question slice.
// Recomputed on demand, never persisted.
type Stats struct {
	Total      int
	Answered   int
	Correct    int
	Wrong      int
	Skipped    int
	Percentage int
}

// Summarize computes stats for a record over any question slice: the
// whole bank, one section, or a retry subset.
func Summarize(rec Record, questions []bank.Question) Stats {
	s := Stats{Total: len(questions)}

	for _, q := range questions {
		choice, ok := rec.Answer(q.ID)
		if !ok {
			continue
		}
		s.Answered++
		if choice == q.Correct {
			s.Correct++
		}
	}

	s.Wrong = s.Answered - s.Correct
	s.Skipped = s.Total - s.Answered
	if s.Answered > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) / float64(s.Answered) * 100))
	}
	return s
}

// Wrong returns the questions from qs whose recorded answer is incorrect.
// Unanswered questions are not wrong, they are skipped.
func Wrong(rec Record, questions []bank.Question) []bank.Question {
	var wrong []bank.Question
	for _, q := range questions {
		if choice, ok := rec.Answer(q.ID); ok && choice != q.Correct {
			wrong = append(wrong, q)
		}
	}
	return wrong
}
