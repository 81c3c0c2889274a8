package quiz

import (
	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/progress"
)

// Missed pairs a question with the wrong choice recorded for it.
type Missed struct {
	Question    bank.Question
	ChosenIndex int
}

// Result is the end-of-session summary shown on the section result
// screen. Derived on demand, never persisted.
type Result struct {
	Label            string
	Stats            progress.Stats
	Missed           []Missed
	SectionCompleted bool
}

// Finalize computes the session result and, for a real section whose
// every question now has an answer, marks the section completed on the
// record. Synthetic retry queues never complete a section, even when
// their content matches one exactly. The caller persists the returned
// record when SectionCompleted is set.
func Finalize(s Session, rec progress.Record) (progress.Record, Result) {
	stats := progress.Summarize(rec, s.Queue)

	var missed []Missed
	for _, q := range s.Queue {
		if choice, ok := rec.Answer(q.ID); ok && choice != q.Correct {
			missed = append(missed, Missed{Question: q, ChosenIndex: choice})
		}
	}

	res := Result{
		Label:  s.Label,
		Stats:  stats,
		Missed: missed,
	}

	if !s.Synthetic() && stats.Skipped == 0 && !rec.Completed[s.Section] {
		rec = rec.WithCompleted(s.Section)
		res.SectionCompleted = true
	}

	return rec, res
}
