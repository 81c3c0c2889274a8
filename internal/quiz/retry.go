package quiz

import (
	"math/rand"
	"time"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/progress"
)

// Retry selects every question in qs currently recorded as wrong,
// deletes those answers from the record so they can be re-answered, and
// builds a synthetic session over a shuffled copy of exactly those
// questions. ok is false when nothing is wrong; the record is returned
// unchanged in that case. The caller persists the returned record.
func Retry(label string, rec progress.Record, qs []bank.Question) (progress.Record, Session, bool) {
	wrong := progress.Wrong(rec, qs)
	if len(wrong) == 0 {
		return rec, Session{}, false
	}

	ids := make([]int, len(wrong))
	for i, q := range wrong {
		ids[i] = q.ID
	}
	cleared := rec.WithoutAnswers(ids)

	queue := shuffle(wrong)
	return cleared, New(label, "", queue, cleared), true
}

// shuffle returns a Fisher-Yates shuffled copy, leaving qs untouched.
func shuffle(qs []bank.Question) []bank.Question {
	shuffled := make([]bank.Question, len(qs))
	copy(shuffled, qs)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
