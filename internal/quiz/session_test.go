package quiz

import (
	"testing"

	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/progress"
)

func seyirQueue() []bank.Question {
	return []bank.Question{
		{ID: 10, Section: "Seyir", Correct: 0, Options: []string{"a", "b"}},
		{ID: 11, Section: "Seyir", Correct: 1, Options: []string{"a", "b", "c"}},
		{ID: 12, Section: "Seyir", Correct: 0, Options: []string{"a", "b"}},
	}
}

func TestNewStartsAtFirstUnanswered(t *testing.T) {
	rec := progress.NewRecord().WithAnswer(10, 0)

	s := New("Seyir", "Seyir", seyirQueue(), rec)

	if s.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 (first unanswered)", s.Cursor)
	}
	if s.State(rec) != AwaitingAnswer {
		t.Errorf("State = %v, want AwaitingAnswer", s.State(rec))
	}
}

func TestNewAllAnsweredStartsInReviewMode(t *testing.T) {
	rec := progress.NewRecord().WithAnswer(10, 0).WithAnswer(11, 1).WithAnswer(12, 0)

	s := New("Seyir", "Seyir", seyirQueue(), rec)

	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
	if s.State(rec) != Answered {
		t.Errorf("State = %v, want Answered for an already-answered question", s.State(rec))
	}
}

func TestSubmitRecordsAndLocks(t *testing.T) {
	rec := progress.NewRecord()
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	rec, ok := s.Submit(rec, 10, 1)
	if !ok {
		t.Fatal("expected submission to apply")
	}
	if got, _ := rec.Answer(10); got != 1 {
		t.Errorf("Answer(10) = %d, want 1", got)
	}
	if s.State(rec) != Answered {
		t.Errorf("State = %v, want Answered after submit", s.State(rec))
	}

	// Second submission for an already-answered id is a no-op, not an overwrite.
	rec2, ok := s.Submit(rec, 10, 0)
	if ok {
		t.Error("expected re-submission to be rejected")
	}
	if got, _ := rec2.Answer(10); got != 1 {
		t.Errorf("Answer(10) after re-submit = %d, want original 1", got)
	}
}

func TestSubmitIllegalCases(t *testing.T) {
	rec := progress.NewRecord()
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	if _, ok := s.Submit(rec, 11, 0); ok {
		t.Error("submission for a non-current question must be a no-op")
	}
	if _, ok := s.Submit(rec, 10, 5); ok {
		t.Error("out-of-range choice must be a no-op")
	}
	if _, ok := s.Submit(rec, 10, -1); ok {
		t.Error("negative choice must be a no-op")
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	rec := progress.NewRecord()
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	if got := s.Advance(rec); got.Cursor != 0 {
		t.Errorf("Advance while awaiting answer moved cursor to %d", got.Cursor)
	}

	rec, _ = s.Submit(rec, 10, 0)
	s = s.Advance(rec)
	if s.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 after advancing an answered question", s.Cursor)
	}
	if s.State(rec) != AwaitingAnswer {
		t.Errorf("State = %v, want AwaitingAnswer at the next question", s.State(rec))
	}
}

func TestAdvancePastEndCompletes(t *testing.T) {
	rec := progress.NewRecord()
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	for _, step := range []struct{ id, choice int }{{10, 0}, {11, 1}, {12, 1}} {
		var ok bool
		rec, ok = s.Submit(rec, step.id, step.choice)
		if !ok {
			t.Fatalf("submit %d failed", step.id)
		}
		s = s.Advance(rec)
	}

	if s.State(rec) != Complete {
		t.Fatalf("State = %v, want Complete after advancing past the last question", s.State(rec))
	}

	// Advancing a completed session stays complete.
	if got := s.Advance(rec); got.State(rec) != Complete {
		t.Error("Advance on a complete session must be a no-op")
	}
}

func TestRetreat(t *testing.T) {
	rec := progress.NewRecord().WithAnswer(10, 0)
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	s = s.Retreat()
	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
	if s.State(rec) != Answered {
		t.Errorf("State = %v, want Answered (locked) after retreating", s.State(rec))
	}

	// Retreat at the start is a no-op.
	if got := s.Retreat(); got.Cursor != 0 {
		t.Errorf("Retreat at cursor 0 moved to %d", got.Cursor)
	}
}

func TestFinalizeMarksRealSectionComplete(t *testing.T) {
	rec := progress.NewRecord().
		WithAnswer(10, 0).WithAnswer(11, 1).WithAnswer(12, 1)
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	rec, res := Finalize(s, rec)

	if !res.SectionCompleted {
		t.Error("expected SectionCompleted for a fully answered real section")
	}
	if !rec.Completed["Seyir"] {
		t.Error("expected Seyir marked completed on the record")
	}
	if res.Stats.Correct != 2 || res.Stats.Wrong != 1 || res.Stats.Skipped != 0 {
		t.Errorf("stats = %+v, want correct=2 wrong=1 skipped=0", res.Stats)
	}
	if len(res.Missed) != 1 || res.Missed[0].Question.ID != 12 || res.Missed[0].ChosenIndex != 1 {
		t.Errorf("missed = %+v, want exactly question 12 with chosen index 1", res.Missed)
	}
}

func TestFinalizeSkippedQuestionsDoNotComplete(t *testing.T) {
	rec := progress.NewRecord().WithAnswer(10, 0)
	s := New("Seyir", "Seyir", seyirQueue(), rec)

	rec, res := Finalize(s, rec)

	if res.SectionCompleted || rec.Completed["Seyir"] {
		t.Error("a partially answered section must not be marked completed")
	}
}

func TestFinalizeSyntheticNeverCompletes(t *testing.T) {
	// Identical content to the real section, but a synthetic queue.
	rec := progress.NewRecord().
		WithAnswer(10, 0).WithAnswer(11, 1).WithAnswer(12, 0)
	s := New("Yanlış Cevaplar", "", seyirQueue(), rec)

	rec, res := Finalize(s, rec)

	if res.SectionCompleted {
		t.Error("synthetic queue reported SectionCompleted")
	}
	if len(rec.Completed) != 0 {
		t.Errorf("synthetic queue marked sections completed: %v", rec.Completed)
	}
}

func TestRetryBuildsQueueOfExactlyWrongQuestions(t *testing.T) {
	queue := seyirQueue()
	rec := progress.NewRecord().
		WithAnswer(10, 1). // wrong
		WithAnswer(11, 1). // correct
		WithAnswer(12, 1)  // wrong

	cleared, s, ok := Retry("Yanlış Tekrar: Seyir", rec, queue)
	if !ok {
		t.Fatal("expected a retry session")
	}

	if len(s.Queue) != 2 {
		t.Fatalf("len(Queue) = %d, want 2", len(s.Queue))
	}
	ids := map[int]bool{}
	for _, q := range s.Queue {
		ids[q.ID] = true
	}
	if !ids[10] || !ids[12] {
		t.Errorf("retry queue ids = %v, want {10, 12}", ids)
	}

	for _, id := range []int{10, 12} {
		if _, stillThere := cleared.Answer(id); stillThere {
			t.Errorf("answer for %d should have been deleted by retry", id)
		}
	}
	if got, _ := cleared.Answer(11); got != 1 {
		t.Error("correct answer for 11 must survive the retry clear")
	}

	if !s.Synthetic() {
		t.Error("retry session must be synthetic")
	}
	if s.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor)
	}
}

func TestRetryNothingWrong(t *testing.T) {
	rec := progress.NewRecord().WithAnswer(10, 0)

	got, _, ok := Retry("Yanlış Cevaplar", rec, seyirQueue())
	if ok {
		t.Fatal("expected no retry session when nothing is wrong")
	}
	if g, _ := got.Answer(10); g != 0 {
		t.Error("record must be unchanged when retry has nothing to do")
	}
}

// Drives a full section the way the UI would: answer, advance, finish.
func TestFullSectionFlow(t *testing.T) {
	queue := []bank.Question{
		{ID: 1, Section: "Deniz Hukuku", Correct: 0, Options: []string{"a", "b"}},
		{ID: 2, Section: "Deniz Hukuku", Correct: 1, Options: []string{"a", "b"}},
		{ID: 3, Section: "Deniz Hukuku", Correct: 0, Options: []string{"a", "b"}},
		{ID: 4, Section: "Deniz Hukuku", Correct: 1, Options: []string{"a", "b"}},
	}
	rec := progress.NewRecord()
	s := New("Deniz Hukuku", "Deniz Hukuku", queue, rec)

	answers := []int{0, 0, 0, 1} // one wrong at question 2
	for i, choice := range answers {
		if s.State(rec) != AwaitingAnswer {
			t.Fatalf("step %d: state = %v, want AwaitingAnswer", i, s.State(rec))
		}
		var ok bool
		rec, ok = s.Submit(rec, s.Current().ID, choice)
		if !ok {
			t.Fatalf("step %d: submit failed", i)
		}
		s = s.Advance(rec)
	}

	if s.State(rec) != Complete {
		t.Fatalf("state = %v, want Complete", s.State(rec))
	}

	rec, res := Finalize(s, rec)
	if res.Stats.Correct != 3 || res.Stats.Wrong != 1 || res.Stats.Skipped != 0 || res.Stats.Percentage != 75 {
		t.Errorf("stats = %+v, want correct=3 wrong=1 skipped=0 percentage=75", res.Stats)
	}
	if !rec.Completed["Deniz Hukuku"] {
		t.Error("expected section marked completed")
	}
}
