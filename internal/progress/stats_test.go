package progress

import (
	"testing"

	"github.com/oguzk/denizci/internal/bank"
)

func lawSection() []bank.Question {
	return []bank.Question{
		{ID: 1, Section: "Deniz Hukuku", Correct: 0, Options: []string{"a", "b"}},
		{ID: 2, Section: "Deniz Hukuku", Correct: 1, Options: []string{"a", "b", "c"}},
		{ID: 3, Section: "Deniz Hukuku", Correct: 2, Options: []string{"a", "b", "c"}},
		{ID: 4, Section: "Deniz Hukuku", Correct: 0, Options: []string{"a", "b"}},
	}
}

func TestSummarizeEmptyRecord(t *testing.T) {
	s := Summarize(NewRecord(), lawSection())

	if s.Answered != 0 || s.Correct != 0 || s.Wrong != 0 {
		t.Errorf("empty record summary = %+v, want all-zero counts", s)
	}
	if s.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", s.Skipped)
	}
	if s.Percentage != 0 {
		t.Errorf("Percentage = %d, want 0 when nothing answered", s.Percentage)
	}
}

func TestSummarizeCounts(t *testing.T) {
	rec := recordWith(map[int]int{1: 0, 2: 0, 3: 2})

	s := Summarize(rec, lawSection())

	if s.Answered != 3 || s.Correct != 2 || s.Wrong != 1 || s.Skipped != 1 {
		t.Errorf("summary = %+v, want answered=3 correct=2 wrong=1 skipped=1", s)
	}
	if s.Percentage != 67 {
		t.Errorf("Percentage = %d, want round(2/3*100) = 67", s.Percentage)
	}
}

// Section finished with a single wrong answer: the §8 end-to-end numbers.
func TestSummarizeFullSection(t *testing.T) {
	rec := recordWith(map[int]int{1: 0, 2: 0, 3: 2, 4: 0})

	s := Summarize(rec, lawSection())

	if s.Correct != 3 || s.Wrong != 1 || s.Skipped != 0 || s.Percentage != 75 {
		t.Errorf("summary = %+v, want correct=3 wrong=1 skipped=0 percentage=75", s)
	}
}

func TestSummarizeIgnoresForeignAnswers(t *testing.T) {
	rec := recordWith(map[int]int{99: 1, 1: 0})

	s := Summarize(rec, lawSection())

	if s.Answered != 1 {
		t.Errorf("Answered = %d, want 1 (answers outside the slice ignored)", s.Answered)
	}
}

func TestWrong(t *testing.T) {
	rec := recordWith(map[int]int{1: 1, 2: 1, 3: 0})

	wrong := Wrong(rec, lawSection())

	if len(wrong) != 2 {
		t.Fatalf("len(wrong) = %d, want 2", len(wrong))
	}
	if wrong[0].ID != 1 || wrong[1].ID != 3 {
		t.Errorf("wrong ids = %d, %d, want 1, 3", wrong[0].ID, wrong[1].ID)
	}
}

func TestWrongExcludesUnanswered(t *testing.T) {
	if got := Wrong(NewRecord(), lawSection()); len(got) != 0 {
		t.Errorf("Wrong on empty record = %v, want none", got)
	}
}
