// Package quiz implements the session state machine: an ordered
// traversal of a question queue with answer locking, navigation, and
// section-completion marking. Sessions are plain values owned by the
// screen driving them; all progress reads and writes go through the
// progress.Record passed into each transition.
package quiz

import (
	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/progress"
)

// State is the session state for the question under the cursor.
type State int

const (
	// AwaitingAnswer means the current question has no recorded answer.
	AwaitingAnswer State = iota

	// Answered means the current question is locked with an answer.
	Answered

	// Complete means the learner advanced past the last question.
	Complete
)

// Session is an ephemeral traversal of a fixed question queue. The
// queue is either a real section's full slice or a synthetic
// wrong-answer retry subset; only the former may mark a section
// completed. Sessions are never persisted.
type Session struct {
	// Label is the display title of the session.
	Label string

	// Section is the real section name backing this queue, empty for
	// synthetic retry queues.
	Section string

	// Queue is the ordered question sequence, fixed for the session.
	Queue []bank.Question

	// Cursor indexes the current question in Queue.
	Cursor int

	done bool
}

// New starts a session over a queue. The cursor resumes at the first
// unanswered question; when everything is already answered the session
// starts at the beginning in review mode.
func New(label, section string, queue []bank.Question, rec progress.Record) Session {
	cursor := 0
	for i, q := range queue {
		if _, ok := rec.Answer(q.ID); !ok {
			cursor = i
			break
		}
	}
	return Session{
		Label:   label,
		Section: section,
		Queue:   queue,
		Cursor:  cursor,
	}
}

// Current returns the question under the cursor.
func (s Session) Current() bank.Question {
	return s.Queue[s.Cursor]
}

// State derives the session state from the record.
func (s Session) State(rec progress.Record) State {
	if s.done {
		return Complete
	}
	if _, ok := rec.Answer(s.Current().ID); ok {
		return Answered
	}
	return AwaitingAnswer
}

// Synthetic reports whether this queue is a retry subset that can
// never mark a real section complete.
func (s Session) Synthetic() bool {
	return s.Section == ""
}

// Submit records an answer for the current question. It is a silent
// no-op unless the session is awaiting an answer for exactly this
// question id, the id has no recorded answer yet (first write wins),
// and the choice is a valid option index. The updated record and
// whether the submission applied are returned; the caller persists.
func (s Session) Submit(rec progress.Record, questionID, choice int) (progress.Record, bool) {
	if s.done {
		return rec, false
	}
	q := s.Current()
	if q.ID != questionID {
		return rec, false
	}
	if _, ok := rec.Answer(q.ID); ok {
		return rec, false
	}
	if choice < 0 || choice >= len(q.Options) {
		return rec, false
	}
	return rec.WithAnswer(q.ID, choice), true
}

// Advance moves to the next question. Legal only from Answered; at the
// last index the session transitions to Complete instead.
func (s Session) Advance(rec progress.Record) Session {
	if s.State(rec) != Answered {
		return s
	}
	if s.Cursor == len(s.Queue)-1 {
		s.done = true
		return s
	}
	s.Cursor++
	return s
}

// Retreat moves back one question. Answered questions stay locked; the
// learner can review but never edit.
func (s Session) Retreat() Session {
	if s.Cursor > 0 {
		s.Cursor--
		s.done = false
	}
	return s
}
