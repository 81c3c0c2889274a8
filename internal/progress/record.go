// Package progress holds the per-learner progress data model: recorded
// answers, completed sections, the local/remote merge rule, and the
// derived statistics computed from a record and a question slice.
package progress

// Record is one learner's persisted progress. Records are values: every
// mutation helper returns a new Record and never touches the receiver's
// maps, so a record handed to a screen can never alias the one sitting
// in the store.
type Record struct {
	// Answers maps question id to the chosen option index.
	Answers map[int]int `json:"answers"`

	// Completed is the set of section names finished end to end.
	Completed map[string]bool `json:"completed"`
}

// NewRecord returns an empty progress record.
func NewRecord() Record {
	return Record{
		Answers:   make(map[int]int),
		Completed: make(map[string]bool),
	}
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	c := Record{
		Answers:   make(map[int]int, len(r.Answers)),
		Completed: make(map[string]bool, len(r.Completed)),
	}
	for id, choice := range r.Answers {
		c.Answers[id] = choice
	}
	for section := range r.Completed {
		c.Completed[section] = true
	}
	return c
}

// Answer returns the recorded choice for a question id.
func (r Record) Answer(id int) (choice int, ok bool) {
	choice, ok = r.Answers[id]
	return choice, ok
}

// WithAnswer records a choice for a question id. First write wins: if the
// id already has an answer the record is returned unchanged.
func (r Record) WithAnswer(id, choice int) Record {
	if _, ok := r.Answers[id]; ok {
		return r
	}
	c := r.Clone()
	c.Answers[id] = choice
	return c
}

// WithoutAnswers deletes the answers for the given question ids, freeing
// them to be re-answered. Used only by the retry-wrong flow.
func (r Record) WithoutAnswers(ids []int) Record {
	c := r.Clone()
	for _, id := range ids {
		delete(c.Answers, id)
	}
	return c
}

// WithCompleted marks a section as completed.
func (r Record) WithCompleted(section string) Record {
	c := r.Clone()
	c.Completed[section] = true
	return c
}
