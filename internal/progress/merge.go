package progress

// Merge combines a local record with a remote snapshot of the same
// learner. remote == nil means the remote document is absent and the
// local record comes back unchanged (as a copy).
//
// Both maps are key-unioned; on a shared question id the local answer
// wins, since every local mutation is applied before any merge in the
// same session. The same id answered differently on two devices without
// an intervening sync therefore keeps one side silently. That is the
// accepted consistency model, not a defect.
//
// Merge is idempotent and never drops a key from either side.
func Merge(local Record, remote *Record) Record {
	if remote == nil {
		return local.Clone()
	}

	merged := remote.Clone()
	if merged.Answers == nil {
		merged.Answers = make(map[int]int)
	}
	if merged.Completed == nil {
		merged.Completed = make(map[string]bool)
	}

	for id, choice := range local.Answers {
		merged.Answers[id] = choice
	}
	for section := range local.Completed {
		merged.Completed[section] = true
	}

	return merged
}
