package progress

import (
	"sort"

	"github.com/oguzk/denizci/internal/bank"
)

// LeaderboardRow is one ranked learner.
type LeaderboardRow struct {
	Name       string
	Answered   int
	Correct    int
	Percentage int
}

// Leaderboard ranks all known learners by correct-answer count, ties
// broken by accuracy percentage. Exact ties keep name order, which makes
// the output deterministic.
func Leaderboard(records map[string]Record, questions []bank.Question) []LeaderboardRow {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]LeaderboardRow, 0, len(names))
	for _, name := range names {
		s := Summarize(records[name], questions)
		rows = append(rows, LeaderboardRow{
			Name:       name,
			Answered:   s.Answered,
			Correct:    s.Correct,
			Percentage: s.Percentage,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Correct != rows[j].Correct {
			return rows[i].Correct > rows[j].Correct
		}
		return rows[i].Percentage > rows[j].Percentage
	})

	return rows
}
