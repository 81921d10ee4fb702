package engine

import (
	"sort"
	"time"

	"github.com/lumen-app/lumen/internal/models"
)

// ComputeStreak returns the length of the consecutive-day run ending at
// today or yesterday. A history whose most recent entry is older than
// yesterday scores 0: the streak is considered broken lazily at read time,
// no background job resets it.
func ComputeStreak(history []string, today string) int {
	if len(history) == 0 {
		return 0
	}

	t, err := time.Parse(models.DayFormat, today)
	if err != nil {
		return 0
	}
	yesterday := t.AddDate(0, 0, -1).Format(models.DayFormat)

	// ISO dates sort lexicographically, newest first after reversing.
	sorted := make([]string, len(history))
	copy(sorted, history)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	if sorted[0] != today && sorted[0] != yesterday {
		return 0
	}

	streak := 0
	expect, err := time.Parse(models.DayFormat, sorted[0])
	if err != nil {
		return 0
	}
	for _, d := range sorted {
		if d != expect.Format(models.DayFormat) {
			break
		}
		streak++
		expect = expect.AddDate(0, 0, -1)
	}
	return streak
}
