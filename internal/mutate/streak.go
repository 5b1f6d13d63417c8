package mutate

import (
	"time"

	"focusday-cli/internal/model"
)

// streakScanLimit caps the backward walk. The streak is a motivator, not an
// archive query; a year of consecutive days is reported as 365 even if the
// data goes further back. Documented limit, do not silently extend.
const streakScanLimit = 365

// CriticalStreak counts consecutive trailing calendar days, ending today,
// whose metric record has the critical task marked done. A missing record
// counts as not done and ends the streak, so the result is 0 whenever today
// itself is not done yet.
func CriticalStreak(metrics []model.MetricRecord, today time.Time) int {
	done := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		done[m.Date] = m.CriticalDone
	}

	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	count := 0
	for i := 0; i < streakScanLimit; i++ {
		if !done[model.DateKey(d)] {
			break
		}
		count++
		d = d.AddDate(0, 0, -1)
	}
	return count
}
