package mutate

import (
	"strings"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

// SavePlan overwrites today's plan. Task fields are trimmed; Notes is kept
// verbatim so intentional whitespace and newlines survive.
func SavePlan(db *store.DB, critical string, important [3]string, minor [5]string, notes string) {
	if db == nil {
		return
	}
	db.Today.Critical = strings.TrimSpace(critical)
	for i := range important {
		db.Today.Important[i] = strings.TrimSpace(important[i])
	}
	for i := range minor {
		db.Today.Minor[i] = strings.TrimSpace(minor[i])
	}
	db.Today.Notes = notes
}

// FindOrCreateMetric returns the record for a date key, creating it with
// default values on first use: numeric and mood fields unset (nil), moved
// and criticalDone false, note empty. The returned pointer aliases
// db.Metrics; use it before the next append.
func FindOrCreateMetric(db *store.DB, date string) *model.MetricRecord {
	if db == nil {
		return nil
	}
	if rec, ok := db.FindMetric(date); ok {
		return rec
	}
	db.Metrics = append(db.Metrics, model.MetricRecord{Date: date})
	return &db.Metrics[len(db.Metrics)-1]
}

// MarkCriticalDone records that today's critical task was completed.
// Calling it twice for the same date keeps a single record.
func MarkCriticalDone(db *store.DB, date string) *model.MetricRecord {
	rec := FindOrCreateMetric(db, date)
	if rec == nil {
		return nil
	}
	rec.CriticalDone = true
	return rec
}

// MetricUpdate carries the fields of a metric log entry. Nil pointers leave
// the stored value untouched.
type MetricUpdate struct {
	Sleep        *float64
	Energy       *float64
	Focus        *float64
	Moved        *bool
	CriticalDone *bool
	Mood         *string
	Note         *string
}

// LogMetrics applies an update to the record for date, creating it lazily.
func LogMetrics(db *store.DB, date string, up MetricUpdate) *model.MetricRecord {
	rec := FindOrCreateMetric(db, date)
	if rec == nil {
		return nil
	}
	if up.Sleep != nil {
		rec.Sleep = up.Sleep
	}
	if up.Energy != nil {
		rec.Energy = up.Energy
	}
	if up.Focus != nil {
		rec.Focus = up.Focus
	}
	if up.Moved != nil {
		rec.Moved = *up.Moved
	}
	if up.CriticalDone != nil {
		rec.CriticalDone = *up.CriticalDone
	}
	if up.Mood != nil {
		mood := strings.TrimSpace(*up.Mood)
		rec.Mood = &mood
	}
	if up.Note != nil {
		rec.Note = *up.Note
	}
	return rec
}
