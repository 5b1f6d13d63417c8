package mutate

import (
	"strings"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

// NoteManual marks incubator items the user parked directly.
const NoteManual = "Captured manually"

// AddIncubatorItem parks an idea without pressure to act on it.
func AddIncubatorItem(db *store.DB, title string, now time.Time) (model.IncubatorItem, error) {
	if db == nil {
		return model.IncubatorItem{}, nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.IncubatorItem{}, ErrEmptyTitle
	}
	it := model.IncubatorItem{Title: title, CapturedAt: now, Note: NoteManual}
	db.Incubator = append(db.Incubator, it)
	return it, nil
}

// DeleteIncubatorItem removes the item at index.
func DeleteIncubatorItem(db *store.DB, index int) bool {
	if db == nil || index < 0 || index >= len(db.Incubator) {
		return false
	}
	db.Incubator = append(db.Incubator[:index], db.Incubator[index+1:]...)
	return true
}

// ActivateIncubatorItem turns a parked idea into an active project, subject
// to the same capacity cap as AddProject. On refusal both collections are
// left unchanged.
func ActivateIncubatorItem(db *store.DB, index int, now time.Time) (model.Project, bool, error) {
	if db == nil || index < 0 || index >= len(db.Incubator) {
		return model.Project{}, false, nil
	}
	if len(db.Projects) >= model.MaxActiveProjects {
		return model.Project{}, false, ErrProjectCap
	}
	p := model.Project{Title: db.Incubator[index].Title, CreatedAt: now}
	db.Projects = append(db.Projects, p)
	db.Incubator = append(db.Incubator[:index], db.Incubator[index+1:]...)
	return p, true, nil
}
