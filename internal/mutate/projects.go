package mutate

import (
	"strings"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

// NotePaused marks incubator items that were paused out of the active list.
const NotePaused = "Paused from Active"

// AddProject creates an active project. The cap is checked before insert, so
// a refusal never leaves a partial write. Purpose and next action are
// optional.
func AddProject(db *store.DB, title, purpose, next string, now time.Time) (model.Project, error) {
	if db == nil {
		return model.Project{}, nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Project{}, ErrEmptyTitle
	}
	if len(db.Projects) >= model.MaxActiveProjects {
		return model.Project{}, ErrProjectCap
	}
	p := model.Project{
		Title:     title,
		Purpose:   strings.TrimSpace(purpose),
		Next:      strings.TrimSpace(next),
		CreatedAt: now,
	}
	db.Projects = append(db.Projects, p)
	return p, nil
}

// EditProject replaces a project's editable fields in place. A nil field
// means the edit for that field was cancelled and the prior value stays.
// CreatedAt is never touched.
func EditProject(db *store.DB, index int, title, purpose, next *string) bool {
	if db == nil || index < 0 || index >= len(db.Projects) {
		return false
	}
	p := &db.Projects[index]
	if title != nil {
		p.Title = strings.TrimSpace(*title)
	}
	if purpose != nil {
		p.Purpose = strings.TrimSpace(*purpose)
	}
	if next != nil {
		p.Next = strings.TrimSpace(*next)
	}
	return true
}

// DeleteProject removes the project at index.
func DeleteProject(db *store.DB, index int) bool {
	if db == nil || index < 0 || index >= len(db.Projects) {
		return false
	}
	db.Projects = append(db.Projects[:index], db.Projects[index+1:]...)
	return true
}

// PauseProject moves an active project to the incubator, freeing one
// capacity slot. Only the title survives; purpose and next action are work
// state, not idea state.
func PauseProject(db *store.DB, index int, now time.Time) (model.IncubatorItem, bool) {
	if db == nil || index < 0 || index >= len(db.Projects) {
		return model.IncubatorItem{}, false
	}
	it := model.IncubatorItem{Title: db.Projects[index].Title, CapturedAt: now, Note: NotePaused}
	db.Incubator = append(db.Incubator, it)
	db.Projects = append(db.Projects[:index], db.Projects[index+1:]...)
	return it, true
}
