package store

import (
	"context"
	"os"
	"path/filepath"

	"focusday-cli/internal/model"
)

// DB is the whole planning state for one workspace. It is loaded once per
// session, mutated in place, and written back wholesale after every mutation.
type DB struct {
	Version   int                   `json:"version"`
	Inbox     []model.InboxItem     `json:"inbox"`
	Incubator []model.IncubatorItem `json:"incubator"`
	Projects  []model.Project       `json:"projects"`
	Blocks    []model.FocusBlock    `json:"blocks"`
	Today     model.DailyPlan       `json:"today"`
	Metrics   []model.MetricRecord  `json:"metrics"`
}

type Store struct {
	Dir string
}

// NewDB returns a default-initialized empty state. This is also what Load
// falls back to when nothing is stored or the snapshot is unreadable.
func NewDB() *DB {
	db := &DB{Version: 1}
	db.normalize()
	return db
}

// normalize keeps collections non-nil so callers and the snapshot writer
// never have to distinguish nil from empty.
func (db *DB) normalize() {
	if db.Version == 0 {
		db.Version = 1
	}
	if db.Inbox == nil {
		db.Inbox = []model.InboxItem{}
	}
	if db.Incubator == nil {
		db.Incubator = []model.IncubatorItem{}
	}
	if db.Projects == nil {
		db.Projects = []model.Project{}
	}
	if db.Blocks == nil {
		db.Blocks = []model.FocusBlock{}
	}
	if db.Metrics == nil {
		db.Metrics = []model.MetricRecord{}
	}
}

// FindMetric returns the record for a date key, if one exists.
// The pointer aliases the Metrics slice; don't hold it across appends.
func (db *DB) FindMetric(date string) (*model.MetricRecord, bool) {
	for i := range db.Metrics {
		if db.Metrics[i].Date == date {
			return &db.Metrics[i], true
		}
	}
	return nil, false
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, "state.sqlite")
}

func (s Store) Load() (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	db, err := s.loadSQLite(context.Background())
	if err != nil {
		// An unreadable snapshot must not block the session; start from a
		// blank state and let the next save rewrite it.
		return NewDB(), nil
	}
	return db, nil
}

func (s Store) Save(db *DB) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	return s.saveSQLite(context.Background(), db)
}
