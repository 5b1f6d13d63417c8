package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"focusday-cli/internal/model"
)

func sampleDB() *DB {
	db := NewDB()
	at := time.Date(2026, 3, 9, 8, 30, 0, 0, time.UTC)
	db.Inbox = append(db.Inbox, model.InboxItem{Text: "call the bank", CapturedAt: at, Kind: model.KindCapture})
	db.Incubator = append(db.Incubator, model.IncubatorItem{Title: "learn sketching", CapturedAt: at, Note: "Captured manually"})
	db.Projects = append(db.Projects, model.Project{Title: "Garden shed", Purpose: "storage", Next: "buy planks", CreatedAt: at})
	db.Blocks = append(db.Blocks, model.FocusBlock{Mode: model.ModeBuild, Minutes: 90})
	db.Today = model.DailyPlan{
		Critical:  "ship release",
		Important: [3]string{"review PR", "", ""},
		Minor:     [5]string{"email", "", "", "", ""},
		Notes:     "- leftover\n- another",
	}
	sleep := 7.5
	db.Metrics = append(db.Metrics, model.MetricRecord{Date: "2026-03-09", Sleep: &sleep, CriticalDone: true})
	return db
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	want := sampleDB()
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestLoadMissingYieldsEmptyState(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	db, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Inbox) != 0 || len(db.Incubator) != 0 || len(db.Projects) != 0 || len(db.Blocks) != 0 || len(db.Metrics) != 0 {
		t.Fatalf("expected empty collections; got %#v", db)
	}
	if db.Today != (model.DailyPlan{}) {
		t.Fatalf("expected blank plan; got %#v", db.Today)
	}
	if db.Version != 1 {
		t.Fatalf("expected version 1; got %d", db.Version)
	}
}

func TestSaveAfterLoadIsNoOp(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Save(sampleDB()); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	second, err := s.Load()
	if err != nil {
		t.Fatalf("re-load: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("save(load()) mutated the snapshot:\n first: %#v\nsecond: %#v", first, second)
	}
}

func TestLoadCorruptSnapshotFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "state.sqlite"), []byte("this is not a database"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	s := Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if len(db.Inbox) != 0 || db.Version != 1 {
		t.Fatalf("expected default empty state; got %#v", db)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("FOCUSDAY_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	if cfg.CurrentWorkspace != "" {
		t.Fatalf("expected empty default; got %q", cfg.CurrentWorkspace)
	}

	cfg.CurrentWorkspace = "home"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if got.CurrentWorkspace != "home" {
		t.Fatalf("expected home; got %q", got.CurrentWorkspace)
	}

	if _, err := WorkspaceDir("home"); err != nil {
		t.Fatalf("workspace dir: %v", err)
	}
	if _, err := WorkspaceDir("bad name!"); err == nil {
		t.Fatalf("expected invalid workspace name error")
	}
}
