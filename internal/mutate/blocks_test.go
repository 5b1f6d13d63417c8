package mutate

import (
	"testing"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

func TestAddBlockDefaults(t *testing.T) {
	db := store.NewDB()
	b := AddBlock(db)
	if b.Mode != model.ModeCreate || b.Minutes != model.BlockDefaultMinutes {
		t.Fatalf("unexpected defaults: %#v", b)
	}
	if len(db.Blocks) != 1 {
		t.Fatalf("expected block appended")
	}
}

func TestSetBlockMode(t *testing.T) {
	db := store.NewDB()
	AddBlock(db)

	if _, err := SetBlockMode(db, 0, model.BlockMode("rest")); err != ErrInvalidMode {
		t.Fatalf("expected ErrInvalidMode; got %v", err)
	}
	changed, err := SetBlockMode(db, 0, model.ModeCare)
	if err != nil || !changed {
		t.Fatalf("expected change; got changed=%v err=%v", changed, err)
	}
	if db.Blocks[0].Mode != model.ModeCare {
		t.Fatalf("mode not applied: %v", db.Blocks[0].Mode)
	}
	if changed, err := SetBlockMode(db, 7, model.ModeBuild); err != nil || changed {
		t.Fatalf("out of range must be a silent no-op; got changed=%v err=%v", changed, err)
	}
}

func TestSetBlockMinutes(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"90", 90},
		{" 45 ", 45},
		{"5", 15},
		{"0", 15},
		{"-30", 15},
		{"999", 180},
		{"180", 180},
		{"15", 15},
		{"", 60},
		{"abc", 60},
	}
	for _, tt := range tests {
		db := store.NewDB()
		AddBlock(db)
		if got, ok := SetBlockMinutes(db, 0, tt.raw); !ok || got != tt.want {
			t.Fatalf("SetBlockMinutes(%q) = %d ok=%v; want %d", tt.raw, got, ok, tt.want)
		}
		if db.Blocks[0].Minutes != tt.want {
			t.Fatalf("minutes not applied for %q: %d", tt.raw, db.Blocks[0].Minutes)
		}
	}
}

func TestDeleteBlockShiftsIndices(t *testing.T) {
	db := store.NewDB()
	AddBlock(db)
	AddBlock(db)
	AddBlock(db)
	db.Blocks[0].Minutes = 15
	db.Blocks[1].Minutes = 30
	db.Blocks[2].Minutes = 45

	if !DeleteBlock(db, 0) {
		t.Fatalf("expected delete to succeed")
	}
	if len(db.Blocks) != 2 || db.Blocks[0].Minutes != 30 || db.Blocks[1].Minutes != 45 {
		t.Fatalf("expected [30 45]; got %#v", db.Blocks)
	}
	if DeleteBlock(db, 2) {
		t.Fatalf("expected stale index to be a no-op")
	}
}
