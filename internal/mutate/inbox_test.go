package mutate

import (
	"testing"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

var testNow = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

func dbWithInbox(texts ...string) *store.DB {
	db := store.NewDB()
	for _, txt := range texts {
		db.Inbox = append(db.Inbox, model.InboxItem{Text: txt, CapturedAt: testNow, Kind: model.KindCapture})
	}
	return db
}

func TestAddInboxItem(t *testing.T) {
	db := store.NewDB()

	if _, ok := AddInboxItem(db, "   ", testNow); ok {
		t.Fatalf("expected blank capture to be a no-op")
	}
	if len(db.Inbox) != 0 {
		t.Fatalf("expected empty inbox; got %d", len(db.Inbox))
	}

	it, ok := AddInboxItem(db, "  call the bank  ", testNow)
	if !ok {
		t.Fatalf("expected capture to succeed")
	}
	if it.Text != "call the bank" {
		t.Fatalf("expected trimmed text; got %q", it.Text)
	}
	if it.Kind != model.KindCapture {
		t.Fatalf("expected kind capture; got %q", it.Kind)
	}
	if len(db.Inbox) != 1 {
		t.Fatalf("expected 1 item; got %d", len(db.Inbox))
	}
}

func TestDeleteInboxItemPositional(t *testing.T) {
	db := dbWithInbox("a", "b", "c")

	if !DeleteInboxItem(db, 1) {
		t.Fatalf("expected delete to succeed")
	}
	if len(db.Inbox) != 2 {
		t.Fatalf("expected length 2; got %d", len(db.Inbox))
	}
	if db.Inbox[0].Text != "a" || db.Inbox[1].Text != "c" {
		t.Fatalf("expected [a c]; got [%s %s]", db.Inbox[0].Text, db.Inbox[1].Text)
	}

	// Indices shift after a deletion; index 1 is now "c".
	if !DeleteInboxItem(db, 1) {
		t.Fatalf("expected second delete to succeed")
	}
	if db.Inbox[0].Text != "a" {
		t.Fatalf("expected [a]; got %q", db.Inbox[0].Text)
	}

	for _, idx := range []int{-1, 5} {
		if DeleteInboxItem(db, idx) {
			t.Fatalf("expected out-of-range delete at %d to be a no-op", idx)
		}
	}
	if len(db.Inbox) != 1 {
		t.Fatalf("out-of-range delete changed length; got %d", len(db.Inbox))
	}
}

func TestPromoteToIncubatorKeepsTimestamp(t *testing.T) {
	db := dbWithInbox("big idea")
	captured := db.Inbox[0].CapturedAt

	it, ok := PromoteToIncubator(db, 0)
	if !ok {
		t.Fatalf("expected promote to succeed")
	}
	if len(db.Inbox) != 0 {
		t.Fatalf("expected item removed from inbox")
	}
	if len(db.Incubator) != 1 {
		t.Fatalf("expected item in incubator")
	}
	if it.Title != "big idea" {
		t.Fatalf("expected title copied; got %q", it.Title)
	}
	if !it.CapturedAt.Equal(captured) {
		t.Fatalf("expected original capture time preserved")
	}
	if it.Note != NoteFromInbox {
		t.Fatalf("expected note %q; got %q", NoteFromInbox, it.Note)
	}
}

func TestPromoteToTaskFillsFirstEmptySlot(t *testing.T) {
	db := dbWithInbox("water plants")
	db.Today.Minor = [5]string{"a", "", "b", "", ""}
	db.Today.Notes = "keep me"

	res, ok := PromoteToTask(db, 0)
	if !ok {
		t.Fatalf("expected promote to succeed")
	}
	if res.Slot != 1 {
		t.Fatalf("expected lowest empty slot 1; got %d", res.Slot)
	}
	if db.Today.Minor[1] != "water plants" {
		t.Fatalf("slot not filled: %q", db.Today.Minor[1])
	}
	if db.Today.Notes != "keep me" {
		t.Fatalf("notes should be untouched; got %q", db.Today.Notes)
	}
	if len(db.Inbox) != 0 {
		t.Fatalf("expected capture removed from inbox")
	}
}

func TestPromoteToTaskOverflowsToNotes(t *testing.T) {
	db := dbWithInbox("water plants", "feed cat")
	db.Today.Minor = [5]string{"1", "2", "3", "4", "5"}

	res, ok := PromoteToTask(db, 0)
	if !ok {
		t.Fatalf("expected promote to succeed")
	}
	if res.Slot != -1 {
		t.Fatalf("expected notes overflow; got slot %d", res.Slot)
	}
	if db.Today.Notes != "- water plants" {
		t.Fatalf("expected bullet without leading newline; got %q", db.Today.Notes)
	}
	if db.Today.Minor != [5]string{"1", "2", "3", "4", "5"} {
		t.Fatalf("minor slots must not change; got %v", db.Today.Minor)
	}

	// Second overflow appends on a new line.
	if _, ok := PromoteToTask(db, 0); !ok {
		t.Fatalf("expected second promote to succeed")
	}
	if db.Today.Notes != "- water plants\n- feed cat" {
		t.Fatalf("expected newline-separated bullets; got %q", db.Today.Notes)
	}
}
