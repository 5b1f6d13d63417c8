package mutate

import (
	"strings"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

// NoteFromInbox marks incubator items that came out of the capture inbox.
const NoteFromInbox = "Desde INBOX"

// AddInboxItem appends a capture. Blank text is a silent no-op.
func AddInboxItem(db *store.DB, text string, now time.Time) (model.InboxItem, bool) {
	text = strings.TrimSpace(text)
	if db == nil || text == "" {
		return model.InboxItem{}, false
	}
	it := model.InboxItem{Text: text, CapturedAt: now, Kind: model.KindCapture}
	db.Inbox = append(db.Inbox, it)
	return it, true
}

// DeleteInboxItem removes the capture at index. Out of range is a no-op.
func DeleteInboxItem(db *store.DB, index int) bool {
	if db == nil || index < 0 || index >= len(db.Inbox) {
		return false
	}
	db.Inbox = append(db.Inbox[:index], db.Inbox[index+1:]...)
	return true
}

// PromoteToIncubator moves a capture into the incubator, keeping its
// original capture timestamp.
func PromoteToIncubator(db *store.DB, index int) (model.IncubatorItem, bool) {
	if db == nil || index < 0 || index >= len(db.Inbox) {
		return model.IncubatorItem{}, false
	}
	src := db.Inbox[index]
	it := model.IncubatorItem{Title: src.Text, CapturedAt: src.CapturedAt, Note: NoteFromInbox}
	db.Incubator = append(db.Incubator, it)
	db.Inbox = append(db.Inbox[:index], db.Inbox[index+1:]...)
	return it, true
}

// PromoteTaskResult says where a promoted capture landed: Slot is the index
// into the minor-task array, or -1 when the text went to the notes overflow.
type PromoteTaskResult struct {
	Text string
	Slot int
}

// PromoteToTask turns a capture into a minor task for today. It fills the
// first empty minor slot; when all five are taken, the text is appended to
// the plan notes as a markdown bullet. Either way the capture leaves the
// inbox.
func PromoteToTask(db *store.DB, index int) (PromoteTaskResult, bool) {
	if db == nil || index < 0 || index >= len(db.Inbox) {
		return PromoteTaskResult{}, false
	}
	text := db.Inbox[index].Text

	res := PromoteTaskResult{Text: text, Slot: -1}
	for i := range db.Today.Minor {
		if db.Today.Minor[i] == "" {
			db.Today.Minor[i] = text
			res.Slot = i
			break
		}
	}
	if res.Slot == -1 {
		if db.Today.Notes != "" {
			db.Today.Notes += "\n"
		}
		db.Today.Notes += "- " + text
	}

	db.Inbox = append(db.Inbox[:index], db.Inbox[index+1:]...)
	return res, true
}
