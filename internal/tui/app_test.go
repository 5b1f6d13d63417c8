package tui

import (
	"strings"
	"testing"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"
	"focusday-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, db *store.DB) appModel {
	t.Helper()
	if db == nil {
		db = store.NewDB()
	}
	m := newAppModel(store.Store{Dir: t.TempDir()}, db)
	m.now = func() time.Time { return testNow }
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	return mm.(appModel)
}

func press(m appModel, keys ...string) appModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		mm, _ := m.Update(msg)
		m = mm.(appModel)
	}
	return m
}

func typeText(m appModel, s string) appModel {
	for _, r := range s {
		mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mm.(appModel)
	}
	return m
}

func TestSectionCycling(t *testing.T) {
	m := newTestModel(t, nil)
	if m.section != sectionToday {
		t.Fatalf("expected initial section Today, got %v", m.section)
	}
	m = press(m, "tab")
	if m.section != sectionInbox {
		t.Fatalf("expected Inbox after tab, got %v", m.section)
	}
	m = press(m, "shift+tab", "shift+tab")
	if m.section != sectionIncubator {
		t.Fatalf("expected wrap to Incubator, got %v", m.section)
	}
	m = press(m, "3")
	if m.section != sectionBlocks {
		t.Fatalf("expected Blocks via number key, got %v", m.section)
	}
}

func TestCaptureAddsInboxItem(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(m, "c")
	if m.mode != modeCapture {
		t.Fatalf("expected capture mode after c")
	}
	m = typeText(m, "call the bank")
	m = press(m, "enter")

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after enter")
	}
	if len(m.db.Inbox) != 1 || m.db.Inbox[0].Text != "call the bank" {
		t.Fatalf("inbox = %+v", m.db.Inbox)
	}
	if m.db.Inbox[0].CapturedAt != testNow {
		t.Fatalf("expected capture stamped with now")
	}
}

func TestCaptureEscDiscards(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "c")
	m = typeText(m, "oops")
	m = press(m, "esc")
	if len(m.db.Inbox) != 0 {
		t.Fatalf("expected esc to discard capture, got %+v", m.db.Inbox)
	}
}

func TestCaptureBlankIsNoOp(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "c")
	m = typeText(m, "   ")
	m = press(m, "enter")
	if len(m.db.Inbox) != 0 {
		t.Fatalf("expected blank capture to be a no-op")
	}
}

func TestInboxCursorTargetsNewestFirst(t *testing.T) {
	db := store.NewDB()
	db.Inbox = []model.InboxItem{
		{Text: "old", CapturedAt: testNow.Add(-time.Hour), Kind: model.KindCapture},
		{Text: "new", CapturedAt: testNow, Kind: model.KindCapture},
	}
	m := newTestModel(t, db)
	m = press(m, "2") // inbox section

	// Cursor 0 is the newest item; deleting it must keep "old".
	m = press(m, "d")
	if len(m.db.Inbox) != 1 || m.db.Inbox[0].Text != "old" {
		t.Fatalf("expected newest deleted, inbox = %+v", m.db.Inbox)
	}
}

func TestInboxPromoteToIncubator(t *testing.T) {
	captured := testNow.Add(-2 * time.Hour)
	db := store.NewDB()
	db.Inbox = []model.InboxItem{{Text: "learn sketching", CapturedAt: captured, Kind: model.KindCapture}}
	m := newTestModel(t, db)
	m = press(m, "2", "i")

	if len(m.db.Inbox) != 0 {
		t.Fatalf("expected inbox emptied")
	}
	if len(m.db.Incubator) != 1 {
		t.Fatalf("expected one incubator item")
	}
	it := m.db.Incubator[0]
	if it.Title != "learn sketching" || it.Note != mutate.NoteFromInbox || !it.CapturedAt.Equal(captured) {
		t.Fatalf("incubator item = %+v", it)
	}
}

func TestBlocksAddModeAndMinutes(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "3", "a")

	if len(m.db.Blocks) != 1 {
		t.Fatalf("expected one block")
	}
	if b := m.db.Blocks[0]; b.Mode != model.ModeCreate || b.Minutes != model.BlockDefaultMinutes {
		t.Fatalf("block defaults = %+v", b)
	}

	m = press(m, "m")
	if m.db.Blocks[0].Mode != model.ModeBuild {
		t.Fatalf("expected mode to cycle to build, got %s", m.db.Blocks[0].Mode)
	}

	m = press(m, "+", "+")
	if m.db.Blocks[0].Minutes != 90 {
		t.Fatalf("expected 90 minutes, got %d", m.db.Blocks[0].Minutes)
	}

	// Holding "-" can never go below the floor.
	for i := 0; i < 10; i++ {
		m = press(m, "-")
	}
	if m.db.Blocks[0].Minutes != model.BlockMinMinutes {
		t.Fatalf("expected clamp to %d, got %d", model.BlockMinMinutes, m.db.Blocks[0].Minutes)
	}
}

func TestProjectAddViaPrompt(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "4", "a")
	if m.mode != modePrompt {
		t.Fatalf("expected prompt mode")
	}

	m = typeText(m, "Garden")
	m = press(m, "enter")
	m = typeText(m, "grow food")
	m = press(m, "enter")
	m = typeText(m, "buy seeds")
	m = press(m, "enter")

	if len(m.db.Projects) != 1 {
		t.Fatalf("expected one project, got %+v", m.db.Projects)
	}
	p := m.db.Projects[0]
	if p.Title != "Garden" || p.Purpose != "grow food" || p.Next != "buy seeds" {
		t.Fatalf("project = %+v", p)
	}
	if !p.CreatedAt.Equal(testNow) {
		t.Fatalf("expected CreatedAt stamped with now")
	}
}

func TestProjectEditEscKeepsField(t *testing.T) {
	db := store.NewDB()
	db.Projects = []model.Project{{Title: "Garden", Purpose: "grow food", Next: "buy seeds", CreatedAt: testNow.Add(-48 * time.Hour)}}
	m := newTestModel(t, db)
	m = press(m, "4", "e")

	// New title, skip purpose, clear next.
	m.input.SetValue("")
	m = typeText(m, "Garden v2")
	m = press(m, "enter", "esc")
	m.input.SetValue("")
	m = press(m, "enter")

	p := m.db.Projects[0]
	if p.Title != "Garden v2" {
		t.Fatalf("title = %q", p.Title)
	}
	if p.Purpose != "grow food" {
		t.Fatalf("expected skipped purpose retained, got %q", p.Purpose)
	}
	if p.Next != "" {
		t.Fatalf("expected next cleared, got %q", p.Next)
	}
	if !p.CreatedAt.Equal(testNow.Add(-48 * time.Hour)) {
		t.Fatalf("expected CreatedAt preserved")
	}
}

func TestProjectCapFlashesRefusal(t *testing.T) {
	db := store.NewDB()
	for _, title := range []string{"a", "b", "c"} {
		db.Projects = append(db.Projects, model.Project{Title: title, CreatedAt: testNow})
	}
	m := newTestModel(t, db)
	m = press(m, "4", "a")

	if m.mode != modeBrowse {
		t.Fatalf("expected refusal without entering prompt mode")
	}
	if !m.flashWarn || m.flash == "" {
		t.Fatalf("expected warning flash, got %q", m.flash)
	}
	if len(m.db.Projects) != 3 {
		t.Fatalf("expected projects unchanged")
	}
}

func TestIncubatorActivateAtCapFlashes(t *testing.T) {
	db := store.NewDB()
	for _, title := range []string{"a", "b", "c"} {
		db.Projects = append(db.Projects, model.Project{Title: title, CreatedAt: testNow})
	}
	db.Incubator = []model.IncubatorItem{{Title: "idea", CapturedAt: testNow, Note: "Captured manually"}}
	m := newTestModel(t, db)
	m = press(m, "5", "enter")

	if !m.flashWarn {
		t.Fatalf("expected warning flash on cap refusal")
	}
	if len(m.db.Incubator) != 1 || len(m.db.Projects) != 3 {
		t.Fatalf("expected state unchanged on refusal")
	}
}

func TestProjectPauseMovesToIncubator(t *testing.T) {
	db := store.NewDB()
	db.Projects = []model.Project{{Title: "Garden", CreatedAt: testNow}}
	m := newTestModel(t, db)
	m = press(m, "4", "p")

	if len(m.db.Projects) != 0 {
		t.Fatalf("expected project removed")
	}
	if len(m.db.Incubator) != 1 || m.db.Incubator[0].Note != mutate.NotePaused {
		t.Fatalf("incubator = %+v", m.db.Incubator)
	}
}

func TestMarkCriticalDoneUpdatesStreak(t *testing.T) {
	db := store.NewDB()
	db.Metrics = []model.MetricRecord{{Date: "2026-03-08", CriticalDone: true}}
	m := newTestModel(t, db)
	m = press(m, "x")

	rec, ok := m.db.FindMetric("2026-03-09")
	if !ok || !rec.CriticalDone {
		t.Fatalf("expected today's record marked done")
	}
	if !strings.Contains(m.flash, "streak 2d") {
		t.Fatalf("flash = %q", m.flash)
	}
}

func TestPlanPromptSkipsKeepPriorValues(t *testing.T) {
	db := store.NewDB()
	db.Today = model.DailyPlan{Critical: "ship report", Notes: "- keep this"}
	m := newTestModel(t, db)
	m = press(m, "e")

	// Skip every field; the plan must come through unchanged.
	for i := 0; i < 10; i++ {
		m = press(m, "esc")
	}
	if m.mode != modeBrowse {
		t.Fatalf("expected prompt finished")
	}
	if m.db.Today.Critical != "ship report" || m.db.Today.Notes != "- keep this" {
		t.Fatalf("plan = %+v", m.db.Today)
	}
}

func TestFlashClearsOnNextKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(m, "3", "a")
	if m.flash == "" {
		t.Fatalf("expected flash after adding block")
	}
	m = press(m, "j")
	if m.flash != "" {
		t.Fatalf("expected flash cleared, got %q", m.flash)
	}
}

func TestViewShowsSectionsAndHints(t *testing.T) {
	db := store.NewDB()
	db.Today = model.DailyPlan{Critical: "ship report"}
	m := newTestModel(t, db)

	out := m.View()
	if !strings.Contains(out, "ship report") {
		t.Fatalf("expected critical task in view:\n%s", out)
	}
	if !strings.Contains(out, "Today") || !strings.Contains(out, "Incubator") {
		t.Fatalf("expected section tabs in view")
	}
	if !strings.Contains(out, "x critical done") {
		t.Fatalf("expected key hints in view")
	}
}
