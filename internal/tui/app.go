package tui

import (
	"errors"
	"strconv"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"
	"focusday-cli/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type section int

const (
	sectionToday section = iota
	sectionInbox
	sectionBlocks
	sectionProjects
	sectionIncubator
	sectionCount
)

func (s section) title() string {
	switch s {
	case sectionToday:
		return "Today"
	case sectionInbox:
		return "Inbox"
	case sectionBlocks:
		return "Blocks"
	case sectionProjects:
		return "Projects"
	case sectionIncubator:
		return "Incubator"
	}
	return ""
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeCapture
	modePrompt
)

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	section section
	cursor  [sectionCount]int

	mode   inputMode
	input  textinput.Model
	prompt *promptFlow

	// flash is the transient status line; cleared on the next keypress.
	flash     string
	flashWarn bool

	now func() time.Time
}

func newAppModel(s store.Store, db *store.DB) appModel {
	in := textinput.New()
	in.Placeholder = "Capture…"
	in.CharLimit = 300
	in.Width = 48

	return appModel{
		store:   s,
		db:      db,
		section: sectionToday,
		input:   in,
		now:     time.Now,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeCapture:
			return m.updateCapture(msg)
		case modePrompt:
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	m.flashWarn = false

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.section = (m.section + 1) % sectionCount
		return m, nil
	case "shift+tab", "left", "h":
		m.section = (m.section + sectionCount - 1) % sectionCount
		return m, nil
	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(msg.String())
		m.section = section(n - 1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "c":
		m.mode = modeCapture
		m.input.Placeholder = "Capture…"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}

	switch m.section {
	case sectionToday:
		return m.updateToday(msg)
	case sectionInbox:
		return m.updateInbox(msg)
	case sectionBlocks:
		return m.updateBlocks(msg)
	case sectionProjects:
		return m.updateProjects(msg)
	case sectionIncubator:
		return m.updateIncubator(msg)
	}
	return m, nil
}

// sectionLen is the number of selectable rows in the current section.
func (m *appModel) sectionLen() int {
	switch m.section {
	case sectionInbox:
		return len(m.db.Inbox)
	case sectionBlocks:
		return len(m.db.Blocks)
	case sectionProjects:
		return len(m.db.Projects)
	case sectionIncubator:
		return len(m.db.Incubator)
	}
	return 0
}

func (m *appModel) moveCursor(delta int) {
	n := m.sectionLen()
	if n == 0 {
		m.cursor[m.section] = 0
		return
	}
	c := m.cursor[m.section] + delta
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	m.cursor[m.section] = c
}

func (m *appModel) clampCursor() {
	n := m.sectionLen()
	if n == 0 {
		m.cursor[m.section] = 0
		return
	}
	if m.cursor[m.section] > n-1 {
		m.cursor[m.section] = n - 1
	}
}

// storageIndex maps the cursor to a slice index. Inbox and incubator render
// newest first, so the cursor counts from the end of the slice.
func (m *appModel) storageIndex() int {
	c := m.cursor[m.section]
	switch m.section {
	case sectionInbox:
		return len(m.db.Inbox) - 1 - c
	case sectionIncubator:
		return len(m.db.Incubator) - 1 - c
	}
	return c
}

func (m *appModel) persist() {
	if err := m.store.Save(m.db); err != nil {
		m.flash = "warning: changes not persisted (" + err.Error() + ")"
		m.flashWarn = true
	}
}

func (m *appModel) setFlash(s string) {
	// A save warning takes precedence over the action confirmation.
	if m.flashWarn {
		return
	}
	m.flash = s
}

func (m appModel) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x":
		date := model.DateKey(m.now())
		mutate.MarkCriticalDone(m.db, date)
		m.persist()
		streak := mutate.CriticalStreak(m.db.Metrics, m.now())
		m.setFlash("critical task done · streak " + strconv.Itoa(streak) + "d")
		return m, nil
	case "e":
		return m.startPlanPrompt()
	}
	return m, nil
}

func (m appModel) updateInbox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.db.Inbox) == 0 {
		return m, nil
	}
	idx := m.storageIndex()
	switch msg.String() {
	case "d":
		if mutate.DeleteInboxItem(m.db, idx) {
			m.clampCursor()
			m.persist()
			m.setFlash("deleted")
		}
	case "i":
		if it, ok := mutate.PromoteToIncubator(m.db, idx); ok {
			m.clampCursor()
			m.persist()
			m.setFlash("moved to incubator: " + it.Title)
		}
	case "t":
		if res, ok := mutate.PromoteToTask(m.db, idx); ok {
			m.clampCursor()
			m.persist()
			if res.Slot >= 0 {
				m.setFlash("added as minor task " + strconv.Itoa(res.Slot+1))
			} else {
				m.setFlash("minor tasks full; appended to notes")
			}
		}
	}
	return m, nil
}

func (m appModel) updateBlocks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		b := mutate.AddBlock(m.db)
		m.cursor[sectionBlocks] = len(m.db.Blocks) - 1
		m.persist()
		m.setFlash("block added: " + b.Mode.Label() + " " + strconv.Itoa(b.Minutes) + "m")
		return m, nil
	}

	if len(m.db.Blocks) == 0 {
		return m, nil
	}
	idx := m.cursor[sectionBlocks]
	switch msg.String() {
	case "m":
		next := nextMode(m.db.Blocks[idx].Mode)
		if _, err := mutate.SetBlockMode(m.db, idx, next); err == nil {
			m.persist()
		}
	case "+", "=":
		m.adjustBlockMinutes(idx, model.BlockMinMinutes)
	case "-":
		m.adjustBlockMinutes(idx, -model.BlockMinMinutes)
	case "d":
		if mutate.DeleteBlock(m.db, idx) {
			m.clampCursor()
			m.persist()
			m.setFlash("block removed")
		}
	}
	return m, nil
}

func nextMode(cur model.BlockMode) model.BlockMode {
	for i, mo := range model.BlockModes {
		if mo == cur {
			return model.BlockModes[(i+1)%len(model.BlockModes)]
		}
	}
	return model.BlockModes[0]
}

// adjustBlockMinutes steps a block's duration by one increment, clamped.
func (m *appModel) adjustBlockMinutes(idx, delta int) {
	cur := m.db.Blocks[idx].Minutes
	if _, ok := mutate.SetBlockMinutes(m.db, idx, strconv.Itoa(cur+delta)); ok {
		m.persist()
	}
}

func (m appModel) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return m.startProjectAddPrompt()
	}

	if len(m.db.Projects) == 0 {
		return m, nil
	}
	idx := m.cursor[sectionProjects]
	switch msg.String() {
	case "e":
		return m.startProjectEditPrompt(idx)
	case "d":
		if mutate.DeleteProject(m.db, idx) {
			m.clampCursor()
			m.persist()
			m.setFlash("project deleted")
		}
	case "p":
		if it, ok := mutate.PauseProject(m.db, idx, m.now()); ok {
			m.clampCursor()
			m.persist()
			m.setFlash("paused to incubator: " + it.Title)
		}
	}
	return m, nil
}

func (m appModel) updateIncubator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return m.startIdeaPrompt()
	}

	if len(m.db.Incubator) == 0 {
		return m, nil
	}
	idx := m.storageIndex()
	switch msg.String() {
	case "d":
		if mutate.DeleteIncubatorItem(m.db, idx) {
			m.clampCursor()
			m.persist()
			m.setFlash("idea deleted")
		}
	case "enter":
		p, ok, err := mutate.ActivateIncubatorItem(m.db, idx, m.now())
		if err != nil {
			m.flashError(err)
			return m, nil
		}
		if ok {
			m.clampCursor()
			m.persist()
			m.setFlash("activated: " + p.Title)
		}
	}
	return m, nil
}

func (m *appModel) flashError(err error) {
	m.flash = err.Error()
	m.flashWarn = true
}

func (m appModel) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()
		if it, ok := mutate.AddInboxItem(m.db, text, m.now()); ok {
			m.cursor[sectionInbox] = 0
			m.persist()
			m.setFlash("captured: " + it.Text)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt == nil {
		m.mode = modeBrowse
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Cancel just this field; the prior value is kept.
		return m.advancePrompt(nil)
	case "enter":
		v := m.input.Value()
		return m.advancePrompt(&v)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) advancePrompt(val *string) (tea.Model, tea.Cmd) {
	p := m.prompt
	p.values = append(p.values, val)
	p.idx++
	if p.idx < len(p.fields) {
		m.loadPromptField()
		return m, textinput.Blink
	}
	m.mode = modeBrowse
	m.prompt = nil
	m.input.Blur()
	p.apply(&m, p.values)
	return m, nil
}

func (m *appModel) startPrompt(p *promptFlow) (tea.Model, tea.Cmd) {
	m.prompt = p
	m.mode = modePrompt
	m.loadPromptField()
	return *m, textinput.Blink
}

func (m *appModel) loadPromptField() {
	f := m.prompt.fields[m.prompt.idx]
	m.input.Placeholder = f.label
	m.input.SetValue(f.initial)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m appModel) startProjectAddPrompt() (tea.Model, tea.Cmd) {
	if len(m.db.Projects) >= model.MaxActiveProjects {
		m.flashError(mutate.ErrProjectCap)
		return m, nil
	}
	return m.startPrompt(&promptFlow{
		title: "New project",
		fields: []promptField{
			{label: "Title"},
			{label: "Purpose"},
			{label: "Next step"},
		},
		apply: func(m *appModel, vals []*string) {
			p, err := mutate.AddProject(m.db, deref(vals[0]), deref(vals[1]), deref(vals[2]), m.now())
			if err != nil {
				if !errors.Is(err, mutate.ErrEmptyTitle) {
					m.flashError(err)
				}
				return
			}
			m.cursor[sectionProjects] = len(m.db.Projects) - 1
			m.persist()
			m.setFlash("project added: " + p.Title)
		},
	})
}

func (m appModel) startProjectEditPrompt(idx int) (tea.Model, tea.Cmd) {
	p := m.db.Projects[idx]
	return m.startPrompt(&promptFlow{
		title: "Edit project",
		fields: []promptField{
			{label: "Title", initial: p.Title},
			{label: "Purpose", initial: p.Purpose},
			{label: "Next step", initial: p.Next},
		},
		apply: func(m *appModel, vals []*string) {
			if mutate.EditProject(m.db, idx, vals[0], vals[1], vals[2]) {
				m.persist()
				m.setFlash("project updated")
			}
		},
	})
}

func (m appModel) startIdeaPrompt() (tea.Model, tea.Cmd) {
	return m.startPrompt(&promptFlow{
		title:  "New idea",
		fields: []promptField{{label: "Idea"}},
		apply: func(m *appModel, vals []*string) {
			it, err := mutate.AddIncubatorItem(m.db, deref(vals[0]), m.now())
			if err != nil {
				return
			}
			m.cursor[sectionIncubator] = 0
			m.persist()
			m.setFlash("idea captured: " + it.Title)
		},
	})
}

func (m appModel) startPlanPrompt() (tea.Model, tea.Cmd) {
	plan := m.db.Today
	fields := []promptField{{label: "Critical task", initial: plan.Critical}}
	for i, v := range plan.Important {
		fields = append(fields, promptField{label: "Important " + strconv.Itoa(i+1), initial: v})
	}
	for i, v := range plan.Minor {
		fields = append(fields, promptField{label: "Minor " + strconv.Itoa(i+1), initial: v})
	}
	fields = append(fields, promptField{label: "Notes (markdown)", initial: plan.Notes})

	return m.startPrompt(&promptFlow{
		title:  "Plan today",
		fields: fields,
		apply: func(m *appModel, vals []*string) {
			prior := m.db.Today
			critical := derefOr(vals[0], prior.Critical)
			var important [3]string
			for i := range important {
				important[i] = derefOr(vals[1+i], prior.Important[i])
			}
			var minor [5]string
			for i := range minor {
				minor[i] = derefOr(vals[4+i], prior.Minor[i])
			}
			notes := derefOr(vals[9], prior.Notes)
			mutate.SavePlan(m.db, critical, important, minor, notes)
			m.persist()
			m.setFlash("plan saved")
		},
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefOr(s *string, prior string) string {
	if s == nil {
		return prior
	}
	return *s
}
