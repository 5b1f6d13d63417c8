package tui

import (
	"strconv"
	"strings"
	"time"

	"focusday-cli/internal/model"
	"focusday-cli/internal/mutate"
	"focusday-cli/internal/tips"
)

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}
	w := m.width
	if w > 100 {
		w = 100
	}

	var b strings.Builder
	b.WriteString(m.viewHeader(w))
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.section {
	case sectionToday:
		b.WriteString(m.viewToday(w))
	case sectionInbox:
		b.WriteString(m.viewInbox())
	case sectionBlocks:
		b.WriteString(m.viewBlocks())
	case sectionProjects:
		b.WriteString(m.viewProjects())
	case sectionIncubator:
		b.WriteString(m.viewIncubator())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusArea(w))
	return b.String()
}

func (m appModel) viewHeader(w int) string {
	now := m.now()
	date := model.DateKey(now)
	streak := mutate.CriticalStreak(m.db.Metrics, now)

	left := styleHeader().Render("focusday") + "  " +
		styleMuted().Render(now.Format("Mon ")+date)
	if streak > 0 {
		left += "  " + styleFlash(false).Render("● streak "+strconv.Itoa(streak)+"d")
	}
	tip := styleMuted().Render(truncate(tips.ForDate(date), w))
	return left + "\n" + tip
}

func (m appModel) viewTabs() string {
	var parts []string
	for s := section(0); s < sectionCount; s++ {
		label := strconv.Itoa(int(s)+1) + " " + s.title()
		parts = append(parts, styleTab(s == m.section).Render(label))
	}
	return strings.Join(parts, " ")
}

func (m appModel) viewToday(w int) string {
	plan := m.db.Today
	date := model.DateKey(m.now())
	rec, _ := m.db.FindMetric(date)

	var b strings.Builder

	mark := "[ ]"
	if rec != nil && rec.CriticalDone {
		mark = styleFlash(false).Render("[✓]")
	}
	critical := plan.Critical
	if critical == "" {
		critical = styleMuted().Render("(no critical task set)")
	}
	b.WriteString(styleHeader().Render("Critical") + "  " + mark + " " + critical + "\n\n")

	b.WriteString(styleHeader().Render("Important") + "\n")
	for i, v := range plan.Important {
		b.WriteString(planLine(i, v))
	}
	b.WriteString("\n" + styleHeader().Render("Minor") + "\n")
	for i, v := range plan.Minor {
		b.WriteString(planLine(i, v))
	}

	if strings.TrimSpace(plan.Notes) != "" {
		b.WriteString("\n" + styleHeader().Render("Notes") + "\n")
		b.WriteString(renderMarkdown(plan.Notes, w-2) + "\n")
	}

	if rec != nil {
		b.WriteString("\n" + styleMuted().Render(metricSummary(rec)) + "\n")
	}
	return b.String()
}

func planLine(i int, v string) string {
	n := strconv.Itoa(i+1) + ". "
	if v == "" {
		return styleMuted().Render(n+"—") + "\n"
	}
	return n + v + "\n"
}

func metricSummary(rec *model.MetricRecord) string {
	var parts []string
	if rec.Sleep != nil {
		parts = append(parts, "sleep "+trimFloat(*rec.Sleep)+"h")
	}
	if rec.Energy != nil {
		parts = append(parts, "energy "+trimFloat(*rec.Energy))
	}
	if rec.Focus != nil {
		parts = append(parts, "focus "+trimFloat(*rec.Focus))
	}
	if rec.Moved {
		parts = append(parts, "moved")
	}
	if rec.Mood != nil && *rec.Mood != "" {
		parts = append(parts, "mood "+*rec.Mood)
	}
	if len(parts) == 0 {
		return "no metrics logged today"
	}
	return "metrics: " + strings.Join(parts, " · ")
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (m appModel) viewInbox() string {
	if len(m.db.Inbox) == 0 {
		return styleMuted().Render("Inbox empty. Press c to capture.") + "\n"
	}
	var b strings.Builder
	for disp := 0; disp < len(m.db.Inbox); disp++ {
		it := m.db.Inbox[len(m.db.Inbox)-1-disp]
		line := it.Text + "  " + styleMuted().Render(relTime(it.CapturedAt, m.now()))
		b.WriteString(cursorLine(disp == m.cursor[sectionInbox], line))
	}
	return b.String()
}

func (m appModel) viewBlocks() string {
	if len(m.db.Blocks) == 0 {
		return styleMuted().Render("No focus blocks. Press a to add one.") + "\n"
	}
	var b strings.Builder
	total := 0
	for i, blk := range m.db.Blocks {
		total += blk.Minutes
		line := blk.Mode.Label() + "  " + styleMuted().Render(strconv.Itoa(blk.Minutes)+" min")
		b.WriteString(cursorLine(i == m.cursor[sectionBlocks], line))
	}
	b.WriteString("\n" + styleMuted().Render("total "+strconv.Itoa(total)+" min") + "\n")
	return b.String()
}

func (m appModel) viewProjects() string {
	var b strings.Builder
	b.WriteString(styleMuted().Render("active "+strconv.Itoa(len(m.db.Projects))+"/"+strconv.Itoa(model.MaxActiveProjects)) + "\n")
	if len(m.db.Projects) == 0 {
		b.WriteString(styleMuted().Render("No active projects. Press a to add, or activate an idea.") + "\n")
		return b.String()
	}
	for i, p := range m.db.Projects {
		b.WriteString(cursorLine(i == m.cursor[sectionProjects], p.Title))
		if i == m.cursor[sectionProjects] {
			if p.Purpose != "" {
				b.WriteString("     " + styleMuted().Render("why: "+p.Purpose) + "\n")
			}
			if p.Next != "" {
				b.WriteString("     " + styleMuted().Render("next: "+p.Next) + "\n")
			}
		}
	}
	return b.String()
}

func (m appModel) viewIncubator() string {
	if len(m.db.Incubator) == 0 {
		return styleMuted().Render("Incubator empty. Press a to park an idea.") + "\n"
	}
	var b strings.Builder
	for disp := 0; disp < len(m.db.Incubator); disp++ {
		it := m.db.Incubator[len(m.db.Incubator)-1-disp]
		line := it.Title
		if it.Note != "" {
			line += "  " + styleMuted().Render(it.Note)
		}
		b.WriteString(cursorLine(disp == m.cursor[sectionIncubator], line))
	}
	return b.String()
}

func cursorLine(selected bool, line string) string {
	if selected {
		return styleSelected().Render(" ▸ "+line) + "\n"
	}
	return "   " + line + "\n"
}

// viewStatusArea renders the bottom area: the active input line (capture or
// prompt) or the key hints, plus the transient flash.
func (m appModel) viewStatusArea(w int) string {
	var b strings.Builder
	switch m.mode {
	case modeCapture:
		b.WriteString(styleHeader().Render("Capture") + "\n")
		b.WriteString(renderInputLine(w-2, m.input.View()) + "\n")
		b.WriteString(styleMuted().Render("enter save · esc cancel") + "\n")
	case modePrompt:
		if m.prompt != nil {
			label := m.prompt.title
			if pr := m.prompt.progress(); pr != "" {
				label += " " + pr
			}
			b.WriteString(styleHeader().Render(label) + "  " +
				styleMuted().Render(m.prompt.fields[m.prompt.idx].label) + "\n")
			b.WriteString(renderInputLine(w-2, m.input.View()) + "\n")
			b.WriteString(styleMuted().Render("enter accept · esc skip field") + "\n")
		}
	default:
		b.WriteString(styleMuted().Render(m.keyHints()) + "\n")
	}
	if m.flash != "" {
		b.WriteString(styleFlash(m.flashWarn).Render(m.flash) + "\n")
	}
	return b.String()
}

func (m appModel) keyHints() string {
	common := "tab section · j/k move · c capture · q quit"
	switch m.section {
	case sectionToday:
		return "e edit plan · x critical done · " + common
	case sectionInbox:
		return "t to task · i to incubator · d delete · " + common
	case sectionBlocks:
		return "a add · m mode · +/- minutes · d delete · " + common
	case sectionProjects:
		return "a add · e edit · p pause · d delete · " + common
	case sectionIncubator:
		return "a add idea · enter activate · d delete · " + common
	}
	return common
}

func relTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h ago"
	default:
		return t.Format("Jan 2")
	}
}

func truncate(s string, w int) string {
	if w < 4 {
		return s
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w-1]) + "…"
}
