package tui

import "strconv"

// promptFlow walks the user through a short sequence of single-line fields.
// Enter accepts the field; esc cancels only that field (recorded as nil so
// the caller keeps the prior value). There is no whole-flow abort: a skipped
// field simply leaves things as they were.
type promptFlow struct {
	title  string
	fields []promptField
	idx    int
	values []*string
	apply  func(m *appModel, vals []*string)
}

type promptField struct {
	label   string
	initial string
}

func (p *promptFlow) progress() string {
	if len(p.fields) <= 1 {
		return ""
	}
	return "(" + strconv.Itoa(p.idx+1) + "/" + strconv.Itoa(len(p.fields)) + ")"
}
