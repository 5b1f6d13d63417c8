package model

import "time"

// BlockMode is the working mode a focus block is reserved for.
type BlockMode string

const (
	ModeCreate BlockMode = "create"
	ModeBuild  BlockMode = "build"
	ModeManage BlockMode = "manage"
	ModeCare   BlockMode = "care"
)

// BlockModes lists all valid modes in display order.
var BlockModes = []BlockMode{ModeCreate, ModeBuild, ModeManage, ModeCare}

func (m BlockMode) Valid() bool {
	switch m {
	case ModeCreate, ModeBuild, ModeManage, ModeCare:
		return true
	}
	return false
}

func (m BlockMode) Label() string {
	switch m {
	case ModeCreate:
		return "Create"
	case ModeBuild:
		return "Build"
	case ModeManage:
		return "Manage"
	case ModeCare:
		return "Care"
	}
	return string(m)
}

const (
	// BlockMinMinutes / BlockMaxMinutes bound a focus block's length.
	BlockMinMinutes = 15
	BlockMaxMinutes = 180
	// BlockDefaultMinutes is used for new blocks and unparseable input.
	BlockDefaultMinutes = 60
)

// InboxItem is a raw note captured before triage. Items have no id;
// position in the inbox slice is their identity.
type InboxItem struct {
	Text       string    `json:"text"`
	CapturedAt time.Time `json:"capturedAt"`
	Kind       string    `json:"kind"`
}

// KindCapture is the only inbox kind written today; the field exists so
// captures from other entry points can be tagged later.
const KindCapture = "capture"

// IncubatorItem is a parked idea or paused project.
type IncubatorItem struct {
	Title      string    `json:"title"`
	CapturedAt time.Time `json:"capturedAt"`
	Note       string    `json:"note"`
}

// Project is an active project. At most MaxActiveProjects exist at a time;
// everything else lives in the incubator.
type Project struct {
	Title     string    `json:"title"`
	Purpose   string    `json:"purpose"`
	Next      string    `json:"next"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaxActiveProjects caps the active project list.
const MaxActiveProjects = 3

// FocusBlock is a planned interval of work in one mode. Ordered list,
// order is user-defined, position is identity.
type FocusBlock struct {
	Mode    BlockMode `json:"mode"`
	Minutes int       `json:"minutes"`
}

// DailyPlan is today's plan. The important/minor arrays are fixed-size;
// an empty string means an unused slot.
type DailyPlan struct {
	Critical  string    `json:"critical"`
	Important [3]string `json:"important"`
	Minor     [5]string `json:"minor"`
	Notes     string    `json:"notes"`
}

// MetricRecord holds one calendar day's self-tracking data. Date is the
// unique key ("YYYY-MM-DD", device-local); records are created lazily on
// first write for a date. Nil pointer fields mean "not logged".
type MetricRecord struct {
	Date         string   `json:"date"`
	Sleep        *float64 `json:"sleep,omitempty"`
	Energy       *float64 `json:"energy,omitempty"`
	Focus        *float64 `json:"focus,omitempty"`
	Moved        bool     `json:"moved"`
	CriticalDone bool     `json:"criticalDone"`
	Mood         *string  `json:"mood,omitempty"`
	Note         string   `json:"note"`
}

// DateKey formats t as a metric date key in t's location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseMode normalizes user input to a BlockMode.
func ParseMode(s string) (BlockMode, bool) {
	switch BlockMode(normalize(s)) {
	case ModeCreate:
		return ModeCreate, true
	case ModeBuild:
		return ModeBuild, true
	case ModeManage:
		return ModeManage, true
	case ModeCare:
		return ModeCare, true
	}
	return "", false
}

func normalize(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b = append(b, c)
	}
	return string(b)
}
