// Package tips serves the one-line coaching hints shown on the dashboard.
package tips

import "hash/fnv"

var daily = []string{
	"Golden rule: nothing important gets thought twice. Capture it once.",
	"It's not a lack of willpower. It's a lack of architecture.",
	"Today: one critical task. If it ships, the day was a success.",
	"Don't mix modes: Create, Build, Manage and Care are different gears.",
	"Feeling saturated? Step away for 3-5 minutes, then 25 minutes of execution.",
}

// ForDate picks the tip for a date key. The choice is stable within a day so
// the dashboard doesn't flicker between renders.
func ForDate(date string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(date))
	return daily[int(h.Sum32())%len(daily)]
}
