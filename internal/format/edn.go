package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes an EDN rendering of v for Clojure-side tooling.
//
// We target the subset our envelopes need: maps, vectors, strings, numbers,
// booleans, nil. Structs are routed through their JSON representation so the
// json tags define the keyword names.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var buf bytes.Buffer
	writeEDNValue(&buf, x, pretty, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeEDNValue(buf *bytes.Buffer, v any, pretty bool, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// JSON numbers arrive as float64; render integral values as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		writeEDNSeq(buf, t, pretty, level)
	case map[string]any:
		writeEDNMap(buf, t, pretty, level)
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func writeEDNSeq(buf *bytes.Buffer, xs []any, pretty bool, level int) {
	buf.WriteByte('[')
	for i, it := range xs {
		ednSep(buf, pretty, level+1, i == 0)
		writeEDNValue(buf, it, pretty, level+1)
	}
	ednClose(buf, pretty, level, len(xs) == 0)
	buf.WriteByte(']')
}

func writeEDNMap(buf *bytes.Buffer, m map[string]any, pretty bool, level int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		ednSep(buf, pretty, level+1, i == 0)
		buf.WriteByte(':')
		buf.WriteString(strings.ReplaceAll(strings.TrimSpace(k), " ", "-"))
		buf.WriteByte(' ')
		writeEDNValue(buf, m[k], pretty, level+1)
	}
	ednClose(buf, pretty, level, len(keys) == 0)
	buf.WriteByte('}')
}

func ednSep(buf *bytes.Buffer, pretty bool, level int, first bool) {
	if pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*2))
		return
	}
	if !first {
		buf.WriteByte(' ')
	}
}

func ednClose(buf *bytes.Buffer, pretty bool, level int, empty bool) {
	if pretty && !empty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*2))
	}
}
