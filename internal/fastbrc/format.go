package fastbrc

import (
	"bytes"
	"io"
	"sort"
)

// WriteSummary renders the table sorted by station name as
// {a=min/mean/max, b=...} with a trailing newline. The whole envelope is
// assembled before the single Write, so a failing run never leaves a
// truncated fragment on the output.
func WriteSummary(w io.Writer, t *Table) error {
	entries := t.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Name, entries[j].Name) < 0
	})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.Write(entries[i].Name)
		buf.WriteByte('=')
		buf.WriteString(entries[i].Station.Summary())
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// Summary returns the formatted result as a string.
func Summary(t *Table) string {
	var buf bytes.Buffer
	WriteSummary(&buf, t) // writes to a bytes.Buffer cannot fail
	return buf.String()
}
