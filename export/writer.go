package export

import (
	"bufio"
	"io"
	"strings"
)

// quotedWriter writes CSV records with every field wrapped in double quotes
// and inner quotes doubled. encoding/csv only quotes fields that need it.
type quotedWriter struct {
	w *bufio.Writer
}

func newQuotedWriter(w io.Writer) *quotedWriter {
	return &quotedWriter{bufio.NewWriter(w)}
}

func (q *quotedWriter) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := q.w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := q.w.WriteString(quote(field)); err != nil {
			return err
		}
	}
	return q.w.WriteByte('\n')
}

func (q *quotedWriter) Flush() error {
	return q.w.Flush()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
