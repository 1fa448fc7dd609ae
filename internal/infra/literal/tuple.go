package literal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps s in double quotes, escaping backslashes and double quotes.
func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

// Tuple renders a single entry as `(code, "reason", "notes"[, "link"]),`.
// The code is emitted verbatim.
func Tuple(e domain.Entry) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(e.Code)
	b.WriteString(", ")
	b.WriteString(quote(e.Reason))
	b.WriteString(", ")
	b.WriteString(quote(e.Notes))
	if e.HasLink() {
		b.WriteString(", ")
		b.WriteString(quote(e.Link))
	}
	b.WriteString("),")
	return b.String()
}

// WriteTuples writes one tuple line per entry, in order.
func WriteTuples(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, Tuple(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
