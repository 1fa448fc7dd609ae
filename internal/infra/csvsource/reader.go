package csvsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

// Reader reads registry rows from a comma separated file.
type Reader struct {
	comma rune
}

type Option func(*Reader)

// WithComma overrides the field delimiter.
func WithComma(c rune) Option {
	return func(r *Reader) { r.comma = c }
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{comma: ','}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.RowReader = (*Reader)(nil)

func (r *Reader) ReadRows(ctx context.Context, path string) ([]domain.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "csvsource.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	rows, err := r.Parse(ctx, f)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return nil, err
	}
	return rows, nil
}

// Parse reads every record from in. Rows may have any number of fields.
// Stray quotes inside unquoted fields are kept verbatim. A blank line becomes
// a Row with no fields, so callers see it instead of it being skipped.
func (r *Reader) Parse(ctx context.Context, in io.Reader) ([]domain.Row, error) {
	lc := &lineCounter{r: in}
	cr := csv.NewReader(lc)
	cr.Comma = r.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []domain.Row
	next := 1 // first line not yet covered by a record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if err == io.EOF {
			return appendBlank(rows, next, lc.lines()+1), nil
		}
		if err != nil {
			op := &domain.OpError{
				Op:   "csvsource.read",
				Kind: domain.KindExecution,
				Err:  err,
			}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				op.Kind = domain.KindInvalidInput
				op.Line = pe.StartLine
			}
			return nil, op
		}

		line, _ := cr.FieldPos(0)
		rows = appendBlank(rows, next, line)
		rows = append(rows, domain.Row{Line: line, Fields: rec})

		last := len(rec) - 1
		lastLine, _ := cr.FieldPos(last)
		next = lastLine + strings.Count(rec[last], "\n") + 1
	}
}

// appendBlank adds an empty row for every line in [from, to).
func appendBlank(rows []domain.Row, from, to int) []domain.Row {
	for l := from; l < to; l++ {
		rows = append(rows, domain.Row{Line: l})
	}
	return rows
}

// lineCounter counts the lines read through it. A final line without a
// trailing newline still counts.
type lineCounter struct {
	r       io.Reader
	n       int
	partial bool
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.n += bytes.Count(p[:n], []byte{'\n'})
		c.partial = p[n-1] != '\n'
	}
	return n, err
}

func (c *lineCounter) lines() int {
	if c.partial {
		return c.n + 1
	}
	return c.n
}

// ParseBytes is Parse over an in-memory body.
func (r *Reader) ParseBytes(ctx context.Context, body []byte) ([]domain.Row, error) {
	return r.Parse(ctx, bytes.NewReader(body))
}
