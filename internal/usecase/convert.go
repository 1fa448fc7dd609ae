package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

// minColumns is the number of positional columns a row must carry: code, reason, notes.
const minColumns = 3

type ConvertSource struct {
	rows       ports.RowReader
	skipHeader bool
	log        *zap.Logger
}

type ConvertOption func(*ConvertSource)

// WithSkipHeader drops the first row of the source.
func WithSkipHeader(skip bool) ConvertOption {
	return func(uc *ConvertSource) { uc.skipHeader = skip }
}

// WithLogger sets the logger used for row-level diagnostics.
func WithLogger(l *zap.Logger) ConvertOption {
	return func(uc *ConvertSource) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewConvertSource(rr ports.RowReader, opts ...ConvertOption) *ConvertSource {
	uc := &ConvertSource{
		rows: rr,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads the source at path and returns one entry per row whose notes
// column is non-empty, in file order. A row with fewer than three columns aborts
// the conversion.
func (uc *ConvertSource) Execute(ctx context.Context, path string) ([]domain.Entry, error) {
	rows, err := uc.rows.ReadRows(ctx, path)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("convert.read", zap.String("path", path), zap.Int("rows", len(rows)))

	if uc.skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(row.Fields) < minColumns {
			return nil, &domain.OpError{
				Op:   "convert.row",
				Kind: domain.KindInvalidInput,
				Path: path,
				Line: row.Line,
				Err:  fmt.Errorf("expected at least %d columns, got %d: %w", minColumns, len(row.Fields), domain.ErrInvalidInput),
			}
		}

		notes := row.Fields[2]
		if notes == "" {
			uc.log.Debug("convert.row.skipped", zap.Int("line", row.Line), zap.String("code", row.Fields[0]))
			continue
		}

		entries = append(entries, domain.Entry{
			Code:   row.Fields[0],
			Reason: row.Fields[1],
			Notes:  notes,
			Link:   domain.LinkFor(notes),
		})
	}

	uc.log.Info("convert.done", zap.String("path", path), zap.Int("entries", len(entries)))
	return entries, nil
}
