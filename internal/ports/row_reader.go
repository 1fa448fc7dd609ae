package ports

import (
	"context"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

// RowReader reads raw records from a registry source (e.g., a CSV file).
type RowReader interface {
	ReadRows(ctx context.Context, path string) ([]domain.Row, error)
}
