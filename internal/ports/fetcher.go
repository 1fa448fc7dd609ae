package ports

import (
	"context"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

// Fetcher downloads the registry source from a remote location.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (domain.Snapshot, error)
}
