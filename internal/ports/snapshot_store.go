package ports

import "github.com/fleetingbytes/http-status-codes2/internal/domain"

// SnapshotStore persists downloaded registry sources.
type SnapshotStore interface {
	SaveSnapshot(snap domain.Snapshot) (domain.SnapshotRef, error)
	ListSnapshots() ([]domain.SnapshotRef, error)
}
