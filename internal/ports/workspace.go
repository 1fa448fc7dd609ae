package ports

import "github.com/fleetingbytes/http-status-codes2/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
