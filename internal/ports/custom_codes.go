package ports

import "github.com/fleetingbytes/http-status-codes2/internal/domain"

// CustomCodeLoader loads user-defined status codes.
type CustomCodeLoader interface {
	LoadCustomCodes(path string) (domain.Registry, error)
}
