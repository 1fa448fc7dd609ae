package tui

import (
	"go.uber.org/zap"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

type Deps struct {
	// Registry is listed in order; callers concatenate the tables they want.
	Registry domain.Registry

	// Workspace is the workspace root, empty outside one.
	Workspace string

	Logger *zap.Logger
	// LogPath is shown in the banner when the file logger is active.
	LogPath string
}
