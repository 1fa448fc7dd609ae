package domain

import "time"

// Snapshot is a downloaded copy of the registry source CSV.
type Snapshot struct {
	SourceURL    string
	FetchedAt    time.Time
	Body         []byte
	ETag         string
	LastModified string
}

// SnapshotRef describes a persisted snapshot.
type SnapshotRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	SourceURL string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	Size      int       `json:"size"`
	SHA256    string    `json:"sha256"`
}

// WorkspaceSpec is the input for creating a workspace.
type WorkspaceSpec struct {
	Root string
}
