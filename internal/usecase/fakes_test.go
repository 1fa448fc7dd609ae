package usecase

import (
	"context"
	"strings"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

// fakeRows returns fixed rows, or an error.
type fakeRows struct {
	rows []domain.Row
	err  error
}

func (f fakeRows) ReadRows(_ context.Context, _ string) ([]domain.Row, error) {
	return f.rows, f.err
}

// rowsOf builds rows from comma-joined lines, numbering lines from 1.
func rowsOf(lines ...string) []domain.Row {
	out := make([]domain.Row, 0, len(lines))
	for i, l := range lines {
		out = append(out, domain.Row{Line: i + 1, Fields: strings.Split(l, "|")})
	}
	return out
}

type fakeFetcher struct {
	snap  domain.Snapshot
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (domain.Snapshot, error) {
	f.calls++
	s := f.snap
	s.SourceURL = url
	return s, f.err
}

type fakeStore struct {
	saved []domain.Snapshot
	err   error
}

func (s *fakeStore) SaveSnapshot(snap domain.Snapshot) (domain.SnapshotRef, error) {
	if s.err != nil {
		return domain.SnapshotRef{}, s.err
	}
	s.saved = append(s.saved, snap)
	return domain.SnapshotRef{ID: "snap-1", SourceURL: snap.SourceURL, Size: len(snap.Body)}, nil
}

func (s *fakeStore) ListSnapshots() ([]domain.SnapshotRef, error) { return nil, nil }

type fakeValidator struct {
	rows []domain.Row
	err  error
}

func (v fakeValidator) ParseBytes(_ context.Context, _ []byte) ([]domain.Row, error) {
	return v.rows, v.err
}

type fakeCustom struct {
	reg   domain.Registry
	err   error
	paths []string
}

func (f *fakeCustom) LoadCustomCodes(path string) (domain.Registry, error) {
	f.paths = append(f.paths, path)
	return f.reg, f.err
}
