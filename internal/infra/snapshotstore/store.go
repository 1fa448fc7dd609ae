package snapshotstore

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

const (
	defaultSnapshotsDir = "snapshots"
	indexFile           = "index.jsonl"
)

// FileStore keeps snapshots as plain CSV files next to a JSONL index.
type FileStore struct {
	rootDir  string
	dirName  string
	now      func() time.Time
	maxTries int
}

type Option func(*FileStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

func NewFileStore(root string, cfg domain.Config, opts ...Option) *FileStore {
	dir := cfg.Paths.SnapshotsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultSnapshotsDir
	}

	s := &FileStore{
		rootDir:  root,
		dirName:  dir,
		now:      time.Now,
		maxTries: 100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SnapshotStore = (*FileStore)(nil)

// Dir is the absolute snapshots directory.
func (s *FileStore) Dir() string {
	if filepath.IsAbs(s.dirName) {
		return s.dirName
	}
	return filepath.Join(s.rootDir, s.dirName)
}

func (s *FileStore) SaveSnapshot(snap domain.Snapshot) (domain.SnapshotRef, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.SnapshotRef{}, &domain.OpError{
			Op:   "snapshotstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := snap.FetchedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := slugify(strings.TrimSuffix(path.Base(snap.SourceURL), path.Ext(snap.SourceURL)))
	if slug == "" {
		slug = "snapshot"
	}

	id, filename, err := s.freeName(dir, ts.Format("20060102T150405Z")+"_"+slug)
	if err != nil {
		return domain.SnapshotRef{}, err
	}
	dst := filepath.Join(dir, filename)

	// Atomic-ish write: tmp then rename.
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, snap.Body, 0o644); err != nil {
		return domain.SnapshotRef{}, &domain.OpError{
			Op:   "snapshotstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return domain.SnapshotRef{}, &domain.OpError{
			Op:   "snapshotstore.rename",
			Kind: domain.KindExecution,
			Path: dst,
			Err:  err,
		}
	}

	sum := sha256.Sum256(snap.Body)
	ref := domain.SnapshotRef{
		ID:        id,
		File:      filename,
		SourceURL: snap.SourceURL,
		FetchedAt: ts,
		Size:      len(snap.Body),
		SHA256:    hex.EncodeToString(sum[:]),
	}

	if err := s.appendIndex(dir, ref); err != nil {
		return ref, &domain.OpError{
			Op:   "snapshotstore.index",
			Kind: domain.KindExecution,
			Path: filepath.Join(dir, indexFile),
			Err:  err,
		}
	}
	return ref, nil
}

// freeName picks base.csv, or base-2.csv, base-3.csv... when fetched within the same second.
func (s *FileStore) freeName(dir, base string) (string, string, error) {
	id := base
	for i := 2; i <= s.maxTries+1; i++ {
		if _, err := os.Stat(filepath.Join(dir, id+".csv")); os.IsNotExist(err) {
			return id, id + ".csv", nil
		}
		id = fmt.Sprintf("%s-%d", base, i)
	}
	return "", "", &domain.OpError{
		Op:   "snapshotstore.name",
		Kind: domain.KindExecution,
		Path: dir,
		Err:  fmt.Errorf("no free file name for %s", base),
	}
}

func (s *FileStore) appendIndex(dir string, ref domain.SnapshotRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListSnapshots returns the index in write order. A missing index is an empty list.
func (s *FileStore) ListSnapshots() ([]domain.SnapshotRef, error) {
	p := filepath.Join(s.Dir(), indexFile)
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.SnapshotRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "snapshotstore.list",
			Kind: domain.KindExecution,
			Path: p,
			Err:  err,
		}
	}

	refs := []domain.SnapshotRef{}
	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var ref domain.SnapshotRef
		if err := json.Unmarshal(raw, &ref); err != nil {
			return nil, &domain.OpError{
				Op:   "snapshotstore.list",
				Kind: domain.KindInvalidInput,
				Path: p,
				Line: line,
				Err:  err,
			}
		}
		refs = append(refs, ref)
	}
	return refs, sc.Err()
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
