package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

// SourceValidator checks that a downloaded body parses as registry rows.
type SourceValidator interface {
	ParseBytes(ctx context.Context, body []byte) ([]domain.Row, error)
}

type FetchSource struct {
	fetcher   ports.Fetcher
	store     ports.SnapshotStore
	validator SourceValidator
	log       *zap.Logger
}

// NewFetchSource wires the download pipeline. store may be nil to skip persisting.
func NewFetchSource(f ports.Fetcher, store ports.SnapshotStore, v SourceValidator, log *zap.Logger) *FetchSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FetchSource{fetcher: f, store: store, validator: v, log: log}
}

// Execute downloads url, checks it looks like a registry CSV and saves it.
// The returned ref is zero when no store is configured.
func (uc *FetchSource) Execute(ctx context.Context, url string) (domain.Snapshot, domain.SnapshotRef, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.Snapshot{}, domain.SnapshotRef{}, fmt.Errorf("source url is empty: %w", domain.ErrInvalidConfig)
	}

	uc.log.Info("fetch.start", zap.String("url", url))
	snap, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		return domain.Snapshot{}, domain.SnapshotRef{}, err
	}

	if err := uc.check(ctx, snap); err != nil {
		return snap, domain.SnapshotRef{}, err
	}

	if uc.store == nil {
		uc.log.Info("fetch.done", zap.String("url", url), zap.Int("bytes", len(snap.Body)), zap.Bool("saved", false))
		return snap, domain.SnapshotRef{}, nil
	}

	ref, err := uc.store.SaveSnapshot(snap)
	if err != nil {
		return snap, domain.SnapshotRef{}, fmt.Errorf("save snapshot: %w", err)
	}
	uc.log.Info("fetch.done", zap.String("url", url), zap.Int("bytes", len(snap.Body)), zap.String("id", ref.ID))
	return snap, ref, nil
}

func (uc *FetchSource) check(ctx context.Context, snap domain.Snapshot) error {
	if len(snap.Body) == 0 {
		return &domain.OpError{
			Op:   "fetch.check",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("empty body"),
		}
	}
	if uc.validator == nil {
		return nil
	}

	rows, err := uc.validator.ParseBytes(ctx, snap.Body)
	if err != nil {
		return err
	}
	if len(rows) == 0 || len(rows[0].Fields) < minColumns {
		return &domain.OpError{
			Op:   "fetch.check",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%s does not look like a status code registry: %w", snap.SourceURL, domain.ErrInvalidInput),
		}
	}
	return nil
}
