package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

const sampleCSV = "Value,Description,Reference\n100,Continue,\"[RFC9110, Section 15.2.1]\"\n"

func TestFetchSource_SavesSnapshot(t *testing.T) {
	f := &fakeFetcher{snap: domain.Snapshot{Body: []byte(sampleCSV)}}
	store := &fakeStore{}
	v := fakeValidator{rows: rowsOf("Value|Description|Reference")}

	snap, ref, err := NewFetchSource(f, store, v, nil).Execute(context.Background(), " https://example.test/codes.csv ")
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/codes.csv", snap.SourceURL)
	assert.Equal(t, "snap-1", ref.ID)
	require.Len(t, store.saved, 1)
	assert.Equal(t, sampleCSV, string(store.saved[0].Body))
}

func TestFetchSource_NilStoreSkipsSave(t *testing.T) {
	f := &fakeFetcher{snap: domain.Snapshot{Body: []byte(sampleCSV)}}

	snap, ref, err := NewFetchSource(f, nil, nil, nil).Execute(context.Background(), "https://example.test")
	require.NoError(t, err)
	assert.Equal(t, domain.SnapshotRef{}, ref)
	assert.NotEmpty(t, snap.Body)
}

func TestFetchSource_EmptyURL(t *testing.T) {
	f := &fakeFetcher{}
	_, _, err := NewFetchSource(f, nil, nil, nil).Execute(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Zero(t, f.calls)
}

func TestFetchSource_FetchError(t *testing.T) {
	fetchErr := errors.New("dial tcp: refused")
	store := &fakeStore{}
	_, _, err := NewFetchSource(&fakeFetcher{err: fetchErr}, store, nil, nil).Execute(context.Background(), "https://example.test")
	assert.ErrorIs(t, err, fetchErr)
	assert.Empty(t, store.saved)
}

func TestFetchSource_RejectsEmptyBody(t *testing.T) {
	store := &fakeStore{}
	_, _, err := NewFetchSource(&fakeFetcher{}, store, nil, nil).Execute(context.Background(), "https://example.test")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
	assert.Empty(t, store.saved)
}

func TestFetchSource_RejectsNonRegistryBody(t *testing.T) {
	f := &fakeFetcher{snap: domain.Snapshot{Body: []byte("<html></html>")}}
	store := &fakeStore{}
	v := fakeValidator{rows: rowsOf("<html></html>")}

	_, _, err := NewFetchSource(f, store, v, nil).Execute(context.Background(), "https://example.test")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.saved)
}

func TestFetchSource_StoreError(t *testing.T) {
	saveErr := errors.New("disk full")
	f := &fakeFetcher{snap: domain.Snapshot{Body: []byte(sampleCSV)}}

	_, _, err := NewFetchSource(f, &fakeStore{err: saveErr}, nil, nil).Execute(context.Background(), "https://example.test")
	assert.ErrorIs(t, err, saveErr)
}
