package settings

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) (*Settings, *Store, afero.Fs) {
	t.Helper()
	store, fs := newMemStore(t)
	rec := DefaultRecord()
	require.NoError(t, store.Save(rec))
	return New(rec), store, fs
}

func TestCommitValidInputPersists(t *testing.T) {
	s, store, _ := seeded(t)

	res, err := Commit(s, store, "New label", "2025-01-02 03:04:05")
	require.NoError(t, err)
	assert.True(t, res.LabelChanged)
	assert.True(t, res.Saved)

	want := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	assert.True(t, s.Anchor().Equal(want))
	assert.Equal(t, "New label", s.Label())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.True(t, stored.Anchor.Equal(want))
	assert.Equal(t, "New label", stored.Label)
}

func TestCommitInvalidTimeKeepsAnchorAndFile(t *testing.T) {
	s, store, fs := seeded(t)
	before, err := afero.ReadFile(fs, "settings.json")
	require.NoError(t, err)

	res, err := Commit(s, store, "", "not-a-date")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTime))
	assert.False(t, res.Saved)

	assert.True(t, s.Anchor().Equal(DefaultAnchor()))
	after, err := afero.ReadFile(fs, "settings.json")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCommitRejectsISOLayout(t *testing.T) {
	s, store, _ := seeded(t)

	_, err := Commit(s, store, "", "2025-01-02T03:04:05")
	assert.True(t, errors.Is(err, ErrInvalidTime))
}

func TestCommitInvalidTimeStillAdoptsLabel(t *testing.T) {
	s, store, _ := seeded(t)

	res, err := Commit(s, store, "Renamed", "bad")
	require.Error(t, err)
	assert.True(t, res.LabelChanged)
	assert.Equal(t, "Renamed", s.Label())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, stored.Label)
}

func TestCommitEmptyLabelKeepsStoredLabel(t *testing.T) {
	s, store, _ := seeded(t)

	res, err := Commit(s, store, "", "2025-01-02 03:04:05")
	require.NoError(t, err)
	assert.False(t, res.LabelChanged)
	assert.Equal(t, DefaultLabel, s.Label())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, stored.Label)
}

func TestCommitSaveFailureKeepsAnchor(t *testing.T) {
	s := New(DefaultRecord())
	store := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), "settings.json")

	res, err := Commit(s, store, "", "2025-01-02 03:04:05")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidTime))
	assert.False(t, res.Saved)
	assert.True(t, s.Anchor().Equal(DefaultAnchor()))
}

func TestFormatEntryRoundTripsThroughCommit(t *testing.T) {
	s, store, _ := seeded(t)
	anchor := time.Date(2023, 11, 30, 8, 15, 0, 0, time.Local)

	text := FormatEntry(anchor)
	assert.Equal(t, "2023-11-30 08:15:00", text)

	_, err := Commit(s, store, "", text)
	require.NoError(t, err)
	assert.True(t, s.Anchor().Equal(anchor))
}

func TestSettingsConcurrentReads(t *testing.T) {
	s := New(DefaultRecord())
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = s.Anchor()
			_ = s.Label()
		}
	}()
	for i := 0; i < 1000; i++ {
		s.SetAnchor(DefaultAnchor().Add(time.Duration(i) * time.Second))
	}
	<-done

	assert.True(t, s.Anchor().Equal(DefaultAnchor().Add(999*time.Second)))
}
