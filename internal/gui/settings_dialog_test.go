package gui

import (
	"testing"
	"time"

	"topscreen-counter/internal/logger"
	"topscreen-counter/internal/settings"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dialogFixture struct {
	dialog   *SettingsDialog
	settings *settings.Settings
	store    *settings.Store
	fs       afero.Fs
	shown    []string
}

func newDialogFixture(t *testing.T) *dialogFixture {
	t.Helper()
	a := test.NewTempApp(t)
	fs := afero.NewMemMapFs()

	f := &dialogFixture{
		settings: settings.New(settings.DefaultRecord()),
		store:    settings.NewStore(fs, "settings.json"),
		fs:       fs,
	}
	f.dialog = NewSettingsDialog(a, f.settings, f.store, func(label string) {
		f.shown = append(f.shown, label)
	}, logger.NoOpLogger{})
	f.dialog.Open()
	return f
}

func TestSettingsDialogPrefills(t *testing.T) {
	f := newDialogFixture(t)

	assert.True(t, f.dialog.IsOpen())
	assert.Equal(t, "Accountibility Counter", f.dialog.labelEntry.Text)
	assert.Equal(t, "2024-07-05 21:00:00", f.dialog.timeEntry.Text)
}

func TestSettingsDialogInvalidTimeStaysOpen(t *testing.T) {
	f := newDialogFixture(t)
	w := f.dialog.window

	f.dialog.timeEntry.SetText("not-a-date")
	f.dialog.Submit()

	assert.True(t, f.dialog.IsOpen())
	assert.Equal(t, "not-a-date", f.dialog.timeEntry.Text)
	assert.NotNil(t, w.Canvas().Overlays().Top(), "expected an error dialog")
	assert.True(t, f.settings.Anchor().Equal(settings.DefaultAnchor()))

	exists, err := afero.Exists(f.fs, "settings.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSettingsDialogValidCommitClosesAndSaves(t *testing.T) {
	f := newDialogFixture(t)

	f.dialog.labelEntry.SetText("Days clean")
	f.dialog.timeEntry.SetText("2025-03-04 05:06:07")
	f.dialog.Submit()

	assert.False(t, f.dialog.IsOpen())
	assert.Equal(t, []string{"Days clean"}, f.shown)

	rec, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Days clean", rec.Label)
	assert.True(t, rec.Anchor.Equal(time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)))
}

func TestSettingsDialogEmptyLabelKeepsLabel(t *testing.T) {
	f := newDialogFixture(t)

	f.dialog.labelEntry.SetText("")
	f.dialog.timeEntry.SetText("2025-03-04 05:06:07")
	f.dialog.Submit()

	assert.False(t, f.dialog.IsOpen())
	assert.Empty(t, f.shown)
	assert.Equal(t, settings.DefaultLabel, f.settings.Label())

	rec, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultLabel, rec.Label)
}

func TestSettingsDialogLabelAppliesBeforeTimeValidation(t *testing.T) {
	f := newDialogFixture(t)

	f.dialog.labelEntry.SetText("Renamed")
	f.dialog.timeEntry.SetText("2025/03/04")
	f.dialog.Submit()

	assert.True(t, f.dialog.IsOpen())
	assert.Equal(t, []string{"Renamed"}, f.shown)
}

func TestSettingsDialogSingleWindow(t *testing.T) {
	f := newDialogFixture(t)
	first := f.dialog.window

	f.dialog.Open()
	assert.Same(t, first, f.dialog.window)

	first.Close()
	assert.False(t, f.dialog.IsOpen())

	f.dialog.Open()
	assert.True(t, f.dialog.IsOpen())
	assert.NotSame(t, first, f.dialog.window)
}
