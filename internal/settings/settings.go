package settings

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// EntryLayout is the layout users type into the settings dialog.
const EntryLayout = "2006-01-02 15:04:05"

// InvalidTimeMessage is shown when the dialog's timestamp does not parse.
const InvalidTimeMessage = "The start time format is invalid. Please use YYYY-MM-DD HH:MM:SS"

var ErrInvalidTime = errors.New("invalid start time format")

// Settings holds the live anchor and label. Writes happen on the UI
// goroutine; the counter loop reads the anchor concurrently.
type Settings struct {
	anchor *atomic.Time
	label  *atomic.String
}

func New(rec Record) *Settings {
	return &Settings{
		anchor: atomic.NewTime(rec.Anchor),
		label:  atomic.NewString(rec.Label),
	}
}

func (s *Settings) Anchor() time.Time {
	return s.anchor.Load()
}

func (s *Settings) Label() string {
	return s.label.Load()
}

func (s *Settings) Snapshot() Record {
	return Record{Anchor: s.Anchor(), Label: s.Label()}
}

func (s *Settings) SetAnchor(t time.Time) {
	s.anchor.Store(t)
}

func (s *Settings) SetLabel(label string) {
	s.label.Store(label)
}

// CommitResult reports what a commit changed.
type CommitResult struct {
	LabelChanged bool
	Saved        bool
}

// Commit applies dialog input. A non-empty label is adopted even when the
// timestamp is rejected; the anchor and the file change only when timeText
// parses with EntryLayout and the save succeeds.
func Commit(s *Settings, store *Store, labelText, timeText string) (CommitResult, error) {
	var res CommitResult

	if labelText != "" {
		s.SetLabel(labelText)
		res.LabelChanged = true
	}

	anchor, err := time.ParseInLocation(EntryLayout, timeText, time.Local)
	if err != nil {
		return res, errors.WithStack(ErrInvalidTime)
	}

	candidate := Record{Anchor: anchor, Label: s.Label()}
	if err := store.Save(candidate); err != nil {
		return res, err
	}
	s.SetAnchor(anchor)
	res.Saved = true
	return res, nil
}

// FormatEntry renders t the way the dialog expects it back.
func FormatEntry(t time.Time) string {
	return t.In(time.Local).Format(EntryLayout)
}
