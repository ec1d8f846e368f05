package settings

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	DefaultLabel = "Accountibility Counter"

	// storedLayout matches a naive ISO-8601 local timestamp.
	storedLayout = "2006-01-02T15:04:05"

	fileMode = 0o644
)

// DefaultAnchor is 2024-07-05 21:00:00 local time.
func DefaultAnchor() time.Time {
	return time.Date(2024, time.July, 5, 21, 0, 0, 0, time.Local)
}

// Record is the persisted pair.
type Record struct {
	Anchor time.Time
	Label  string
}

func DefaultRecord() Record {
	return Record{Anchor: DefaultAnchor(), Label: DefaultLabel}
}

type fileRecord struct {
	StartTime *string `json:"start_time,omitempty"`
	TitleText *string `json:"title_text,omitempty"`
}

// Store reads and writes the settings file. Only one process may run at a
// time, so writes are last-writer-wins with no locking.
type Store struct {
	fs   afero.Fs
	path string
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored record, or the defaults if the file does not exist.
// Keys absent from the file fall back to their defaults individually.
func (s *Store) Load() (Record, error) {
	rec := DefaultRecord()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		exists, statErr := afero.Exists(s.fs, s.path)
		if statErr == nil && !exists {
			return rec, nil
		}
		return Record{}, errors.Wrapf(err, "read settings %s", s.path)
	}

	var fr fileRecord
	if err := json.Unmarshal(data, &fr); err != nil {
		return Record{}, errors.Wrapf(err, "decode settings %s", s.path)
	}

	if fr.StartTime != nil {
		anchor, err := parseStored(*fr.StartTime)
		if err != nil {
			return Record{}, errors.Wrapf(err, "decode start_time in %s", s.path)
		}
		rec.Anchor = anchor
	}
	if fr.TitleText != nil {
		rec.Label = *fr.TitleText
	}

	return rec, nil
}

// Save overwrites the file with rec via a sibling temp file and rename.
func (s *Store) Save(rec Record) error {
	start := rec.Anchor.In(time.Local).Format(storedLayout)
	title := rec.Label
	data, err := json.Marshal(fileRecord{StartTime: &start, TitleText: &title})
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}

	dir := filepath.Dir(s.path)
	tmp, err := afero.TempFile(s.fs, dir, ".settings-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return errors.Wrap(err, "write settings")
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return errors.Wrap(err, "close settings")
	}
	if err := s.fs.Chmod(tmpName, fileMode); err != nil {
		s.fs.Remove(tmpName)
		return errors.Wrap(err, "chmod settings")
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return errors.Wrapf(err, "replace settings %s", s.path)
	}
	return nil
}

func parseStored(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(storedLayout, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid timestamp %q", value)
	}
	return t.In(time.Local), nil
}
