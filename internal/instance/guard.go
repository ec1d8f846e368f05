package instance

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Notice is printed when another instance holds the lock.
const Notice = "Another instance is already running. Exiting."

var ErrAlreadyRunning = errors.New("another instance is already running")

// Guard holds an exclusive advisory lock for the life of the process.
type Guard struct {
	path string
	file *os.File
	once sync.Once
}

// Acquire takes the lock at path without blocking. It returns
// ErrAlreadyRunning if another process (or descriptor) holds it.
func Acquire(path string) (*Guard, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, "open lock file %s", path)
	}

	if err := lockFile(f); err != nil {
		f.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, ErrAlreadyRunning
		}
		return nil, errors.Wrapf(err, "lock %s", path)
	}

	return &Guard{path: path, file: f}, nil
}

func (g *Guard) Path() string {
	return g.path
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (g *Guard) Release() error {
	var err error
	g.once.Do(func() {
		if uerr := unlockFile(g.file); uerr != nil {
			err = errors.Wrap(uerr, "unlock")
		}
		if cerr := g.file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close lock file")
		}
	})
	return err
}

// Shutdown lets the guard be registered with the shutdown manager.
func (g *Guard) Shutdown() {
	g.Release()
}
