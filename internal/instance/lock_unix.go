//go:build unix

package instance

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

var errWouldBlock = errors.New("lock held")

func lockFile(f *os.File) error {
	err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) {
		return errWouldBlock
	}
	return err
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
