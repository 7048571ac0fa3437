//go:build unix

package materialize

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsCrossDevice reports whether err is a link failure across devices
func IsCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
