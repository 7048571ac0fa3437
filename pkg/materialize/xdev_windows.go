//go:build windows

package materialize

import (
	"errors"

	"golang.org/x/sys/windows"
)

// IsCrossDevice reports whether err is a link failure across volumes
func IsCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}
