//go:build !unix && !windows

package materialize

// IsCrossDevice always reports false on platforms without hard links
func IsCrossDevice(error) bool {
	return false
}
