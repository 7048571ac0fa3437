package testutil

import (
	"sync"

	"github.com/arthur-debert/artlink/pkg/types"
)

// FaultyFS wraps a types.FS and fails every hard link with LinkErr. The
// remaining operations go to the wrapped filesystem.
type FaultyFS struct {
	types.FS
	LinkErr error

	mu    sync.Mutex
	links int
}

// NewFaultyFS wraps fs
func NewFaultyFS(fs types.FS, linkErr error) *FaultyFS {
	return &FaultyFS{FS: fs, LinkErr: linkErr}
}

func (f *FaultyFS) Link(oldname, newname string) error {
	f.mu.Lock()
	f.links++
	f.mu.Unlock()
	if f.LinkErr != nil {
		return f.LinkErr
	}
	return f.FS.Link(oldname, newname)
}

// Links returns how many hard links were attempted
func (f *FaultyFS) Links() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.links
}
