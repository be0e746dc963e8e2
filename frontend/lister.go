package frontend

import (
	"fmt"

	"github.com/spf13/afero"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Lister enumerates a single directory.
type Lister interface {
	List(dir string) ([]Entry, error)
}

// FSLister lists directories of an afero filesystem.
type FSLister struct {
	Fs afero.Fs
}

func NewFSLister(fs afero.Fs) *FSLister { return &FSLister{Fs: fs} }

func (l *FSLister) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	out := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		out = append(out, Entry{Name: fi.Name(), IsDir: fi.IsDir()})
	}
	return out, nil
}
