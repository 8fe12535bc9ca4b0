// Package finder resolves the root of a search and enumerates the regular
// files below it.
package finder

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ydkadri/finders/internal/constants"
	"github.com/ydkadri/finders/internal/errors"
	"github.com/ydkadri/finders/internal/io/dlog"
)

// Finder walks a directory tree depth-first.
type Finder struct {
	root string
	// FollowSymlinks descends into linked directories and yields linked files.
	FollowSymlinks bool
	skipped        *errors.MultiError
}

// New resolves root and returns a Finder following symbolic links.
func New(root string) (*Finder, error) {
	path, err := Resolve(root)
	if err != nil {
		return nil, err
	}
	return &Finder{
		root:           path,
		FollowSymlinks: true,
		skipped:        errors.NewMultiError(),
	}, nil
}

// Root returns the resolved root path.
func (f *Finder) Root() string {
	return f.root
}

// Find returns the regular files below the root in traversal order. With a
// non-empty filter only files whose base name contains it are returned.
// Entries that cannot be read are left out; see Skipped.
func (f *Finder) Find(filter string) []string {
	f.skipped = errors.NewMultiError()
	paths := []string{}

	info, err := f.stat(f.root)
	if err != nil {
		f.skip(f.root, err)
		return paths
	}
	if !info.IsDir() {
		if info.Mode().IsRegular() && strings.Contains(info.Name(), filter) {
			paths = append(paths, f.root)
		}
		return paths
	}

	return f.walk(f.root, []os.FileInfo{info}, 0, filter, paths)
}

// Skipped returns the errors of the entries dropped by the last Find, or nil.
func (f *Finder) Skipped() error {
	return f.skipped.ErrorOrNil()
}

// walk appends the files below dir. ancestors holds the directories on the
// current path and is used to detect symlink loops.
func (f *Finder) walk(dir string, ancestors []os.FileInfo, linkDepth int,
	filter string, paths []string) []string {

	entries, err := os.ReadDir(dir)
	if err != nil {
		f.skip(dir, err)
		return paths
	}

	for _, entry := range entries {
		path := joinPath(dir, entry.Name())
		isLink := entry.Type()&fs.ModeSymlink != 0
		if isLink && !f.FollowSymlinks {
			continue
		}

		info, err := f.stat(path)
		if err != nil {
			f.skip(path, err)
			continue
		}

		switch {
		case info.IsDir():
			depth := linkDepth
			if isLink {
				depth++
			}
			if depth > constants.MaxSymlinkDepth {
				f.skip(path, fmt.Errorf("more than %d nested symlinks", constants.MaxSymlinkDepth))
				continue
			}
			if isLoop(ancestors, info) {
				f.skip(path, fmt.Errorf("filesystem loop detected"))
				continue
			}
			paths = f.walk(path, append(ancestors, info), depth, filter, paths)
		case info.Mode().IsRegular():
			if strings.Contains(entry.Name(), filter) {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (f *Finder) stat(path string) (os.FileInfo, error) {
	if f.FollowSymlinks {
		return os.Stat(path)
	}
	return os.Lstat(path)
}

func (f *Finder) skip(path string, err error) {
	f.skipped.Add(errors.Wrap(err, path))
	dlog.Common.Debug("Skipping entry", path, err)
}

func isLoop(ancestors []os.FileInfo, info os.FileInfo) bool {
	for _, ancestor := range ancestors {
		if os.SameFile(ancestor, info) {
			return true
		}
	}
	return false
}

// joinPath keeps the root exactly as given, so a root of "." yields "./a.txt".
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
