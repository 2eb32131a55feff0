package sysdirs

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ErrNotAvailable indicates a directory that does not resolve on this
// platform. [Path.Ensure] fails with it when chained from an absent
// resolution.
var ErrNotAvailable = errors.New("directory not available on this platform")

// DefaultDirPerm is the default permission for newly created
// directories (private).
const DefaultDirPerm = 0o700

// Path is an optional absolute filesystem path. The zero value is
// absent. Join and Ensure chain on it, so a whole resolution pipeline
// reads as one expression and absence propagates to the end.
type Path struct {
	path string
	ok   bool
}

// Ok reports whether the path is present.
func (p Path) Ok() bool { return p.ok }

// Get returns the path and whether it is present.
func (p Path) Get() (string, bool) { return p.path, p.ok }

// String returns the path, or the empty string when absent.
func (p Path) String() string { return p.path }

// Join appends path elements to a present path. Absence propagates
// unchanged.
func (p Path) Join(elem ...string) Path {
	if !p.ok {
		return Path{}
	}
	return Path{path: filepath.Join(append([]string{p.path}, elem...)...), ok: true}
}

// Ensure creates the directory, with any missing parents, and returns
// its path. It is idempotent: an existing directory is success.
//
// Fails with [ErrNotAvailable] when the path is absent; otherwise the
// underlying I/O error is returned unmodified in the chain.
func (p Path) Ensure() (string, error) {
	if !p.ok {
		return "", ErrNotAvailable
	}
	if err := EnsureDir(p.path, 0); err != nil {
		return "", errors.Wrapf(err, "ensuring %s", p.path)
	}
	return p.path, nil
}

// EnsureDir creates the directory and any necessary parents with the
// given permissions. If perm is 0, DefaultDirPerm (0700) is used.
// It is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
