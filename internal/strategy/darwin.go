package strategy

import (
	"path/filepath"
	"sync/atomic"

	"github.com/thoreinstein/sysdirs/internal/env"
)

// Domain selects the Apple search-path domain for directory lookups.
type Domain int32

// Search-path domains, in the order macOS enumerates them.
const (
	// DomainUser anchors lookups at the user's home directory.
	DomainUser Domain = iota
	// DomainLocal anchors lookups at the machine root (/Library/...).
	DomainLocal
	// DomainNetwork anchors lookups at /Network.
	DomainNetwork
	// DomainSystem anchors lookups at /System.
	DomainSystem
)

// Darwin resolves directories per the macOS Standard Directories
// convention: fixed Library subpaths under the active search-path
// domain root, and fixed media folders under $HOME.
//
// Media folders (Music, Desktop, Documents, ...) only exist in the user
// domain; in other domains they resolve to absence. Home and Temp are
// domain-independent.
type Darwin struct {
	Env    env.Source
	domain atomic.Int32
}

// NewDarwin returns a Darwin strategy in the user domain.
func NewDarwin(src env.Source) *Darwin {
	return &Darwin{Env: src}
}

// SetDomain switches the search-path domain for subsequent lookups.
// Safe for concurrent use with Resolve.
func (d *Darwin) SetDomain(dom Domain) {
	d.domain.Store(int32(dom))
}

// Resolve implements Strategy.
func (d *Darwin) Resolve(k Kind) (string, bool) {
	switch k {
	case Home:
		return d.home()
	case Temp:
		return d.Env.Lookup("TMPDIR")
	case Cache:
		return d.library("Caches")
	case Config, ConfigLocal, Data, DataLocal:
		return d.library("Application Support")
	case Preference:
		return d.library("Preferences")
	case Font:
		return d.library("Fonts")
	case Library:
		return d.library("")
	case Audio:
		return d.mediaDir("Music")
	case Desktop:
		return d.mediaDir("Desktop")
	case Document:
		return d.mediaDir("Documents")
	case Download:
		return d.mediaDir("Downloads")
	case Picture:
		return d.mediaDir("Pictures")
	case Public:
		return d.mediaDir("Public")
	case Video:
		return d.mediaDir("Movies")
	default:
		// Executable, Runtime, State and Template have no macOS analog.
		return "", false
	}
}

func (d *Darwin) home() (string, bool) {
	return d.Env.Lookup("HOME")
}

// library returns the Library subdirectory under the active domain root.
func (d *Darwin) library(sub string) (string, bool) {
	root, ok := d.domainRoot()
	if !ok {
		return "", false
	}
	if sub == "" {
		return filepath.Join(root, "Library"), true
	}
	return filepath.Join(root, "Library", sub), true
}

func (d *Darwin) domainRoot() (string, bool) {
	switch Domain(d.domain.Load()) {
	case DomainLocal:
		return "/", true
	case DomainNetwork:
		return "/Network", true
	case DomainSystem:
		return "/System", true
	default:
		return d.home()
	}
}

func (d *Darwin) mediaDir(name string) (string, bool) {
	if Domain(d.domain.Load()) != DomainUser {
		return "", false
	}
	h, ok := d.home()
	if !ok {
		return "", false
	}
	return filepath.Join(h, name), true
}
