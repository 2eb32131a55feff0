// Package androidstate holds the process-wide Android sandbox paths.
//
// Android grants each app a randomized sandbox whose location cannot be
// derived from the environment; the host must supply it. The state is
// populated either manually (one explicit Init call from the embedding
// host's startup glue) or opportunistically on first use through a
// detector bound by the auto-init build flavor.
package androidstate

import (
	"path/filepath"
	"sync"
)

// State is a thread-safe cell for the sandbox files and cache
// directories. The zero value is uninitialized: every read reports
// absence until an Init call or a successful detection.
//
// Manual initialization is last-write-wins and may be repeated;
// detection never overwrites a value already present. There is no
// transition back to uninitialized.
type State struct {
	mu       sync.RWMutex
	filesDir string
	cacheDir string
	detector func() (string, bool)
}

// Default is the process-wide state consulted by the Android build of
// the public API. It lives for the process lifetime.
var Default = &State{}

// Init stores the sandbox files directory (the value of
// Context.getFilesDir) and derives the cache directory as
// filesDir/cache. Calling Init again replaces both values.
func (s *State) Init(filesDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filesDir = filesDir
	s.cacheDir = filepath.Join(filesDir, "cache")
}

// InitWithCache stores the files and cache directories separately. Use
// this when the app has the real value of Context.getCacheDir.
func (s *State) InitWithCache(filesDir, cacheDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filesDir = filesDir
	s.cacheDir = cacheDir
}

// SetDetector registers the host-context accessor consulted while the
// state is still uninitialized. The detector may be called from any
// goroutine and on every read until it succeeds.
func (s *State) SetDetector(fn func() (string, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detector = fn
}

// FilesDir reports the sandbox files directory.
//
// If uninitialized and a detector is bound, the detector is queried and
// a successful result is stored, unless a concurrent writer got there
// first; the stored value always wins.
func (s *State) FilesDir() (string, bool) {
	s.mu.RLock()
	files := s.filesDir
	detect := s.detector
	s.mu.RUnlock()
	if files != "" {
		return files, true
	}
	if detect == nil {
		return "", false
	}
	detected, ok := detect()
	if !ok {
		return "", false
	}

	s.mu.Lock()
	if s.filesDir == "" {
		s.filesDir = detected
		s.cacheDir = filepath.Join(detected, "cache")
	}
	files = s.filesDir
	s.mu.Unlock()
	return files, true
}

// CacheDir reports the sandbox cache directory, triggering detection
// the same way FilesDir does.
func (s *State) CacheDir() (string, bool) {
	s.mu.RLock()
	cache := s.cacheDir
	s.mu.RUnlock()
	if cache != "" {
		return cache, true
	}
	if _, ok := s.FilesDir(); !ok {
		return "", false
	}
	s.mu.RLock()
	cache = s.cacheDir
	s.mu.RUnlock()
	return cache, cache != ""
}
