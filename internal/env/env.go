// Package env provides access to process environment variables for
// directory resolution.
//
// The XDG base directory specification requires that a variable set to
// the empty string be treated as if it were unset. Every lookup in this
// package applies that rule, so strategies never see an empty value.
package env

import "os"

// Source reads named environment variables.
//
// Lookup reports the value of the named variable and whether it is set.
// A variable set to the empty string is reported as unset.
type Source interface {
	Lookup(name string) (string, bool)
}

// OS reads the live process environment. Each call re-queries the
// environment; nothing is cached.
type OS struct{}

// Lookup implements Source using os.LookupEnv.
func (OS) Lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Map is an in-memory Source for tests. Keys mapped to the empty string
// are reported as unset, matching OS behavior.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
