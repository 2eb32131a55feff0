//go:build unix && !linux && !darwin

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/env"
	"github.com/thoreinstein/sysdirs/internal/strategy"
)

// The BSDs and other Unix targets follow XDG base directories but have
// no conventional xdg-user-dirs, so user directories are absent.
var active strategy.Strategy = strategy.NewUnix(env.OS{})
