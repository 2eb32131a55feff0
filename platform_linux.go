//go:build linux && !android

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/env"
	"github.com/thoreinstein/sysdirs/internal/strategy"
)

var active strategy.Strategy = strategy.NewLinux(env.OS{})
