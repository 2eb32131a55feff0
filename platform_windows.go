//go:build windows

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/env"
	"github.com/thoreinstein/sysdirs/internal/strategy"
	"github.com/thoreinstein/sysdirs/internal/winfolders"
)

var active strategy.Strategy = strategy.Windows{
	Env:     env.OS{},
	Folders: winfolders.API{},
}
