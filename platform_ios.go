//go:build ios

package sysdirs

import (
	"os"

	"github.com/thoreinstein/sysdirs/internal/strategy"
)

// On iOS the process home directory is the sandbox container root.
func sandboxRoot() (string, bool) {
	h, err := os.UserHomeDir()
	if err != nil || h == "" {
		return "", false
	}
	return h, true
}

var active strategy.Strategy = strategy.IOS{Root: sandboxRoot}
