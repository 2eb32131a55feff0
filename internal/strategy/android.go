package strategy

import (
	"path/filepath"

	"github.com/thoreinstein/sysdirs/internal/androidstate"
)

// Android resolves directories inside the app sandbox. Nothing about
// the sandbox is knowable from the environment, so every resolution
// consults the init state first: before initialization every kind is
// absent, never a guessed path.
//
// The sandbox has no notion of separate config, data and preference
// locations; those kinds all collapse onto the files directory.
type Android struct {
	State *androidstate.State
}

// Resolve implements Strategy.
func (a Android) Resolve(k Kind) (string, bool) {
	switch k {
	case Home, Config, ConfigLocal, Data, DataLocal, Preference:
		return a.State.FilesDir()
	case Cache:
		return a.State.CacheDir()
	case Temp:
		root, ok := a.State.FilesDir()
		if !ok {
			return "", false
		}
		return filepath.Join(root, "tmp"), true
	default:
		// User directories are not reachable from native code.
		return "", false
	}
}
