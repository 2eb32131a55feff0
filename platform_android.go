//go:build android

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/androidstate"
	"github.com/thoreinstein/sysdirs/internal/strategy"
)

var active strategy.Strategy = strategy.Android{State: androidstate.Default}

// InitAndroid stores the app sandbox files directory, the value of
// Context.getFilesDir on the Java side. Call it once at startup from
// the embedding host; before that, every directory function returns
// absence. Calling it again replaces the stored root.
//
// The cache directory is derived as filesDir/cache; use
// [InitAndroidWithCache] to supply the real one.
func InitAndroid(filesDir string) {
	androidstate.Default.Init(filesDir)
}

// InitAndroidWithCache is like [InitAndroid] but also stores the cache
// directory explicitly, the value of Context.getCacheDir.
func InitAndroidWithCache(filesDir, cacheDir string) {
	androidstate.Default.InitWithCache(filesDir, cacheDir)
}
