// Package hostctx exposes the application context supplied by the
// process host on Android.
//
// Native Go code cannot reach the Android Context on its own; the
// embedding glue (a JNI shim or gomobile bindings) owns it. That glue
// binds an accessor here once at startup, and automatic initialization
// consults it on first use.
package hostctx

import "sync"

var (
	mu       sync.RWMutex
	filesDir func() (string, bool)
)

// Bind registers the accessor reporting the application files
// directory (the value of Context.getFilesDir). Later binds replace
// earlier ones.
func Bind(fn func() (string, bool)) {
	mu.Lock()
	defer mu.Unlock()
	filesDir = fn
}

// FilesDir reports the application files directory. Absent until an
// accessor is bound and the host can supply a value.
func FilesDir() (string, bool) {
	mu.RLock()
	fn := filesDir
	mu.RUnlock()
	if fn == nil {
		return "", false
	}
	return fn()
}
