//go:build android && sysdirs_auto

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/androidstate"
	"github.com/thoreinstein/sysdirs/internal/hostctx"
)

// The sysdirs_auto build tag enables automatic initialization: the
// first resolution queries the host-context accessor and stores a
// successful result. A prior [InitAndroid] call always wins.
func init() {
	androidstate.Default.SetDetector(hostctx.FilesDir)
}

// RegisterContext binds the host-context accessor used for automatic
// initialization. The embedding glue (JNI shim, gomobile bindings)
// calls this at startup with a function reporting the value of
// Context.getFilesDir.
func RegisterContext(fn func() (string, bool)) {
	hostctx.Bind(fn)
}
