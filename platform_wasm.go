//go:build (js && wasm) || wasip1

package sysdirs

import "github.com/thoreinstein/sysdirs/internal/strategy"

// WebAssembly has no addressable persistent filesystem locations;
// every directory function returns absence.
var active strategy.Strategy = strategy.WASM{}
