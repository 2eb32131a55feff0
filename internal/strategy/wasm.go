package strategy

// WASM is the deliberate no-op strategy for WebAssembly targets: the
// platform has no addressable persistent filesystem locations, so every
// kind resolves to absence. This is normal operation, not failure.
type WASM struct{}

// Resolve implements Strategy.
func (WASM) Resolve(Kind) (string, bool) {
	return "", false
}
