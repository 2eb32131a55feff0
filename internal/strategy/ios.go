package strategy

import "path/filepath"

// RootFunc reports the app sandbox container root.
type RootFunc func() (string, bool)

// IOS resolves directories inside the app sandbox container. Only the
// kinds meaningful in a sandboxed app resolve; everything else is
// absent. The container root is supplied by the OS sandbox accessor,
// not an environment variable.
type IOS struct {
	Root RootFunc
}

// Resolve implements Strategy.
func (s IOS) Resolve(k Kind) (string, bool) {
	root, ok := s.Root()
	if !ok {
		return "", false
	}
	switch k {
	case Home:
		return root, true
	case Cache:
		return filepath.Join(root, "Library", "Caches"), true
	case Config, ConfigLocal, Data, DataLocal:
		return filepath.Join(root, "Library", "Application Support"), true
	case Preference:
		return filepath.Join(root, "Library", "Preferences"), true
	case Document:
		return filepath.Join(root, "Documents"), true
	case Library:
		return filepath.Join(root, "Library"), true
	case Temp:
		return filepath.Join(root, "tmp"), true
	default:
		return "", false
	}
}
