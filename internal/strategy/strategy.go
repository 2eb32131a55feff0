// Package strategy implements per-platform directory resolution.
//
// Each target platform family has one Strategy implementation mapping
// every directory Kind to zero or one absolute path. Absence is a
// normal, frequent outcome ("this kind has no meaning here" or "the
// variable that would supply it is unset"), never an error.
//
// Strategies are pure functions of their injected collaborators (an
// environment source, a known-folder oracle, the Android init state),
// so every platform table is testable from any build host. The public
// API binds exactly one strategy per build artifact.
package strategy

// Kind identifies a user-accessible directory category.
type Kind int

// The closed set of resolvable directory kinds.
const (
	Home Kind = iota
	Cache
	Config
	ConfigLocal
	Data
	DataLocal
	Executable
	Preference
	Runtime
	State
	Audio
	Desktop
	Document
	Download
	Font
	Picture
	Public
	Template
	Video
	Temp
	Library
	numKinds
)

var kindNames = [numKinds]string{
	Home:        "home",
	Cache:       "cache",
	Config:      "config",
	ConfigLocal: "config-local",
	Data:        "data",
	DataLocal:   "data-local",
	Executable:  "executable",
	Preference:  "preference",
	Runtime:     "runtime",
	State:       "state",
	Audio:       "audio",
	Desktop:     "desktop",
	Document:    "document",
	Download:    "download",
	Font:        "font",
	Picture:     "picture",
	Public:      "public",
	Template:    "template",
	Video:       "video",
	Temp:        "temp",
	Library:     "library",
}

// String returns the lowercase name of the kind, e.g. "config-local".
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns all directory kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Parse returns the kind with the given name, as produced by String.
func Parse(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Strategy resolves a directory kind to an absolute path.
//
// The boolean result distinguishes a resolved path from absence;
// resolution never fails.
type Strategy interface {
	Resolve(k Kind) (string, bool)
}
