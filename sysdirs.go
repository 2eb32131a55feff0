// Package sysdirs resolves platform-specific, user-accessible
// directories: home, cache, config, data, documents and friends.
//
// The resolution mechanism depends on the build target:
//
//   - XDG base directory and XDG user directory specifications on
//     Linux and other Unix systems
//   - the Known Folder system on Windows
//   - the Standard Directories convention on macOS and iOS
//   - the app sandbox directories on Android (requires initialization,
//     see [InitAndroid])
//   - a stub on WebAssembly targets, where every lookup is absent
//
// Exactly one platform implementation is compiled into a binary.
//
// Every function returns a [Path], an optional value: absence means
// the directory is not available on this platform or the variable that
// would supply it is unset. Absence is a normal outcome, not an error.
// Results are chainable:
//
//	dir, err := sysdirs.CacheDir().Join("my-app").Ensure()
//
// Resolution is not cached; each call re-queries the environment.
package sysdirs

import "github.com/thoreinstein/sysdirs/internal/strategy"

func resolve(k strategy.Kind) Path {
	p, ok := active.Resolve(k)
	if !ok {
		return Path{}
	}
	return Path{path: p, ok: true}
}

// HomeDir returns the user's home directory.
//
// Linux/Unix: $HOME (absent if unset, never guessed). macOS: $HOME.
// Windows: the Profile known folder. iOS: the sandbox container root.
// Android: the files directory, after initialization.
func HomeDir() Path { return resolve(strategy.Home) }

// CacheDir returns the user's cache directory.
//
// Linux/Unix: $XDG_CACHE_HOME or ~/.cache. macOS: ~/Library/Caches.
// Windows: the LocalAppData known folder. iOS: sandbox Library/Caches.
// Android: files/cache, after initialization.
func CacheDir() Path { return resolve(strategy.Cache) }

// ConfigDir returns the user's config directory.
//
// Linux/Unix: $XDG_CONFIG_HOME or ~/.config.
// macOS/iOS: Library/Application Support. Windows: the RoamingAppData
// known folder. Android: the files directory.
func ConfigDir() Path { return resolve(strategy.Config) }

// ConfigLocalDir returns the user's local (non-roaming) config
// directory. It differs from [ConfigDir] only on Windows, where it is
// the LocalAppData known folder.
func ConfigLocalDir() Path { return resolve(strategy.ConfigLocal) }

// DataDir returns the user's data directory.
//
// Linux/Unix: $XDG_DATA_HOME or ~/.local/share.
// macOS/iOS: Library/Application Support. Windows: the RoamingAppData
// known folder. Android: the files directory.
func DataDir() Path { return resolve(strategy.Data) }

// DataLocalDir returns the user's local (non-roaming) data directory.
// It differs from [DataDir] only on Windows, where it is the
// LocalAppData known folder.
func DataLocalDir() Path { return resolve(strategy.DataLocal) }

// ExecutableDir returns the directory for user executables:
// $XDG_BIN_HOME or ~/.local/bin on Linux/Unix, absent elsewhere.
func ExecutableDir() Path { return resolve(strategy.Executable) }

// PreferenceDir returns the user's preference directory.
//
// Linux/Unix: same as [ConfigDir]. macOS/iOS: Library/Preferences.
// Windows: the RoamingAppData known folder. Android: the files
// directory.
func PreferenceDir() Path { return resolve(strategy.Preference) }

// RuntimeDir returns $XDG_RUNTIME_DIR on Linux/Unix, with no fallback;
// absent everywhere else.
func RuntimeDir() Path { return resolve(strategy.Runtime) }

// StateDir returns $XDG_STATE_HOME or ~/.local/state on Linux/Unix;
// absent everywhere else.
func StateDir() Path { return resolve(strategy.State) }

// AudioDir returns the user's music directory: $XDG_MUSIC_DIR on
// Linux, ~/Music on macOS, the Music known folder on Windows.
func AudioDir() Path { return resolve(strategy.Audio) }

// DesktopDir returns the user's desktop directory: $XDG_DESKTOP_DIR on
// Linux, ~/Desktop on macOS, the Desktop known folder on Windows.
func DesktopDir() Path { return resolve(strategy.Desktop) }

// DocumentDir returns the user's documents directory:
// $XDG_DOCUMENTS_DIR on Linux, ~/Documents on macOS, the Documents
// known folder on Windows, sandbox Documents on iOS.
func DocumentDir() Path { return resolve(strategy.Document) }

// DownloadDir returns the user's downloads directory:
// $XDG_DOWNLOAD_DIR on Linux, ~/Downloads on macOS, the Downloads
// known folder on Windows.
func DownloadDir() Path { return resolve(strategy.Download) }

// FontDir returns the user's font directory: the data directory plus
// /fonts on Linux/Unix, ~/Library/Fonts on macOS; absent elsewhere.
func FontDir() Path { return resolve(strategy.Font) }

// PictureDir returns the user's pictures directory: $XDG_PICTURES_DIR
// on Linux, ~/Pictures on macOS, the Pictures known folder on Windows.
func PictureDir() Path { return resolve(strategy.Picture) }

// PublicDir returns the user's public share directory:
// $XDG_PUBLICSHARE_DIR on Linux, ~/Public on macOS, the Public known
// folder on Windows.
func PublicDir() Path { return resolve(strategy.Public) }

// TemplateDir returns the user's templates directory:
// $XDG_TEMPLATES_DIR on Linux, the Templates known folder on Windows;
// absent elsewhere.
func TemplateDir() Path { return resolve(strategy.Template) }

// VideoDir returns the user's videos directory: $XDG_VIDEOS_DIR on
// Linux, ~/Movies on macOS, the Videos known folder on Windows.
func VideoDir() Path { return resolve(strategy.Video) }

// TempDir returns the temporary directory: $TMPDIR or /tmp on
// Linux/Unix, $TMPDIR on macOS, %TEMP% on Windows, sandbox tmp on iOS,
// files/tmp on Android.
func TempDir() Path { return resolve(strategy.Temp) }

// LibraryDir returns the Library directory on Apple platforms:
// ~/Library on macOS, sandbox Library on iOS; absent everywhere else.
func LibraryDir() Path { return resolve(strategy.Library) }
