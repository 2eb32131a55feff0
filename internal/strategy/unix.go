package strategy

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/sysdirs/internal/env"
)

// Unix resolves directories per the XDG base directory and XDG user
// directory specifications.
//
// Base directories check their XDG_*_HOME variable and fall back to a
// fixed path under $HOME. Runtime has no fallback. User directories
// (Desktop, Documents, ...) are read from their XDG_*_DIR variables with
// no synthesized fallback; on non-Linux Unix systems, where xdg-user-dirs
// is not conventionally present, they are unconditionally absent.
//
// Values taken from the environment get a leading tilde expanded against
// $HOME. The spec forbids relative values, but "~/cache" is a common
// enough misconfiguration to honor.
type Unix struct {
	Env env.Source

	// UserDirs enables XDG_*_DIR user directory lookups.
	UserDirs bool
}

// NewLinux returns the Linux flavor, with user directory support.
func NewLinux(src env.Source) Unix {
	return Unix{Env: src, UserDirs: true}
}

// NewUnix returns the generic Unix flavor used on the BSDs and other
// non-Linux Unix targets.
func NewUnix(src env.Source) Unix {
	return Unix{Env: src}
}

// Resolve implements Strategy.
func (u Unix) Resolve(k Kind) (string, bool) {
	switch k {
	case Home:
		return u.home()
	case Cache:
		return u.xdg("XDG_CACHE_HOME", ".cache")
	case Config, ConfigLocal, Preference:
		return u.xdg("XDG_CONFIG_HOME", ".config")
	case Data, DataLocal:
		return u.xdg("XDG_DATA_HOME", ".local/share")
	case Executable:
		return u.xdg("XDG_BIN_HOME", ".local/bin")
	case State:
		return u.xdg("XDG_STATE_HOME", ".local/state")
	case Runtime:
		return u.envPath("XDG_RUNTIME_DIR")
	case Font:
		data, ok := u.xdg("XDG_DATA_HOME", ".local/share")
		if !ok {
			return "", false
		}
		return filepath.Join(data, "fonts"), true
	case Temp:
		if v, ok := u.envPath("TMPDIR"); ok {
			return v, true
		}
		return "/tmp", true
	case Audio:
		return u.userDir("XDG_MUSIC_DIR")
	case Desktop:
		return u.userDir("XDG_DESKTOP_DIR")
	case Document:
		return u.userDir("XDG_DOCUMENTS_DIR")
	case Download:
		return u.userDir("XDG_DOWNLOAD_DIR")
	case Picture:
		return u.userDir("XDG_PICTURES_DIR")
	case Public:
		return u.userDir("XDG_PUBLICSHARE_DIR")
	case Template:
		return u.userDir("XDG_TEMPLATES_DIR")
	case Video:
		return u.userDir("XDG_VIDEOS_DIR")
	default:
		// Library is an Apple concept.
		return "", false
	}
}

func (u Unix) home() (string, bool) {
	return u.Env.Lookup("HOME")
}

// envPath reads a path-valued variable and expands a leading tilde.
func (u Unix) envPath(name string) (string, bool) {
	v, ok := u.Env.Lookup(name)
	if !ok {
		return "", false
	}
	return u.expandTilde(v)
}

// xdg resolves an XDG base directory: the variable if set, otherwise
// the fixed default under $HOME. Absent when both are missing.
func (u Unix) xdg(name, fallback string) (string, bool) {
	if v, ok := u.envPath(name); ok {
		return v, true
	}
	h, ok := u.home()
	if !ok {
		return "", false
	}
	return filepath.Join(h, fallback), true
}

func (u Unix) userDir(name string) (string, bool) {
	if !u.UserDirs {
		return "", false
	}
	return u.envPath(name)
}

// expandTilde rewrites "~" and "~/rest" against $HOME. Other values,
// including "~user" forms, pass through unchanged.
func (u Unix) expandTilde(p string) (string, bool) {
	if p == "~" {
		return u.home()
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		h, hok := u.home()
		if !hok {
			return "", false
		}
		return filepath.Join(h, rest), true
	}
	return p, true
}
