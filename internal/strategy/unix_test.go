package strategy

import (
	"testing"

	"github.com/thoreinstein/sysdirs/internal/env"
)

func TestLinuxFallbacks(t *testing.T) {
	u := NewLinux(env.Map{"HOME": "/home/alice"})

	tests := []struct {
		kind Kind
		want string
	}{
		{Home, "/home/alice"},
		{Cache, "/home/alice/.cache"},
		{Config, "/home/alice/.config"},
		{ConfigLocal, "/home/alice/.config"},
		{Data, "/home/alice/.local/share"},
		{DataLocal, "/home/alice/.local/share"},
		{Executable, "/home/alice/.local/bin"},
		{Preference, "/home/alice/.config"},
		{State, "/home/alice/.local/state"},
		{Font, "/home/alice/.local/share/fonts"},
		{Temp, "/tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := u.Resolve(tt.kind)
			if !ok {
				t.Fatalf("Resolve(%v) absent, want %q", tt.kind, tt.want)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLinuxEnvOverrides(t *testing.T) {
	u := NewLinux(env.Map{
		"HOME":            "/home/alice",
		"XDG_CACHE_HOME":  "/custom/cache",
		"XDG_CONFIG_HOME": "/custom/config",
		"XDG_DATA_HOME":   "/custom/data",
		"XDG_STATE_HOME":  "/custom/state",
		"XDG_BIN_HOME":    "/custom/bin",
		"XDG_RUNTIME_DIR": "/run/user/1000",
		"TMPDIR":          "/custom/tmp",
	})

	tests := []struct {
		kind Kind
		want string
	}{
		{Cache, "/custom/cache"},
		{Config, "/custom/config"},
		{Data, "/custom/data"},
		{State, "/custom/state"},
		{Executable, "/custom/bin"},
		{Runtime, "/run/user/1000"},
		{Temp, "/custom/tmp"},
		{Font, "/custom/data/fonts"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := u.Resolve(tt.kind)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%v) = (%q, %v), want %q", tt.kind, got, ok, tt.want)
			}
		})
	}
}

func TestLinuxEmptyEnvEqualsUnset(t *testing.T) {
	unset := NewLinux(env.Map{"HOME": "/home/alice"})
	empty := NewLinux(env.Map{
		"HOME":            "/home/alice",
		"XDG_CACHE_HOME":  "",
		"XDG_CONFIG_HOME": "",
		"XDG_DATA_HOME":   "",
		"XDG_RUNTIME_DIR": "",
		"XDG_MUSIC_DIR":   "",
	})

	for _, k := range Kinds() {
		gotU, okU := unset.Resolve(k)
		gotE, okE := empty.Resolve(k)
		if gotU != gotE || okU != okE {
			t.Errorf("Resolve(%v): empty env gave (%q, %v), unset gave (%q, %v)", k, gotE, okE, gotU, okU)
		}
	}
}

func TestLinuxUserDirs(t *testing.T) {
	u := NewLinux(env.Map{
		"HOME":                "/home/alice",
		"XDG_MUSIC_DIR":       "/home/alice/Music",
		"XDG_DESKTOP_DIR":     "/home/alice/Desktop",
		"XDG_DOCUMENTS_DIR":   "/home/alice/Documents",
		"XDG_DOWNLOAD_DIR":    "/home/alice/Downloads",
		"XDG_PICTURES_DIR":    "/home/alice/Pictures",
		"XDG_PUBLICSHARE_DIR": "/home/alice/Public",
		"XDG_TEMPLATES_DIR":   "/home/alice/Templates",
		"XDG_VIDEOS_DIR":      "/home/alice/Videos",
	})

	tests := []struct {
		kind Kind
		want string
	}{
		{Audio, "/home/alice/Music"},
		{Desktop, "/home/alice/Desktop"},
		{Document, "/home/alice/Documents"},
		{Download, "/home/alice/Downloads"},
		{Picture, "/home/alice/Pictures"},
		{Public, "/home/alice/Public"},
		{Template, "/home/alice/Templates"},
		{Video, "/home/alice/Videos"},
	}

	for _, tt := range tests {
		got, ok := u.Resolve(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%v) = (%q, %v), want %q", tt.kind, got, ok, tt.want)
		}
	}
}

func TestLinuxUserDirsNoSynthesizedFallback(t *testing.T) {
	u := NewLinux(env.Map{"HOME": "/home/alice"})

	for _, k := range []Kind{Audio, Desktop, Document, Download, Picture, Public, Template, Video} {
		if got, ok := u.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q with no XDG user dir var set, want absence", k, got)
		}
	}
}

func TestLinuxRuntimeHasNoFallback(t *testing.T) {
	u := NewLinux(env.Map{"HOME": "/home/alice"})

	if got, ok := u.Resolve(Runtime); ok {
		t.Errorf("Resolve(Runtime) = %q with XDG_RUNTIME_DIR unset, want absence", got)
	}
}

func TestLinuxNoHome(t *testing.T) {
	u := NewLinux(env.Map{})

	// Home is never guessed; everything anchored on it is absent too.
	for _, k := range []Kind{Home, Cache, Config, Data, State, Executable, Font} {
		if got, ok := u.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q with HOME unset, want absence", k, got)
		}
	}

	// Temp still falls back to /tmp.
	if got, ok := u.Resolve(Temp); !ok || got != "/tmp" {
		t.Errorf("Resolve(Temp) = (%q, %v), want /tmp", got, ok)
	}

	// Explicit, non-tilde variables still resolve without a home.
	u = NewLinux(env.Map{"XDG_CACHE_HOME": "/custom/cache"})
	if got, ok := u.Resolve(Cache); !ok || got != "/custom/cache" {
		t.Errorf("Resolve(Cache) = (%q, %v), want /custom/cache", got, ok)
	}
}

func TestLinuxTildeExpansion(t *testing.T) {
	u := NewLinux(env.Map{
		"HOME":            "/home/alice",
		"XDG_CACHE_HOME":  "~/my-cache",
		"XDG_CONFIG_HOME": "~",
		"XDG_DATA_HOME":   "~alice/data", // not expanded
	})

	tests := []struct {
		kind Kind
		want string
	}{
		{Cache, "/home/alice/my-cache"},
		{Config, "/home/alice"},
		{Data, "~alice/data"},
	}

	for _, tt := range tests {
		got, ok := u.Resolve(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%v) = (%q, %v), want %q", tt.kind, got, ok, tt.want)
		}
	}
}

func TestLinuxLibraryAbsent(t *testing.T) {
	u := NewLinux(env.Map{"HOME": "/home/alice"})

	if got, ok := u.Resolve(Library); ok {
		t.Errorf("Resolve(Library) = %q, want absence", got)
	}
}

func TestGenericUnixUserDirsAbsent(t *testing.T) {
	u := NewUnix(env.Map{
		"HOME":          "/home/alice",
		"XDG_MUSIC_DIR": "/home/alice/Music",
	})

	for _, k := range []Kind{Audio, Desktop, Document, Download, Picture, Public, Template, Video} {
		if got, ok := u.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q on generic Unix, want absence", k, got)
		}
	}

	// Base directories still resolve.
	if got, ok := u.Resolve(Config); !ok || got != "/home/alice/.config" {
		t.Errorf("Resolve(Config) = (%q, %v)", got, ok)
	}
}

func TestResolutionIsPure(t *testing.T) {
	u := NewLinux(env.Map{"HOME": "/home/alice", "XDG_CACHE_HOME": "/c"})

	for _, k := range Kinds() {
		a, okA := u.Resolve(k)
		b, okB := u.Resolve(k)
		if a != b || okA != okB {
			t.Errorf("Resolve(%v) not deterministic: (%q, %v) then (%q, %v)", k, a, okA, b, okB)
		}
	}
}
