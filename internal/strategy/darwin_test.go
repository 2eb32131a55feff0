package strategy

import (
	"testing"

	"github.com/thoreinstein/sysdirs/internal/env"
)

func TestDarwinUserDomain(t *testing.T) {
	d := NewDarwin(env.Map{"HOME": "/Users/Alice", "TMPDIR": "/var/folders/xx/T"})

	tests := []struct {
		kind Kind
		want string
	}{
		{Home, "/Users/Alice"},
		{Cache, "/Users/Alice/Library/Caches"},
		{Config, "/Users/Alice/Library/Application Support"},
		{ConfigLocal, "/Users/Alice/Library/Application Support"},
		{Data, "/Users/Alice/Library/Application Support"},
		{DataLocal, "/Users/Alice/Library/Application Support"},
		{Preference, "/Users/Alice/Library/Preferences"},
		{Font, "/Users/Alice/Library/Fonts"},
		{Library, "/Users/Alice/Library"},
		{Audio, "/Users/Alice/Music"},
		{Desktop, "/Users/Alice/Desktop"},
		{Document, "/Users/Alice/Documents"},
		{Download, "/Users/Alice/Downloads"},
		{Picture, "/Users/Alice/Pictures"},
		{Public, "/Users/Alice/Public"},
		{Video, "/Users/Alice/Movies"},
		{Temp, "/var/folders/xx/T"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := d.Resolve(tt.kind)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%v) = (%q, %v), want %q", tt.kind, got, ok, tt.want)
			}
		})
	}
}

func TestDarwinAbsentKinds(t *testing.T) {
	d := NewDarwin(env.Map{"HOME": "/Users/Alice"})

	for _, k := range []Kind{Executable, Runtime, State, Template} {
		if got, ok := d.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q, want absence", k, got)
		}
	}
}

func TestDarwinDomainSwitch(t *testing.T) {
	d := NewDarwin(env.Map{"HOME": "/Users/Alice"})

	tests := []struct {
		domain Domain
		want   string
	}{
		{DomainLocal, "/Library/Caches"},
		{DomainNetwork, "/Network/Library/Caches"},
		{DomainSystem, "/System/Library/Caches"},
		{DomainUser, "/Users/Alice/Library/Caches"},
	}

	for _, tt := range tests {
		d.SetDomain(tt.domain)
		got, ok := d.Resolve(Cache)
		if !ok || got != tt.want {
			t.Errorf("domain %v: Resolve(Cache) = (%q, %v), want %q", tt.domain, got, ok, tt.want)
		}
	}
}

func TestDarwinMediaDirsUserDomainOnly(t *testing.T) {
	d := NewDarwin(env.Map{"HOME": "/Users/Alice"})
	d.SetDomain(DomainLocal)

	for _, k := range []Kind{Audio, Desktop, Document, Download, Picture, Public, Video} {
		if got, ok := d.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q in local domain, want absence", k, got)
		}
	}

	// Home and Temp are domain-independent.
	if got, ok := d.Resolve(Home); !ok || got != "/Users/Alice" {
		t.Errorf("Resolve(Home) = (%q, %v) in local domain", got, ok)
	}
}

func TestDarwinNoHome(t *testing.T) {
	d := NewDarwin(env.Map{})

	if got, ok := d.Resolve(Cache); ok {
		t.Errorf("Resolve(Cache) = %q with HOME unset, want absence", got)
	}

	// Non-user domains have fixed roots and resolve regardless.
	d.SetDomain(DomainSystem)
	if got, ok := d.Resolve(Cache); !ok || got != "/System/Library/Caches" {
		t.Errorf("Resolve(Cache) = (%q, %v) in system domain", got, ok)
	}
}

func TestDarwinTempRequiresTMPDIR(t *testing.T) {
	d := NewDarwin(env.Map{"HOME": "/Users/Alice"})

	if got, ok := d.Resolve(Temp); ok {
		t.Errorf("Resolve(Temp) = %q with TMPDIR unset, want absence", got)
	}
}
