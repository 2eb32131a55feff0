package commands

import (
	"testing"

	"github.com/thoreinstein/sysdirs/internal/strategy"
)

func TestResolversCoverEveryKind(t *testing.T) {
	for _, k := range strategy.Kinds() {
		if _, ok := resolvers[k]; !ok {
			t.Errorf("no resolver registered for kind %q", k)
		}
	}
}

func TestKindNames(t *testing.T) {
	names := kindNames()

	if len(names) != len(strategy.Kinds()) {
		t.Fatalf("kindNames() returned %d names, want %d", len(names), len(strategy.Kinds()))
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if n == "" {
			t.Error("empty kind name")
		}
		if seen[n] {
			t.Errorf("duplicate kind name %q", n)
		}
		seen[n] = true
	}
}

func TestResolveKindUnknown(t *testing.T) {
	if _, ok := resolveKind("no-such-kind"); ok {
		t.Error(`resolveKind("no-such-kind") reported a known kind`)
	}
}
