//go:build darwin && !ios

package sysdirs

import (
	"github.com/thoreinstein/sysdirs/internal/env"
	"github.com/thoreinstein/sysdirs/internal/strategy"
)

var darwinStrategy = strategy.NewDarwin(env.OS{})

var active strategy.Strategy = darwinStrategy

// Domain selects the search-path domain for macOS directory lookups.
type Domain = strategy.Domain

// Search-path domains.
const (
	DomainUser    = strategy.DomainUser
	DomainLocal   = strategy.DomainLocal
	DomainNetwork = strategy.DomainNetwork
	DomainSystem  = strategy.DomainSystem
)

// SetDomain switches the search-path domain for subsequent lookups.
// The default is DomainUser, which anchors paths at the user's home
// directory (~/Library/Caches); admin tools may want DomainLocal
// (/Library/Caches) or DomainSystem.
func SetDomain(dom Domain) {
	darwinStrategy.SetDomain(dom)
}
