// Package icons resolves the display glyph for menu buttons and entries.
package icons

import (
	"homeport/internal/config"
	"homeport/internal/waypoints"
)

// Resolver maps entries and button roles to glyphs, consulting user
// configuration before the built-in defaults.
type Resolver struct {
	registry *config.Registry
}

// NewResolver returns a Resolver backed by the given configuration.
func NewResolver(registry *config.Registry) *Resolver {
	return &Resolver{registry: registry}
}

// ForEntry returns the glyph shown on an entry's slot. A per-entry
// override keyed "entry:<name>" wins, then the public glyph for shared
// entries, then the glyph for the entry's kind.
func (r *Resolver) ForEntry(entry waypoints.Entry) string {
	if glyph := r.override("entry:" + entry.Name); glyph != "" {
		return glyph
	}
	if entry.Public {
		return r.registry.IconFor("public")
	}
	switch entry.Kind {
	case waypoints.KindWarp:
		return r.registry.IconFor("warp")
	default:
		return r.registry.IconFor("home")
	}
}

// ForRole returns the glyph for a control button role.
func (r *Resolver) ForRole(role string) string {
	return r.registry.IconFor(role)
}

// override returns the user-configured glyph for a key, or an empty
// string when the user has not set one.
func (r *Resolver) override(key string) string {
	if r.registry.Display == nil {
		return ""
	}
	return r.registry.Display.Icons[key]
}
