package icons

import (
	"testing"

	"homeport/internal/config"
	"homeport/internal/waypoints"
)

func TestForEntry(t *testing.T) {
	registry := config.NewRegistry()
	registry.Display.Icons = map[string]string{
		"entry:Base": "B",
		"warp":       "W",
	}
	resolver := NewResolver(registry)

	tests := []struct {
		name  string
		entry waypoints.Entry
		want  string
	}{
		{"per-entry override", waypoints.Entry{Kind: waypoints.KindHome, Name: "Base"}, "B"},
		{"home default", waypoints.Entry{Kind: waypoints.KindHome, Name: "Cave"}, config.DefaultIcons["home"]},
		{"warp configured", waypoints.Entry{Kind: waypoints.KindWarp, Name: "Spawn"}, "W"},
		{"public wins over kind", waypoints.Entry{Kind: waypoints.KindHome, Name: "Shop", Public: true}, config.DefaultIcons["public"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolver.ForEntry(tt.entry); got != tt.want {
				t.Errorf("ForEntry(%s) = %q, want %q", tt.entry.Name, got, tt.want)
			}
		})
	}
}

func TestForRole(t *testing.T) {
	resolver := NewResolver(config.NewRegistry())

	if got := resolver.ForRole("add"); got != config.DefaultIcons["add"] {
		t.Errorf("ForRole(add) = %q, want %q", got, config.DefaultIcons["add"])
	}
	if got := resolver.ForRole("nonsense"); got != "?" {
		t.Errorf("ForRole(nonsense) = %q, want ?", got)
	}
}
