// Package config provides user configuration management for homeport.
//
// This package manages a YAML-based configuration file that stores the
// waypoint server connection details and menu display preferences such
// as menu height, icon glyphs, sounds, and locale. The configuration
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/homeport/config.yaml or $HOME/.config/homeport/config.yaml
//   - macOS: $HOME/.config/homeport/config.yaml
//   - Windows: %LOCALAPPDATA%\homeport\config.yaml
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows := registry.PageRows()       // clamped to the valid range
//	icon := registry.IconFor("home")  // user override or built-in glyph
//
//	// Save changes atomically
//	registry.Menu.Rows = 4
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
