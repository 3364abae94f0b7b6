package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "homeport") {
		t.Errorf("GetConfigDir() = %v, should contain 'homeport'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Server == nil || reg.Server.Endpoint == "" {
		t.Error("NewRegistry() should set a default server endpoint")
	}

	if reg.Menu == nil {
		t.Fatal("NewRegistry().Menu should not be nil")
	}

	if reg.Menu.Rows != DefaultRows {
		t.Errorf("NewRegistry().Menu.Rows = %v, want %v", reg.Menu.Rows, DefaultRows)
	}

	if !reg.Menu.SortAscending {
		t.Error("NewRegistry() should default to ascending sort")
	}

	if reg.Display == nil || reg.Display.Language != "en-gb" {
		t.Error("NewRegistry() should default the language to en-gb")
	}
}

func TestPageRowsClamping(t *testing.T) {
	tests := []struct {
		name string
		rows int
		want int
	}{
		{"default when unset", 0, DefaultRows},
		{"below minimum", 1, MinRows},
		{"at minimum", 2, 2},
		{"in range", 4, 4},
		{"at maximum", 6, 6},
		{"above maximum", 9, MaxRows},
		{"negative", -3, MinRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.Menu.Rows = tt.rows
			if got := reg.PageRows(); got != tt.want {
				t.Errorf("PageRows() with rows=%d = %v, want %v", tt.rows, got, tt.want)
			}
		})
	}
}

func TestPageRowsNilMenu(t *testing.T) {
	reg := &Registry{Version: 1}
	if got := reg.PageRows(); got != DefaultRows {
		t.Errorf("PageRows() with nil menu = %v, want %v", got, DefaultRows)
	}
}

func TestIconFor(t *testing.T) {
	reg := NewRegistry()

	if got := reg.IconFor("home"); got != DefaultIcons["home"] {
		t.Errorf("IconFor(home) = %v, want default %v", got, DefaultIcons["home"])
	}

	reg.Display.Icons = map[string]string{"home": "H"}
	if got := reg.IconFor("home"); got != "H" {
		t.Errorf("IconFor(home) with override = %v, want H", got)
	}

	if got := reg.IconFor("no_such_role"); got != "?" {
		t.Errorf("IconFor(unknown) = %v, want ?", got)
	}
}

func TestSoundFor(t *testing.T) {
	reg := NewRegistry()

	if got := reg.SoundFor("click"); got == "" {
		t.Error("SoundFor(click) should return a sound id by default")
	}

	reg.Menu.Sounds = false
	if got := reg.SoundFor("click"); got != "" {
		t.Errorf("SoundFor(click) with sounds disabled = %v, want empty", got)
	}

	reg.Menu.Sounds = true
	if got := reg.SoundFor("no_such_action"); got != "" {
		t.Errorf("SoundFor(unknown) = %v, want empty", got)
	}
}

func TestWrapLength(t *testing.T) {
	reg := NewRegistry()
	if got := reg.WrapLength(); got != 40 {
		t.Errorf("WrapLength() default = %v, want 40", got)
	}

	reg.Display.TextWrapLength = 60
	if got := reg.WrapLength(); got != 60 {
		t.Errorf("WrapLength() = %v, want 60", got)
	}

	reg.Display = nil
	if got := reg.WrapLength(); got != 40 {
		t.Errorf("WrapLength() with nil display = %v, want 40", got)
	}
}

func TestCreateDefaultConfigAndReload(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test redirects config via XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if reg.Server == nil || reg.Server.Endpoint == "" {
		t.Fatal("reloaded registry should carry the default server endpoint")
	}

	// An edit saved to disk shows up on the next reload.
	reg.Server.Endpoint = "http://play.example.net:8455"
	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if reloaded.Server.Endpoint != "http://play.example.net:8455" {
		t.Errorf("reloaded endpoint = %q, want the saved value", reloaded.Server.Endpoint)
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.Server.Endpoint = "http://play.example.net:8455"
	reg.Server.Token = "secret"
	reg.Menu.Rows = 4
	reg.Display.Icons = map[string]string{"warp": "W"}

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if loaded.Version != 1 {
		t.Errorf("loaded.Version = %v, want 1", loaded.Version)
	}
	if loaded.Server.Endpoint != "http://play.example.net:8455" {
		t.Errorf("loaded.Server.Endpoint = %v", loaded.Server.Endpoint)
	}
	if loaded.Menu.Rows != 4 {
		t.Errorf("loaded.Menu.Rows = %v, want 4", loaded.Menu.Rows)
	}
	if loaded.IconFor("warp") != "W" {
		t.Errorf("loaded.IconFor(warp) = %v, want W", loaded.IconFor("warp"))
	}
}

func TestUnmarshalPartialConfig(t *testing.T) {
	partial := []byte("version: 1\nmenu:\n  rows: 3\n  sort_ascending: false\n")

	var reg Registry
	if err := yaml.Unmarshal(partial, &reg); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if reg.PageRows() != 3 {
		t.Errorf("PageRows() = %v, want 3", reg.PageRows())
	}
	if reg.Menu.SortAscending {
		t.Error("sort_ascending: false should be honored")
	}
	// Omitted sections fall back to defaults through the accessors
	if reg.Language() != "en-gb" {
		t.Errorf("Language() = %v, want en-gb", reg.Language())
	}
}
