package config

// Registry represents the entire user configuration file.
// This stores server connection details and menu display preferences.
type Registry struct {
	Version int          `yaml:"version"`
	Server  *ServerConf  `yaml:"server,omitempty"`
	Menu    *MenuConf    `yaml:"menu,omitempty"`
	Display *DisplayConf `yaml:"display,omitempty"`
}

// ServerConf holds the waypoint server connection settings.
// The token may be left empty for servers that do not require auth.
type ServerConf struct {
	Endpoint string `yaml:"endpoint"`        // Base URL of the waypoint server HTTP API
	Token    string `yaml:"token,omitempty"` // Bearer token, if the server requires one
}

// MenuConf holds menu behavior preferences.
type MenuConf struct {
	Rows          int    `yaml:"rows"`           // Menu height in rows, including the control row
	SortAscending bool   `yaml:"sort_ascending"` // Initial sort direction
	Sounds        bool   `yaml:"sounds"`         // Play action sounds
	SoundIDs      Sounds `yaml:"sound_ids,omitempty"`
}

// Sounds maps menu actions to sound identifiers sent to the server.
type Sounds struct {
	Click    string `yaml:"click,omitempty"`
	PageTurn string `yaml:"page_turn,omitempty"`
	Teleport string `yaml:"teleport,omitempty"`
}

// DisplayConf holds presentation preferences.
type DisplayConf struct {
	Language       string            `yaml:"language"`         // Locale identifier, e.g. "en-gb"
	TextWrapLength int               `yaml:"text_wrap_length"` // Column at which description text wraps
	Icons          map[string]string `yaml:"icons,omitempty"`  // Button role to glyph overrides
}

// Menu row bounds. A menu needs at least one entry row above the
// control row, and the display caps out at six rows total.
const (
	MinRows     = 2
	MaxRows     = 6
	DefaultRows = 6
)

// DefaultIcons maps button roles to the glyphs used when the user
// has not overridden them.
var DefaultIcons = map[string]string{
	"home":          "⌂",
	"warp":          "◈",
	"public":        "◎",
	"prev_page":     "◀",
	"next_page":     "▶",
	"add":           "+",
	"sort":          "⇅",
	"mode_teleport": "➤",
	"mode_delete":   "✕",
	"confirm_yes":   "✔",
	"confirm_no":    "✘",
	"filler":        "·",
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Server: &ServerConf{
			Endpoint: "http://localhost:8455",
		},
		Menu: &MenuConf{
			Rows:          DefaultRows,
			SortAscending: true,
			Sounds:        true,
			SoundIDs: Sounds{
				Click:    "ui.button.click",
				PageTurn: "item.book.page_turn",
				Teleport: "entity.enderman.teleport",
			},
		},
		Display: &DisplayConf{
			Language:       "en-gb",
			TextWrapLength: 40,
		},
	}
}

// PageRows returns the configured menu height clamped to the valid range.
func (r *Registry) PageRows() int {
	rows := DefaultRows
	if r.Menu != nil && r.Menu.Rows != 0 {
		rows = r.Menu.Rows
	}
	if rows < MinRows {
		return MinRows
	}
	if rows > MaxRows {
		return MaxRows
	}
	return rows
}

// IconFor returns the glyph for a button role, preferring a user
// override over the built-in default.
func (r *Registry) IconFor(role string) string {
	if r.Display != nil {
		if glyph, ok := r.Display.Icons[role]; ok && glyph != "" {
			return glyph
		}
	}
	if glyph, ok := DefaultIcons[role]; ok {
		return glyph
	}
	return "?"
}

// Language returns the configured locale identifier, falling back to en-gb.
func (r *Registry) Language() string {
	if r.Display != nil && r.Display.Language != "" {
		return r.Display.Language
	}
	return "en-gb"
}

// WrapLength returns the configured text wrap column, falling back to 40.
func (r *Registry) WrapLength() int {
	if r.Display != nil && r.Display.TextWrapLength > 0 {
		return r.Display.TextWrapLength
	}
	return 40
}

// SoundFor returns the sound identifier for a menu action, or an empty
// string when sounds are disabled or the action has no sound.
func (r *Registry) SoundFor(action string) string {
	if r.Menu == nil || !r.Menu.Sounds {
		return ""
	}
	switch action {
	case "click":
		return r.Menu.SoundIDs.Click
	case "page_turn":
		return r.Menu.SoundIDs.PageTurn
	case "teleport":
		return r.Menu.SoundIDs.Teleport
	}
	return ""
}
