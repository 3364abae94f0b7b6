// Package locales provides user-facing message lookup for homeport.
//
// Messages are keyed strings with positional placeholders of the form
// %1%, %2%, and so on. The en-gb message set is embedded in the binary
// and used as a fallback for any key a user-supplied locale file omits.
package locales

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"
)

//go:embed en-gb.yml
var embedded embed.FS

// Locales resolves message keys to display strings.
type Locales struct {
	messages map[string]string
	fallback map[string]string
	wrapLen  int
}

// Load returns the message set for the given language identifier.
// Unknown languages fall back to en-gb.
func Load(language string) (*Locales, error) {
	fallback, err := loadEmbedded("en-gb")
	if err != nil {
		return nil, err
	}

	messages := fallback
	if language != "" && language != "en-gb" {
		if m, err := loadEmbedded(language); err == nil {
			messages = m
		}
	}

	return &Locales{
		messages: messages,
		fallback: fallback,
		wrapLen:  40,
	}, nil
}

// LoadFile returns a message set read from a user-supplied YAML file,
// with embedded en-gb messages filling in any missing keys.
func LoadFile(path string) (*Locales, error) {
	fallback, err := loadEmbedded("en-gb")
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse locale file: %w", err)
	}

	return &Locales{
		messages: messages,
		fallback: fallback,
		wrapLen:  40,
	}, nil
}

func loadEmbedded(language string) (map[string]string, error) {
	data, err := embedded.ReadFile(language + ".yml")
	if err != nil {
		return nil, fmt.Errorf("no embedded locale %q: %w", language, err)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse embedded locale %q: %w", language, err)
	}
	return messages, nil
}

// SetWrapLength sets the column at which Wrap breaks lines.
func (l *Locales) SetWrapLength(n int) {
	if n > 0 {
		l.wrapLen = n
	}
}

// Get resolves a message key, substituting %1%, %2%, ... with args in
// order. An unknown key resolves to the key itself so a missing
// translation is visible rather than silent.
func (l *Locales) Get(key string, args ...string) string {
	msg, ok := l.messages[key]
	if !ok {
		msg, ok = l.fallback[key]
	}
	if !ok {
		return key
	}

	for i, arg := range args {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("%%%d%%", i+1), arg)
	}
	return msg
}

// Wrap breaks text into lines no wider than the configured wrap length.
func (l *Locales) Wrap(text string) []string {
	wrapped := wordwrap.String(text, l.wrapLen)
	return strings.Split(wrapped, "\n")
}
