package menu

import (
	"homeport/internal/config"
	"homeport/internal/logging"
)

// Menu actions that may carry a sound
const (
	ActionClick    = "click"
	ActionPageTurn = "page_turn"
	ActionTeleport = "teleport"
)

// Notifier resolves menu actions to configured sound identifiers.
// The terminal has no speaker to address directly; the identifier is
// recorded so a wrapping surface (or the server) can play it.
type Notifier struct {
	registry *config.Registry
}

// NewNotifier returns a Notifier over the given configuration.
func NewNotifier(registry *config.Registry) *Notifier {
	return &Notifier{registry: registry}
}

// Play records the sound for an action. Disabled sounds are a no-op.
func (n *Notifier) Play(action string) {
	id := n.registry.SoundFor(action)
	if id == "" {
		return
	}
	logging.Debug("sound: " + id)
}
