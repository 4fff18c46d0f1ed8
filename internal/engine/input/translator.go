// Package input translates key presses into camera commands.
//
// Keys are identified by their lower-case name ("w", "up", "left", ...) so
// that any window backend can feed the same Translator.
package input

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/engine/camera"
)

// ResetCommand is the binding name that snaps the camera back to its origin.
const ResetCommand = "reset"

// DefaultBindings returns the stock key map.
func DefaultBindings() map[string]string {
	return map[string]string{
		"w":     "up",
		"up":    "up",
		"s":     "down",
		"down":  "down",
		"a":     "left",
		"left":  "left",
		"d":     "right",
		"right": "right",
		"z":     "forward",
		"x":     "backward",
		"q":     "turn_left",
		"e":     "turn_right",
		"r":     ResetCommand,
	}
}

// Translator sets the camera's pending movement from key events.
//
// With ClearOnRelease set, a held key keeps its command armed across frames
// until it is released. Without it every press arms a single frame, and
// movement relies on the window system's key repeat.
type Translator struct {
	ClearOnRelease bool

	cam      *camera.Camera
	bindings map[string]camera.Movement
	reset    map[string]bool
	held     []string // most recent press last
	log      *zap.Logger
}

// NewTranslator validates bindings and returns a translator driving cam.
func NewTranslator(cam *camera.Camera, bindings map[string]string, clearOnRelease bool, log *zap.Logger) (*Translator, error) {
	if cam == nil {
		return nil, fmt.Errorf("input: nil camera")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if bindings == nil {
		bindings = DefaultBindings()
	}

	t := &Translator{
		ClearOnRelease: clearOnRelease,
		cam:            cam,
		bindings:       make(map[string]camera.Movement, len(bindings)),
		reset:          make(map[string]bool),
		log:            log,
	}
	for key, command := range bindings {
		key = normalizeKey(key)
		if strings.EqualFold(strings.TrimSpace(command), ResetCommand) {
			t.reset[key] = true
			continue
		}
		m, err := camera.ParseMovement(command)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		t.bindings[key] = m
	}
	return t, nil
}

// Press handles a key going down. It reports whether the key is bound.
func (t *Translator) Press(key string) bool {
	key = normalizeKey(key)

	if t.reset[key] {
		t.cam.Reset()
		t.held = t.held[:0]
		t.log.Debug("camera reset", zap.String("key", key))
		return true
	}

	m, ok := t.bindings[key]
	if !ok {
		return false
	}

	t.release(key)
	t.held = append(t.held, key)
	t.cam.Pending = m
	t.log.Debug("key pressed", zap.String("key", key), zap.Stringer("movement", m))
	return true
}

// Release handles a key going up.
func (t *Translator) Release(key string) {
	key = normalizeKey(key)
	if !t.release(key) {
		return
	}
	if t.ClearOnRelease {
		t.cam.Pending = t.current()
	}
}

// Tick re-arms the most recently pressed held key. Hosts call it once per
// frame before rendering, since integration consumes the pending command.
func (t *Translator) Tick() {
	if t.ClearOnRelease && len(t.held) > 0 {
		t.cam.Pending = t.current()
	}
}

// Held returns the keys currently down, oldest first.
func (t *Translator) Held() []string {
	return append([]string(nil), t.held...)
}

func (t *Translator) current() camera.Movement {
	if len(t.held) == 0 {
		return camera.None
	}
	return t.bindings[t.held[len(t.held)-1]]
}

func (t *Translator) release(key string) bool {
	for i, k := range t.held {
		if k == key {
			t.held = append(t.held[:i], t.held[i+1:]...)
			return true
		}
	}
	return false
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
