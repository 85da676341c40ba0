package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/pipdemo/internal/config"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"f11":       ebiten.KeyF11,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Action is something a keybind can trigger.
type Action int

const (
	ActionNone Action = iota
	ActionPlayPause
	ActionPiP
	ActionFullscreen
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionPlayPause:
		return "play/pause"
	case ActionPiP:
		return "pip"
	case ActionFullscreen:
		return "fullscreen"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Keybinds resolves the configured key names once.
type Keybinds struct {
	keys map[Action]ebiten.Key
}

// NewKeybinds resolves the configured names. Unknown names leave their
// action unbound and are returned so the caller can report them.
func NewKeybinds(cfg config.KeybindConfig) (Keybinds, []string) {
	names := map[Action]string{
		ActionPlayPause:  cfg.PlayPause,
		ActionPiP:        cfg.PiP,
		ActionFullscreen: cfg.Fullscreen,
		ActionQuit:       cfg.Quit,
	}
	kb := Keybinds{keys: make(map[Action]ebiten.Key, len(names))}
	var unknown []string
	for _, action := range []Action{ActionPlayPause, ActionPiP, ActionFullscreen, ActionQuit} {
		name := names[action]
		if k, ok := parseKey(name); ok {
			kb.keys[action] = k
		} else {
			unknown = append(unknown, name)
		}
	}
	return kb, unknown
}

// Key returns the key bound to an action.
func (kb Keybinds) Key(a Action) (ebiten.Key, bool) {
	k, ok := kb.keys[a]
	return k, ok
}

// JustPressed returns the first action whose key was pressed this frame,
// checked in a fixed order.
func (kb Keybinds) JustPressed() Action {
	for _, a := range []Action{ActionQuit, ActionFullscreen, ActionPiP, ActionPlayPause} {
		if k, ok := kb.keys[a]; ok && inpututil.IsKeyJustPressed(k) {
			return a
		}
	}
	return ActionNone
}
