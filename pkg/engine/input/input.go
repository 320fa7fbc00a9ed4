// Package input maps device key codes to high-level viewer actions.
//
// Input is layered: a device emits a RawInput, which is debounced and then
// mapped through the bindings table to an Intent.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high-level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	ActionQuit
	ActionNextLevel
	ActionScreenshot // Save an HTML screenshot of the level
	ActionDumpMap    // Write the text map dump
	ActionZoomIn     // Increase tile size
	ActionZoomOut    // Decrease tile size
)

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is emitted directly from an input device. Code is a
// device-specific identifier (e.g. "q", "escape", "gamepad_start").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a RawInput after deduplication. Ebiten already reports
// key presses once, so this is a thin wrapper for now.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings maps raw codes to actions. Multiple codes may point to
// the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		"q":      ActionQuit,
		"escape": ActionQuit,

		"r":     ActionNextLevel,
		"n":     ActionNextLevel,
		"enter": ActionNextLevel,

		"p":   ActionScreenshot,
		"f12": ActionScreenshot,

		"m":  ActionDumpMap,
		"f9": ActionDumpMap,

		"=":               ActionZoomIn,
		"+":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,

		"gamepad_a":     ActionNextLevel,
		"gamepad_b":     ActionQuit,
		"gamepad_start": ActionScreenshot,
	}
}

var bindings = defaultBindings()

// reserved codes always keep their binding.
var reserved = map[string]bool{"escape": true, "enter": true}

// MapToIntent applies the current bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionNextLevel:
		return "Next Level"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDumpMap:
		return "Dump Map"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action, with
// codes sorted.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes can be neither removed nor rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = defaultBindings()
}
