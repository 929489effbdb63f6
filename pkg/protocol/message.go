// Package protocol defines the wire contract spoken with the pywal native
// helper. Helper implementations and test harnesses should import this
// package instead of internal packages.
package protocol

import "encoding/json"

// Action is the string tag carried by every message, identifying the
// request or response type.
type Action string

const (
	// ActionVersion requests or carries the helper's version.
	ActionVersion Action = "debug:version"

	// ActionOutput carries debug output from the helper.
	ActionOutput Action = "debug:output"

	// ActionColors requests or carries the current pywal palette.
	ActionColors Action = "action:colors"

	// ActionInvalid is sent by the helper when it receives a request it
	// does not understand.
	ActionInvalid Action = "action:invalid"

	// ActionCSSEnable and ActionCSSDisable toggle a custom CSS target.
	ActionCSSEnable  Action = "css:enable"
	ActionCSSDisable Action = "css:disable"

	// ActionCSSFontSize sets the font size used by the custom CSS.
	ActionCSSFontSize Action = "css:font:size"

	// ActionThemeMode carries a theme mode update pushed by the helper.
	ActionThemeMode Action = "theme:mode"
)

// Request is an outbound message to the helper. Target and Size are only
// set for the actions that need them.
type Request struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// Message is an inbound message from the helper. Data is left raw because
// its shape depends on the action; handlers decode it themselves.
type Message struct {
	Action  Action          `json:"action"`
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether the message carries a non-null data payload.
func (m Message) HasData() bool {
	return len(m.Data) > 0 && string(m.Data) != "null"
}

// PywalColors is the palette payload carried by an ActionColors response.
// Older helper versions send a bare colour array instead; DecodePywalColors
// shims that legacy shape into this one with a nil wallpaper.
type PywalColors struct {
	Wallpaper *string  `json:"wallpaper"`
	Colors    []string `json:"colors"`
}

// DecodePywalColors decodes an ActionColors data payload, accepting both the
// current object shape and the legacy bare-array shape.
func DecodePywalColors(data json.RawMessage) (PywalColors, error) {
	var payload PywalColors
	if err := json.Unmarshal(data, &payload); err == nil && payload.Colors != nil {
		return payload, nil
	}

	// Legacy helpers send the colour list directly.
	var colors []string
	if err := json.Unmarshal(data, &colors); err != nil {
		return PywalColors{}, err
	}
	return PywalColors{Wallpaper: nil, Colors: colors}, nil
}
