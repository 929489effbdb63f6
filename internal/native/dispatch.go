package native

import (
	"encoding/json"

	"github.com/Frewacom/FARBS-Firefox/internal/scheme"
	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

// dispatch routes one inbound message to its handler. Unknown tags are
// logged and ignored so newer helpers stay non-fatal.
func (s *Session) dispatch(msg protocol.Message) {
	switch msg.Action {
	case protocol.ActionVersion:
		s.handleVersion(msg)
	case protocol.ActionOutput:
		s.handleOutput(msg)
	case protocol.ActionColors:
		s.handleColors(msg)
	case protocol.ActionCSSEnable, protocol.ActionCSSDisable:
		s.handleCSSToggle(msg)
	case protocol.ActionCSSFontSize:
		s.handleFontSize(msg)
	case protocol.ActionThemeMode:
		s.handleThemeMode(msg)
	case protocol.ActionInvalid:
		s.log.Error("native helper rejected a request as invalid")
	default:
		s.log.Error("unhandled message from native helper", "action", msg.Action)
	}
}

// handleVersion delivers the helper version, or signals that the helper
// predates protocol versioning when the payload is absent. The version-check
// timer is cancelled before either outcome is delivered.
func (s *Session) handleVersion(msg protocol.Message) {
	s.cancelVersionTimer()

	if !msg.HasData() {
		s.cb.UpdateNeeded()
		return
	}

	version, ok := s.decodeString(msg)
	if !ok {
		return
	}
	s.cb.Version(version)
}

// handleOutput forwards helper debug output to the collaborator.
func (s *Session) handleOutput(msg protocol.Message) {
	text, ok := s.decodeString(msg)
	if !ok {
		return
	}
	s.cb.Output(text, false)
}

// handleColors delivers a fetched pywal palette. Legacy payload shapes are
// shimmed into the current one by the protocol package.
func (s *Session) handleColors(msg protocol.Message) {
	if !msg.Success {
		s.cb.PywalColorsFetchFailed(msg.Error)
		return
	}

	if !msg.HasData() {
		s.log.Error("pywal colors response reported success but carried no data")
		return
	}

	payload, err := protocol.DecodePywalColors(msg.Data)
	if err != nil {
		s.log.Error("failed to decode pywal colors payload", "error", err)
		return
	}

	s.cb.PywalColorsFetchSuccess(payload)
}

// handleCSSToggle handles both enable and disable responses; the echoed
// target rides in the data payload.
func (s *Session) handleCSSToggle(msg protocol.Message) {
	target := ""
	if msg.HasData() {
		_ = json.Unmarshal(msg.Data, &target)
	}

	if !msg.Success {
		s.cb.CSSToggleFailed(target, msg.Error)
		return
	}

	if target == "" {
		s.log.Error("css toggle response reported success but carried no target")
		return
	}

	s.cb.CSSToggleSuccess(target)
}

// handleFontSize delivers the applied font size.
func (s *Session) handleFontSize(msg protocol.Message) {
	if !msg.Success {
		s.cb.CSSFontSizeSetFailed(msg.Error)
		return
	}

	if !msg.HasData() {
		s.log.Error("font size response reported success but carried no size")
		return
	}

	var size int
	if err := json.Unmarshal(msg.Data, &size); err != nil {
		s.log.Error("failed to decode font size payload", "error", err)
		return
	}

	s.cb.CSSFontSizeSetSuccess(size)
}

// handleThemeMode accepts only the three literal mode values; anything else
// is logged and dropped without a callback.
func (s *Session) handleThemeMode(msg protocol.Message) {
	value, ok := s.decodeString(msg)
	if !ok {
		return
	}

	mode, err := scheme.ParseMode(value)
	if err != nil {
		s.log.Error("native helper sent an invalid theme mode", "mode", value)
		return
	}

	s.cb.ThemeModeSet(mode)
}

// decodeString decodes a message's data payload as a string, logging shape
// anomalies instead of raising them.
func (s *Session) decodeString(msg protocol.Message) (string, bool) {
	if !msg.HasData() {
		s.log.Error("message carried no data payload", "action", msg.Action)
		return "", false
	}

	var value string
	if err := json.Unmarshal(msg.Data, &value); err != nil {
		s.log.Error("failed to decode data payload", "action", msg.Action, "error", err)
		return "", false
	}
	return value, true
}
