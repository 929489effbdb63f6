// Package native owns the long-lived duplex connection to the pywal native
// helper: it serialises outbound requests, demultiplexes inbound messages by
// action tag, tracks the version-check timeout and classifies disconnects.
package native

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Frewacom/FARBS-Firefox/internal/scheme"
	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

const (
	// DefaultVersionTimeout is how long to wait for a version response
	// before assuming the helper predates protocol versioning.
	DefaultVersionTimeout = 3 * time.Second

	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 5 * time.Second
)

// Callbacks is the collaborator surface the session reports through.
// Nothing here returns an error; every failure is either logged or delivered
// through one of these typed callbacks. Nil entries are replaced with no-ops.
type Callbacks struct {
	Output                  func(msg string, isError bool)
	Connected               func()
	Disconnected            func(reason DisconnectReason)
	Version                 func(version string)
	UpdateNeeded            func()
	PywalColorsFetchSuccess func(payload protocol.PywalColors)
	PywalColorsFetchFailed  func(errMsg string)
	CSSToggleSuccess        func(target string)
	CSSToggleFailed         func(target, errMsg string)
	CSSFontSizeSetSuccess   func(size int)
	CSSFontSizeSetFailed    func(errMsg string)
	ThemeModeSet            func(mode scheme.Mode)
}

// Options configures a Session.
type Options struct {
	// Dial opens the native-messaging channel. Required.
	Dial Dialer

	// Logger for session diagnostics. Defaults to hclog.Default().
	Logger hclog.Logger

	// VersionTimeout and ConnectTimeout default to the package constants
	// when zero.
	VersionTimeout time.Duration
	ConnectTimeout time.Duration
}

// Session is the single owner of the native-messaging channel. Its state
// moves Disconnected -> Connecting -> Connected -> Disconnected; leaving
// Connected is irreversible, a fresh Connect is required to resume and there
// is no automatic reconnect.
//
// The protocol carries no correlation IDs: at most one request of a given
// action type may be outstanding at a time. Concurrent duplicates race on
// which response is observed first.
type Session struct {
	log            hclog.Logger
	cb             Callbacks
	dial           Dialer
	versionTimeout time.Duration
	connectTimeout time.Duration

	mu             sync.Mutex
	connected      bool
	closing        bool
	conn           Conn
	versionTimer   *time.Timer
	versionPending bool
}

// NewSession creates a session reporting through cb.
func NewSession(cb Callbacks, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = hclog.Default()
	}

	versionTimeout := opts.VersionTimeout
	if versionTimeout == 0 {
		versionTimeout = DefaultVersionTimeout
	}
	connectTimeout := opts.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = DefaultConnectTimeout
	}

	fillCallbacks(&cb)

	return &Session{
		log:            log.Named("native"),
		cb:             cb,
		dial:           opts.Dial,
		versionTimeout: versionTimeout,
		connectTimeout: connectTimeout,
	}
}

// fillCallbacks replaces nil callbacks with no-ops so handlers never have to
// nil-check.
func fillCallbacks(cb *Callbacks) {
	if cb.Output == nil {
		cb.Output = func(string, bool) {}
	}
	if cb.Connected == nil {
		cb.Connected = func() {}
	}
	if cb.Disconnected == nil {
		cb.Disconnected = func(DisconnectReason) {}
	}
	if cb.Version == nil {
		cb.Version = func(string) {}
	}
	if cb.UpdateNeeded == nil {
		cb.UpdateNeeded = func() {}
	}
	if cb.PywalColorsFetchSuccess == nil {
		cb.PywalColorsFetchSuccess = func(protocol.PywalColors) {}
	}
	if cb.PywalColorsFetchFailed == nil {
		cb.PywalColorsFetchFailed = func(string) {}
	}
	if cb.CSSToggleSuccess == nil {
		cb.CSSToggleSuccess = func(string) {}
	}
	if cb.CSSToggleFailed == nil {
		cb.CSSToggleFailed = func(string, string) {}
	}
	if cb.CSSFontSizeSetSuccess == nil {
		cb.CSSFontSizeSetSuccess = func(int) {}
	}
	if cb.CSSFontSizeSetFailed == nil {
		cb.CSSFontSizeSetFailed = func(string) {}
	}
	if cb.ThemeModeSet == nil {
		cb.ThemeModeSet = func(scheme.Mode) {}
	}
}

// IsConnected reports whether the session currently holds a live channel.
func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Connect opens the native-messaging channel. On failure the session logs
// and stays disconnected; there is no retry. On success the receive loop
// starts, the version-check timer is armed, a version request goes out and
// the Connected callback fires.
func (s *Session) Connect(ctx context.Context) {
	s.mu.Lock()
	if s.connected {
		s.mu.Unlock()
		s.log.Warn("already connected to native helper")
		return
	}
	s.closing = false
	s.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	defer cancel()

	conn, err := s.dial(dialCtx)
	if err != nil {
		s.log.Error("failed to connect to native helper", "error", err)
		s.cb.Output("Failed to connect to the native helper: "+err.Error(), true)
		return
	}

	s.mu.Lock()
	s.conn = conn
	s.connected = true
	s.versionPending = true
	s.versionTimer = time.AfterFunc(s.versionTimeout, s.onVersionTimeout)
	s.mu.Unlock()

	go s.receiveLoop(conn)

	s.log.Debug("connected to native helper")
	s.send(protocol.Request{Action: protocol.ActionVersion})
	s.cb.Connected()
}

// Disconnect closes the channel. The Disconnected callback fires with a
// clean reason once the receive loop observes the closed channel.
func (s *Session) Disconnect() {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.closing = true
	conn := s.conn
	s.mu.Unlock()

	if err := conn.Close(); err != nil {
		s.log.Debug("error closing native channel", "error", err)
	}
}

// RequestVersion asks the helper for its version.
func (s *Session) RequestVersion() {
	s.send(protocol.Request{Action: protocol.ActionVersion})
}

// RequestPywalColors asks the helper for the current pywal palette.
func (s *Session) RequestPywalColors() {
	s.send(protocol.Request{Action: protocol.ActionColors})
}

// RequestCSSEnabled toggles a custom CSS target on or off.
func (s *Session) RequestCSSEnabled(target string, enabled bool) {
	action := protocol.ActionCSSDisable
	if enabled {
		action = protocol.ActionCSSEnable
	}
	s.send(protocol.Request{Action: action, Target: target})
}

// RequestFontSizeSet updates the font size used by a custom CSS target.
func (s *Session) RequestFontSizeSet(target string, size int) {
	s.send(protocol.Request{Action: protocol.ActionCSSFontSize, Target: target, Size: size})
}

// send delivers one fire-and-forget request. Requests sent while
// disconnected are logged and dropped; there is no queueing.
func (s *Session) send(req protocol.Request) {
	s.mu.Lock()
	conn, connected := s.conn, s.connected
	s.mu.Unlock()

	if !connected {
		s.log.Error("dropping request, not connected to native helper", "action", req.Action)
		return
	}

	if err := conn.Send(req); err != nil {
		s.log.Error("failed to send request to native helper", "action", req.Action, "error", err)
	}
}

// receiveLoop reads the channel until it dies, dispatching every message.
// It is the only reader; teardown always funnels through handleDisconnect.
func (s *Session) receiveLoop(conn Conn) {
	for {
		msg, err := conn.Receive()
		if err != nil {
			s.handleDisconnect(err)
			return
		}
		s.dispatch(msg)
	}
}

// handleDisconnect tears the session down: timers are cleared before the
// classified reason is delivered so no stale timer fires after teardown.
func (s *Session) handleDisconnect(err error) {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return
	}
	s.connected = false
	s.versionPending = false
	if s.versionTimer != nil {
		s.versionTimer.Stop()
		s.versionTimer = nil
	}
	closing := s.closing
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}

	reason := Classify(err)
	if closing {
		reason = ReasonClean
	}

	s.log.Info("disconnected from native helper", "reason", reason.String())
	s.cb.Disconnected(reason)
}

// onVersionTimeout fires when no version response arrived in time, which
// means the helper predates protocol versioning.
func (s *Session) onVersionTimeout() {
	s.mu.Lock()
	if !s.versionPending {
		s.mu.Unlock()
		return
	}
	s.versionPending = false
	s.versionTimer = nil
	s.mu.Unlock()

	s.log.Warn("native helper did not report a version in time")
	s.cb.UpdateNeeded()
}

// cancelVersionTimer stops the version-check timer. Returns false when the
// timer already fired and delivered its outcome.
func (s *Session) cancelVersionTimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.versionPending {
		return false
	}
	s.versionPending = false
	if s.versionTimer != nil {
		s.versionTimer.Stop()
		s.versionTimer = nil
	}
	return true
}
