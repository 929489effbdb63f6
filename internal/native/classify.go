package native

import (
	"errors"
	"io"
	"strings"
)

// DisconnectReason classifies why the native-messaging channel went away.
type DisconnectReason int

const (
	// ReasonClean means the channel closed without an error.
	ReasonClean DisconnectReason = iota

	// ReasonHelperNotInstalled means the browser has no native-messaging
	// host registered for the helper.
	ReasonHelperNotInstalled

	// ReasonUnexpectedError means the helper itself reported an
	// unexpected failure.
	ReasonUnexpectedError

	// ReasonUnknown means the error text matched no known phrase.
	ReasonUnknown
)

// String returns a human-readable description of the reason.
func (r DisconnectReason) String() string {
	switch r {
	case ReasonClean:
		return "clean disconnect"
	case ReasonHelperNotInstalled:
		return "helper not installed"
	case ReasonUnexpectedError:
		return "unexpected helper error"
	default:
		return "unknown error"
	}
}

// disconnectPhrases is the ordered list of known error phrases. Classify
// keeps scanning after a match, so the LAST matching phrase wins; this
// mirrors the behaviour the browser-side classification always had.
var disconnectPhrases = []struct {
	phrase string
	reason DisconnectReason
}{
	{"No such native application", ReasonHelperNotInstalled},
	{"An unexpected error occurred", ReasonUnexpectedError},
}

// Classify maps a disconnect error onto a DisconnectReason. A nil error or
// plain end-of-stream is a clean disconnect.
func Classify(err error) DisconnectReason {
	if err == nil || errors.Is(err, io.EOF) {
		return ReasonClean
	}

	reason := ReasonUnknown
	text := err.Error()
	for _, p := range disconnectPhrases {
		if strings.Contains(text, p.phrase) {
			reason = p.reason
		}
	}
	return reason
}
