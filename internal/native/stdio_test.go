package native

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	want := protocol.Request{Action: protocol.ActionCSSFontSize, Target: "userChrome", Size: 13}
	if err := WriteFrame(&buf, want); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	var got protocol.Request
	if err := ReadFrame(&buf, &got); err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
	if buf.Len() != 0 {
		t.Fatalf("%d trailing bytes after reading one frame", buf.Len())
	}
}

func TestFrameHeaderIsLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, protocol.Request{Action: protocol.ActionVersion}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	raw := buf.Bytes()
	if len(raw) < 4 {
		t.Fatalf("frame too short: %d bytes", len(raw))
	}
	size := binary.LittleEndian.Uint32(raw[:4])
	if int(size) != len(raw)-4 {
		t.Fatalf("header says %d body bytes, frame carries %d", size, len(raw)-4)
	}
}

func TestFrameMultipleMessages(t *testing.T) {
	var buf bytes.Buffer

	first := protocol.Request{Action: protocol.ActionVersion}
	second := protocol.Request{Action: protocol.ActionColors}
	if err := WriteFrame(&buf, first); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := WriteFrame(&buf, second); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	var got protocol.Request
	if err := ReadFrame(&buf, &got); err != nil || got != first {
		t.Fatalf("first frame = %+v (%v), want %+v", got, err, first)
	}
	if err := ReadFrame(&buf, &got); err != nil || got != second {
		t.Fatalf("second frame = %+v (%v), want %+v", got, err, second)
	}
}

func TestReadFrameRejectsOversizedFrames(t *testing.T) {
	var buf bytes.Buffer
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], maxFrameSize+1)
	buf.Write(header[:])

	var msg protocol.Message
	if err := ReadFrame(&buf, &msg); err == nil {
		t.Fatal("expected an error for an oversized frame")
	}
}

func TestReadFrameRejectsMalformedBody(t *testing.T) {
	var buf bytes.Buffer
	body := []byte("not json")
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(body)))
	buf.Write(header[:])
	buf.Write(body)

	var msg protocol.Message
	if err := ReadFrame(&buf, &msg); err == nil {
		t.Fatal("expected an error for a malformed body")
	}
}
