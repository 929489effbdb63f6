package native

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

const (
	// DefaultHelperCommand is the executable launched as the native helper
	// when no override is configured.
	DefaultHelperCommand = "pywalfox-native"

	// helperCommandEnv overrides the helper executable.
	helperCommandEnv = "FARBS_HELPER"

	// maxFrameSize caps inbound frames. Firefox limits native-messaging
	// messages to 1 MiB in the helper-to-browser direction.
	maxFrameSize = 1 << 20
)

// Conn is one native-messaging channel to the helper. Receive blocks until
// a message arrives or the channel dies.
type Conn interface {
	Send(protocol.Request) error
	Receive() (protocol.Message, error)
	Close() error
}

// Dialer opens a Conn. The context bounds connection establishment only.
type Dialer func(ctx context.Context) (Conn, error)

// HelperCommand returns the helper executable to launch, honouring the
// FARBS_HELPER environment override.
func HelperCommand() string {
	if cmd := os.Getenv(helperCommandEnv); cmd != "" {
		return cmd
	}
	return DefaultHelperCommand
}

// WriteFrame writes one native-messaging frame: a 4-byte little-endian
// length prefix followed by the JSON body.
func WriteFrame(w io.Writer, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(body)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write frame body: %w", err)
	}
	return nil
}

// ReadFrame reads one native-messaging frame into v.
func ReadFrame(r io.Reader, v any) error {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return err
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > maxFrameSize {
		return fmt.Errorf("frame of %d bytes exceeds the %d byte limit", size, maxFrameSize)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return fmt.Errorf("failed to read frame body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	return nil
}

// stdioConn speaks native-messaging framing over a helper process's
// stdin/stdout.
type stdioConn struct {
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader

	// Serialises writers; the session may send from multiple goroutines.
	mu sync.Mutex

	// Close may be reached twice: once via Disconnect, once via teardown.
	closeOnce sync.Once
}

func (c *stdioConn) Send(req protocol.Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return WriteFrame(c.in, req)
}

func (c *stdioConn) Receive() (protocol.Message, error) {
	var msg protocol.Message
	if err := ReadFrame(c.out, &msg); err != nil {
		return protocol.Message{}, err
	}
	return msg, nil
}

func (c *stdioConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.in.Close()
		if c.cmd != nil {
			// Reap the helper without blocking the caller; it exits when
			// its stdin closes.
			go func() { _ = c.cmd.Wait() }()
		}
	})
	return err
}

// HelperDialer launches the helper executable and connects to its
// stdin/stdout. The helper's stderr is mirrored line-by-line to the logger.
func HelperDialer(command string, log hclog.Logger) Dialer {
	return func(ctx context.Context) (Conn, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cmd := exec.Command(command)

		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("failed to open helper stdin: %w", err)
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("failed to open helper stdout: %w", err)
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			return nil, fmt.Errorf("failed to open helper stderr: %w", err)
		}

		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("failed to start native helper %q: %w", command, err)
		}

		go mirrorStderr(stderr, log)

		return &stdioConn{
			cmd: cmd,
			in:  stdin,
			out: bufio.NewReader(stdout),
		}, nil
	}
}

// mirrorStderr forwards helper stderr lines to the logger.
func mirrorStderr(r io.Reader, log hclog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		log.Debug("helper stderr", "line", scanner.Text())
	}
}
