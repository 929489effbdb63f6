package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Frewacom/FARBS-Firefox/internal/cache"
	"github.com/Frewacom/FARBS-Firefox/internal/native"
	"github.com/Frewacom/FARBS-Firefox/internal/scheme"
	"github.com/Frewacom/FARBS-Firefox/pkg/protocol"
)

var (
	// Daemon command flags
	daemonMode           string
	daemonVersionTimeout time.Duration
)

// daemonCmd represents the daemon command
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Stay connected to the native helper and cache every pushed palette",
	Long: `Connect to the pywal native helper and keep the session alive. Every palette
the helper pushes is derived into a full colorscheme and stored in the cache
under its content hash; theme-mode updates from the helper switch the
template used for subsequent palettes.

The daemon exits when the helper disconnects, reporting the classified
reason. It does not reconnect on its own.`,
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().StringVarP(&daemonMode, "mode", "m", "dark", "initial theme mode (dark, light, auto)")
	daemonCmd.Flags().DurationVar(&daemonVersionTimeout, "version-timeout", native.DefaultVersionTimeout,
		"how long to wait for the helper's version before prompting for an update")
}

// daemonState is the daemon's view of the session, updated from session
// callbacks.
type daemonState struct {
	mu    sync.Mutex
	mode  scheme.Mode
	store *cache.Store
}

func (d *daemonState) currentMode() scheme.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

func (d *daemonState) setMode(mode scheme.Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
}

func runDaemon(cmd *cobra.Command, args []string) error {
	mode, err := scheme.ParseMode(daemonMode)
	if err != nil {
		return err
	}

	dir, err := cache.DefaultDir()
	if err != nil {
		return err
	}
	store, err := cache.New(dir, logger)
	if err != nil {
		return err
	}

	state := &daemonState{mode: mode, store: store}
	done := make(chan native.DisconnectReason, 1)

	var session *native.Session
	session = native.NewSession(native.Callbacks{
		Output: func(msg string, isError bool) {
			if isError {
				logger.Error("helper output", "msg", msg)
				return
			}
			logger.Info("helper output", "msg", msg)
		},
		Connected: func() {
			logger.Info("connected to native helper")
			session.RequestPywalColors()
		},
		Disconnected: func(reason native.DisconnectReason) {
			done <- reason
		},
		Version: func(v string) {
			compatible, err := protocol.IsCompatible(v)
			if err != nil || !compatible {
				logger.Warn("helper version is not supported", "version", v, "minimum", protocol.MinHelperVersion)
				return
			}
			logger.Info("helper version verified", "version", v)
		},
		UpdateNeeded: func() {
			logger.Warn("helper predates protocol versioning, please update pywalfox-native")
		},
		PywalColorsFetchSuccess: func(payload protocol.PywalColors) {
			state.apply(payload)
		},
		PywalColorsFetchFailed: func(errMsg string) {
			logger.Error("palette fetch failed", "error", errMsg)
		},
		ThemeModeSet: func(mode scheme.Mode) {
			logger.Info("theme mode updated by helper", "mode", mode)
			state.setMode(mode)
			session.RequestPywalColors()
		},
	}, native.Options{
		Dial:           native.HelperDialer(native.HelperCommand(), logger),
		Logger:         logger,
		VersionTimeout: daemonVersionTimeout,
	})

	session.Connect(cmd.Context())
	if !session.IsConnected() {
		return fmt.Errorf("could not connect to the native helper")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case sig := <-sigs:
		logger.Info("shutting down", "signal", sig)
		session.Disconnect()
		<-done
		return nil
	case reason := <-done:
		if reason == native.ReasonClean {
			return nil
		}
		return fmt.Errorf("disconnected from native helper: %s", reason)
	}
}

// apply derives and caches a colorscheme from a pushed palette. Length is
// validated here because Extend itself assumes it; a helper speaking an
// incompatible palette shape is reported, not crashed on.
func (d *daemonState) apply(payload protocol.PywalColors) {
	if len(payload.Colors) != scheme.RawPaletteLength {
		logger.Error("ignoring palette with unexpected length",
			"got", len(payload.Colors), "want", scheme.RawPaletteLength)
		return
	}

	mode := d.currentMode()
	cs := scheme.Generate(mode, payload.Colors, nil, scheme.TemplateFor(mode))

	if err := d.store.Put(cs); err != nil {
		logger.Error("failed to cache colorscheme", "hash", cs.Hash, "error", err)
		return
	}

	wall := ""
	if payload.Wallpaper != nil {
		wall = *payload.Wallpaper
	}
	logger.Info("colorscheme derived", "hash", cs.Hash, "mode", mode, "wallpaper", wall)
}
