package orion

import (
	"fmt"
	"log/slog"
)

// RegisterResizeHandler subscribes to resize events of the whole window.
// Every event results in one report of the current surface size.
func (d *Driver) RegisterResizeHandler() error {
	if d.state != StateUninitialized {
		return fmt.Errorf("register resize handler in state %s: %w", d.state, ErrInvalidState)
	}

	d.host.OnResize(d.onResize)
	d.state = StateRegistered

	return nil
}

func (d *Driver) onResize() bool {
	d.reporter.Report()

	// let the host continue with its default handling
	return false
}

// Bootstrap initializes window and game, reports the initial surface size
// and then enters the main loop of the host.
func (d *Driver) Bootstrap() error {
	if d.state != StateRegistered {
		return fmt.Errorf("bootstrap in state %s: %w", d.state, ErrInvalidState)
	}

	slog.Info("Initialize window")
	d.game.InitWindow()

	slog.Info("Initialize game")
	d.game.Init()

	// the game needs a size even if no resize event ever fires
	d.reporter.Report()

	d.state = StateRunning

	slog.Info("Enter main loop",
		slog.String("surface", d.reporter.Selector()),
		slog.Duration("interval", d.interval),
	)

	if err := d.host.MainLoop(d.loopOnce, d.interval, true); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	return nil
}

func (d *Driver) loopOnce() {
	if d.frames.Tick() {
		slog.Debug("Frame stats",
			slog.Uint64("frames", d.frames.FrameCount),
			slog.Float64("fps", d.frames.FPS()),
			slog.Duration("max", d.frames.MaxDuration),
		)
	}

	d.game.Update()
}
