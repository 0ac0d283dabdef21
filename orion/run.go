package orion

import (
	"errors"
	"time"

	"github.com/oliverbestmann/webloop/glimpse"
)

var (
	ErrNilGame        = errors.New("Game must not be nil")
	ErrNilHost        = errors.New("Host must not be nil")
	ErrInvalidState   = errors.New("invalid driver state")
	ErrAlreadyStarted = errors.New("a game was already started in this process")
)

type RunGameOptions struct {
	// game to run
	Game Game

	// host providing the drawing surface, resize events and the main loop
	Host glimpse.Host

	// identifies the drawing surface to measure, defaults to glimpse.DefaultSelector
	SurfaceSelector string

	// time between two updates. Zero lets the host pick its native pacing.
	FrameInterval time.Duration
}

// Driver registers for resize events, initializes the game and then
// hands the game over to the hosts main loop.
type Driver struct {
	game     Game
	host     glimpse.Host
	reporter *SurfaceReporter
	interval time.Duration

	state  State
	frames FrameTimes
}

func NewDriver(opts RunGameOptions) (*Driver, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}

	if opts.Host == nil {
		return nil, ErrNilHost
	}

	if opts.SurfaceSelector == "" {
		opts.SurfaceSelector = glimpse.DefaultSelector
	}

	d := &Driver{
		game:     opts.Game,
		host:     opts.Host,
		interval: opts.FrameInterval,
	}

	d.reporter = NewSurfaceReporter(opts.Host, opts.SurfaceSelector, opts.Game.WindowSizeChanged)

	return d, nil
}

// Run registers the resize handler and bootstraps the game. Under normal
// operation this only returns once the host shuts down.
func (d *Driver) Run() error {
	if err := d.RegisterResizeHandler(); err != nil {
		return err
	}

	return d.Bootstrap()
}

func (d *Driver) State() State {
	return d.state
}

// FrameTimes returns statistics about the frames run so far.
func (d *Driver) FrameTimes() FrameTimes {
	return d.frames
}

// RunGame runs the game in opts. Only one game can be started per process,
// any further call fails with ErrAlreadyStarted.
func RunGame(opts RunGameOptions) error {
	if currentDriver.isSet() {
		return ErrAlreadyStarted
	}

	driver, err := NewDriver(opts)
	if err != nil {
		return err
	}

	currentDriver.set(driver)

	return driver.Run()
}
