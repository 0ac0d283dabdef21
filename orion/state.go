package orion

//go:generate go tool stringer -type=State -trimprefix=State

// State of a Driver. A driver only ever moves forward through the states.
type State int

const (
	StateUninitialized State = iota
	StateRegistered
	StateRunning
)

// the driver started by RunGame. Only one game can run per process.
var currentDriver global[*Driver]

type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) isSet() bool {
	return g.hasValue
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called after RunGame")
	}

	return g.value
}

// CurrentDriver exposes the driver started by RunGame.
func CurrentDriver() *Driver {
	return currentDriver.Get()
}
