package orion

// Game is driven by RunGame. None of the methods report errors: a game
// that can not continue is expected to end the process itself.
type Game interface {
	// InitWindow sets up the window or rendering backend. Called once, first.
	InitWindow()

	// Init performs the one time setup of the game state. Called once,
	// after InitWindow.
	Init()

	// Update advances the game by one frame. It must not block.
	Update()

	// WindowSizeChanged receives the size of the drawing surface in pixels.
	// Called once before the first Update and again on every resize.
	WindowSizeChanged(width, height int)
}

// DefaultGame implements Game with methods that do nothing. Embed it to
// only implement the methods you need.
type DefaultGame struct{}

func (DefaultGame) InitWindow() {}

func (DefaultGame) Init() {}

func (DefaultGame) Update() {}

func (DefaultGame) WindowSizeChanged(width, height int) {}
