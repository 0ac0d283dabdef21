package orion

import "fmt"

// recordingGame writes every call into a shared trace.
type recordingGame struct {
	trace *[]string

	onInitWindow func()
	onUpdate     func()
}

func (g *recordingGame) InitWindow() {
	*g.trace = append(*g.trace, "InitWindow")
	if g.onInitWindow != nil {
		g.onInitWindow()
	}
}

func (g *recordingGame) Init() {
	*g.trace = append(*g.trace, "Init")
}

func (g *recordingGame) Update() {
	*g.trace = append(*g.trace, "Update")
	if g.onUpdate != nil {
		g.onUpdate()
	}
}

func (g *recordingGame) WindowSizeChanged(width, height int) {
	*g.trace = append(*g.trace, fmt.Sprintf("Size(%d,%d)", width, height))
}

func indexOf(trace []string, entry string) int {
	for idx, value := range trace {
		if value == entry {
			return idx
		}
	}

	return -1
}

func firstSize(trace []string) int {
	for idx, value := range trace {
		if len(value) > 5 && value[:5] == "Size(" {
			return idx
		}
	}

	return -1
}
