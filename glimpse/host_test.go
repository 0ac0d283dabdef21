package glimpse

import "testing"

func TestHostOptionsWithDefaults(t *testing.T) {
	opts := HostOptions{}.WithDefaults()

	if opts.Selector != DefaultSelector {
		t.Errorf("Selector = %q, expected %q", opts.Selector, DefaultSelector)
	}

	if opts.Width != 1000 || opts.Height != 600 {
		t.Errorf("size = %dx%d, expected 1000x600", opts.Width, opts.Height)
	}

	if opts.Title == "" {
		t.Error("Title should have a default")
	}
}

func TestHostOptionsKeepsValues(t *testing.T) {
	opts := HostOptions{
		Selector: "#game",
		Width:    320,
		Height:   200,
		Title:    "Game",
	}.WithDefaults()

	if opts.Selector != "#game" || opts.Width != 320 || opts.Height != 200 || opts.Title != "Game" {
		t.Errorf("WithDefaults overwrote configured values: %+v", opts)
	}
}
