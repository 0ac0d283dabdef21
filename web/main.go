//go:build js

package main

import (
	"log/slog"
	"os"

	"github.com/oliverbestmann/webloop/examples/demo"
	"github.com/oliverbestmann/webloop/glimpse"
	"github.com/oliverbestmann/webloop/glimpse/window"
	"github.com/oliverbestmann/webloop/orion"
)

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	host, err := window.NewHost(glimpse.HostOptions{
		Selector: glimpse.DefaultSelector,
		Title:    "webloop",
	})

	orion.Handle(err, "create host")

	opts := orion.RunGameOptions{
		Game:            demo.New(host),
		Host:            host,
		SurfaceSelector: glimpse.DefaultSelector,
	}

	// does not return in the browser
	if err := orion.RunGame(opts); err != nil {
		panic(err)
	}
}
