package orion

import (
	"log/slog"
	"math"

	"github.com/oliverbestmann/webloop/glimpse"
	"golang.org/x/exp/constraints"
)

// SurfaceReporter forwards the current size of a drawing surface to the game.
type SurfaceReporter struct {
	query    glimpse.SurfaceQuery
	selector string
	notify   func(width, height int)
}

func NewSurfaceReporter(query glimpse.SurfaceQuery, selector string, notify func(width, height int)) *SurfaceReporter {
	return &SurfaceReporter{
		query:    query,
		selector: selector,
		notify:   notify,
	}
}

func (r *SurfaceReporter) Selector() string {
	return r.selector
}

// Report queries the current size of the surface and passes it on, truncated
// to whole pixels. Every call results in exactly one notification, even if the
// size did not change since the last call.
func (r *SurfaceReporter) Report() {
	w, h := r.query.ElementSize(r.selector)

	width, height := truncate(w), truncate(h)

	slog.Debug("Report surface size",
		slog.String("selector", r.selector),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	r.notify(width, height)
}

// truncate drops the fractional part of v. Values that do not fit into an
// int are clamped, NaN and infinity become zero.
func truncate[F constraints.Float](v F) int {
	f := float64(v)

	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}

	return int(f)
}
