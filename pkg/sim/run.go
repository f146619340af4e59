package sim

import (
	"context"
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/render"
)

// DefaultMaxSteps bounds a run whose projectile never lands.
const DefaultMaxSteps = 100_000

// Config controls how a run is plotted.
type Config struct {
	MaxSteps int          // 0 means DefaultMaxSteps
	Color    render.Color // trail colour
	Lines    bool         // connect consecutive samples
}

// Result summarises a finished run.
type Result struct {
	Steps  int
	Path   []math3d.Tuple // starting position followed by one point per step
	Landed bool           // final Z <= 0
}

// PixelFor maps a position to canvas coordinates: Y runs right and Z runs
// up from the bottom edge.
func PixelFor(c *render.Canvas, pos math3d.Tuple) (x, y int) {
	x = int(math.Round(float64(pos.Y)))
	y = int(math.Round(float64(c.Height()) - float64(pos.Z)))
	return x, y
}

// Run steps s until the projectile reaches Z <= 0, the step limit is hit,
// or ctx is cancelled, plotting each new position on c. Positions that fall
// off the canvas are dropped silently.
func Run(ctx context.Context, s Stepper, c *render.Canvas, cfg Config) (Result, error) {
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	log := render.Logger()
	cur := s.Current()
	res := Result{Path: []math3d.Tuple{cur.Position}}
	log.Info("simulation started",
		"position", cur.Position.String(),
		"velocity", cur.Velocity.String(),
		"max_steps", maxSteps,
	)

	px, py := PixelFor(c, cur.Position)
	for cur.Position.Z > 0 && res.Steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		cur = s.Step()
		res.Steps++
		res.Path = append(res.Path, cur.Position)

		x, y := PixelFor(c, cur.Position)
		if cfg.Lines {
			c.DrawLine(px, py, x, y, cfg.Color)
		} else {
			c.SafeWritePixel(x, y, cfg.Color)
		}
		px, py = x, y
	}

	res.Landed = cur.Position.Z <= 0
	if res.Landed {
		log.Info("projectile landed", "steps", res.Steps, "position", cur.Position.String())
	} else {
		log.Warn("step limit reached before landing", "steps", res.Steps)
	}
	return res, nil
}
