// projectile - plot a projectile's flight onto an image.
//
// The projectile starts at -start with velocity normalize(-velocity) * -speed
// and is advanced one tick at a time under -gravity and -wind until it
// reaches the ground (z <= 0). Each position is plotted at
// (round(y), round(height - z)). The image format follows the -out
// extension: .ppm (default), .png, .bmp or .tiff.
//
// Controls in -preview mode:
//
//	Any key  - Quit
//	Ctrl+C   - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/render"
	"github.com/taigrr/tracer/pkg/sim"
)

var (
	width      = flag.Int("width", 900, "Canvas width in pixels")
	height     = flag.Int("height", 550, "Canvas height in pixels")
	outPath    = flag.String("out", "out.ppm", "Output image path (.ppm, .png, .bmp, .tiff)")
	start      = flag.String("start", "0,0,1", "Starting point (X,Y,Z)")
	velocity   = flag.String("velocity", "0,1,1.8", "Launch direction (X,Y,Z), normalised")
	speed      = flag.Float64("speed", 11.25, "Launch speed")
	gravity    = flag.String("gravity", "0,0,-0.1", "Gravity vector (X,Y,Z)")
	wind       = flag.String("wind", "0,-0.01,0", "Wind vector (X,Y,Z)")
	trailColor = flag.String("color", "255,255,255", "Trail color (R,G,B)")
	bgColor    = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	lines      = flag.Bool("lines", false, "Connect consecutive positions with lines")
	integrator = flag.String("integrator", string(sim.IntegratorEuler), "Integrator: euler or harmonica")
	maxSteps   = flag.Int("max-steps", sim.DefaultMaxSteps, "Stop after this many ticks")
	gltfPath   = flag.String("gltf", "", "Also export the trajectory as glTF (.glb or .gltf)")
	preview    = flag.Bool("preview", false, "Show the result in the terminal")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "projectile - plot a projectile's flight\n\n")
		fmt.Fprintf(os.Stderr, "Usage: projectile [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseTriple parses "X,Y,Z".
func parseTriple(name, s string) (x, y, z float32, err error) {
	var rest string
	n, err := fmt.Sscanf(s, "%g,%g,%g%s", &x, &y, &z, &rest)
	switch {
	case n < 3:
		return 0, 0, 0, fmt.Errorf("parse -%s %q: %w", name, s, err)
	case n > 3:
		return 0, 0, 0, fmt.Errorf("parse -%s %q: trailing %q", name, s, rest)
	}
	return x, y, z, nil
}

func parseVector(name, s string) (math3d.Tuple, error) {
	x, y, z, err := parseTriple(name, s)
	return math3d.Vector(x, y, z), err
}

func parsePoint(name, s string) (math3d.Tuple, error) {
	x, y, z, err := parseTriple(name, s)
	return math3d.Point(x, y, z), err
}

func run() error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", *width, *height)
	}

	pos, err := parsePoint("start", *start)
	if err != nil {
		return err
	}
	dir, err := parseVector("velocity", *velocity)
	if err != nil {
		return err
	}
	if dir.Magnitude() == 0 {
		return fmt.Errorf("-velocity must not be the zero vector")
	}
	g, err := parseVector("gravity", *gravity)
	if err != nil {
		return err
	}
	w, err := parseVector("wind", *wind)
	if err != nil {
		return err
	}
	fg, err := render.ParseRGB(*trailColor)
	if err != nil {
		return err
	}
	bg, err := render.ParseRGB(*bgColor)
	if err != nil {
		return err
	}

	world := sim.World{Gravity: g, Wind: w}
	proj := sim.Projectile{Position: pos, Velocity: dir.Normalize().Scale(float32(*speed))}

	stepper, err := sim.NewStepper(sim.Integrator(*integrator), world, proj)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	canvas := render.NewCanvas(*width, *height)
	canvas.Clear(bg)

	res, err := sim.Run(ctx, stepper, canvas, sim.Config{
		MaxSteps: *maxSteps,
		Color:    fg,
		Lines:    *lines,
	})
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	if err := canvas.Save(*outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d, %d ticks)\n", *outPath, *width, *height, res.Steps)

	if *gltfPath != "" {
		if err := models.ExportTrajectory(*gltfPath, res.Path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d points)\n", *gltfPath, len(res.Path))
	}

	if *preview {
		return showPreview(ctx, canvas)
	}
	return nil
}

// showPreview draws the canvas in the terminal until a key is pressed.
func showPreview(ctx context.Context, canvas *render.Canvas) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	draw := func() error {
		term.Erase()
		// Two canvas rows per terminal row.
		fitted := canvas.Fit(width, height*2)
		cols, rows := fitted.TerminalSize()
		fitted.Draw(term, uv.Rect((width-cols)/2, (height-rows)/2, cols, rows))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}
		return nil
	}
	if err := draw(); err != nil {
		return err
	}

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.KeyPressEvent:
				return nil
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Resize(width, height)
				if err := draw(); err != nil {
					return err
				}
			}
		}
	}
}
