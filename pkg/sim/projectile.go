// Package sim advances a projectile through a simple world and plots its
// path on a canvas.
package sim

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/tracer/pkg/math3d"
)

// World holds the constant forces acting on a projectile.
type World struct {
	Gravity math3d.Tuple // vector
	Wind    math3d.Tuple // vector
}

// Acceleration returns the combined per-tick velocity change.
func (w World) Acceleration() math3d.Tuple {
	return w.Gravity.Add(w.Wind)
}

// Projectile is the simulated state. Position is a point, Velocity a vector.
type Projectile struct {
	Position math3d.Tuple
	Velocity math3d.Tuple
}

// Tick advances p by one step:
//
//	position' = position + velocity
//	velocity' = velocity + gravity + wind
func Tick(w World, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(w.Gravity).Add(w.Wind),
	}
}

// Stepper produces successive projectile states.
type Stepper interface {
	// Current returns the state without advancing.
	Current() Projectile
	// Step advances one tick and returns the new state.
	Step() Projectile
}

// Integrator names a Stepper implementation.
type Integrator string

const (
	IntegratorEuler     Integrator = "euler"     // Tick on float32 tuples
	IntegratorHarmonica Integrator = "harmonica" // harmonica.Projectile, float64
)

// NewStepper creates the stepper for the named integrator.
func NewStepper(kind Integrator, w World, p Projectile) (Stepper, error) {
	switch kind {
	case IntegratorEuler, "":
		return NewEulerStepper(w, p), nil
	case IntegratorHarmonica:
		return NewHarmonicaStepper(w, p), nil
	}
	return nil, fmt.Errorf("unknown integrator %q (use %q or %q)", kind, IntegratorEuler, IntegratorHarmonica)
}

// EulerStepper applies Tick repeatedly.
type EulerStepper struct {
	world World
	state Projectile
}

// NewEulerStepper creates a stepper starting at p.
func NewEulerStepper(w World, p Projectile) *EulerStepper {
	return &EulerStepper{world: w, state: p}
}

// Current returns the current state.
func (s *EulerStepper) Current() Projectile { return s.state }

// Step advances one tick.
func (s *EulerStepper) Step() Projectile {
	s.state = Tick(s.world, s.state)
	return s.state
}

// HarmonicaStepper delegates integration to harmonica's projectile with a
// time step of one tick, which reproduces Tick in float64.
type HarmonicaStepper struct {
	p *harmonica.Projectile
}

// NewHarmonicaStepper creates a stepper starting at p.
func NewHarmonicaStepper(w World, p Projectile) *HarmonicaStepper {
	acc := w.Acceleration()
	return &HarmonicaStepper{
		p: harmonica.NewProjectile(
			1,
			harmonica.Point{X: float64(p.Position.X), Y: float64(p.Position.Y), Z: float64(p.Position.Z)},
			harmonica.Vector{X: float64(p.Velocity.X), Y: float64(p.Velocity.Y), Z: float64(p.Velocity.Z)},
			harmonica.Vector{X: float64(acc.X), Y: float64(acc.Y), Z: float64(acc.Z)},
		),
	}
}

// Current returns the current state.
func (s *HarmonicaStepper) Current() Projectile {
	pos := s.p.Position()
	vel := s.p.Velocity()
	return Projectile{
		Position: math3d.Point(float32(pos.X), float32(pos.Y), float32(pos.Z)),
		Velocity: math3d.Vector(float32(vel.X), float32(vel.Y), float32(vel.Z)),
	}
}

// Step advances one tick.
func (s *HarmonicaStepper) Step() Projectile {
	s.p.Update()
	return s.Current()
}
