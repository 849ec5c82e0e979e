package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/tuple"
)

// ErrNegativeSteps is returned by Run when asked for fewer than zero steps.
var ErrNegativeSteps = errors.New("sim: negative step count")

// Environment holds the forces applied to a projectile on every tick.
// Both fields are expected to be vectors.
type Environment struct {
	Gravity tuple.Tuple
	Wind    tuple.Tuple
}

// Projectile is a position (a point) moving with a velocity (a vector).
type Projectile struct {
	Position tuple.Tuple
	Velocity tuple.Tuple
}

// String returns the debug form of the projectile.
func (p Projectile) String() string {
	return fmt.Sprintf("Projectile{Position: %v, Velocity: %v}", p.Position, p.Velocity)
}

// DefaultEnvironment returns gravity (0, -0.1, 0) and wind (0.01, 0, 0).
func DefaultEnvironment() Environment {
	return Environment{
		Gravity: tuple.Vector(0, -0.1, 0),
		Wind:    tuple.Vector(0.01, 0, 0),
	}
}

// DefaultProjectile returns a projectile at point (0, 1, 0) launched with
// unit velocity along (1, 1, 0).
func DefaultProjectile() Projectile {
	return Projectile{
		Position: tuple.Point(0, 1, 0),
		Velocity: tuple.Vector(1, 1, 0).Normalize(),
	}
}

// Tick advances p by one step in env.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Run returns the trajectory of p over steps ticks.
// The i-th element is the state before the i-th tick, so the first
// element is p itself and the final ticked state is not included.
//
// With WithStopBelowGround, the trajectory ends after the state whose
// tick first puts the projectile at or below y = 0.
func Run(env Environment, p Projectile, steps int, opts ...Option) ([]Projectile, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = tuple.Logger()
	}

	trajectory := make([]Projectile, 0, steps)
	for i := range steps {
		trajectory = append(trajectory, p)
		log.Debug("sim: step",
			slog.Int("step", i),
			slog.Any("position", p.Position),
			slog.Any("velocity", p.Velocity))

		p = Tick(env, p)
		if o.stopBelowGround && p.Position.Y <= 0 {
			log.Debug("sim: projectile reached ground",
				slog.Int("step", i),
				slog.Any("position", p.Position))
			break
		}
	}
	return trajectory, nil
}
