package sim

import (
	"math/rand"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/milk9111/simcore/config"
	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

const scatterSpan = 2000.0

// Scatter adds a floor and n small platform bodies placed at random above
// it, drifting sideways. It is a stress load for the pairwise scan.
func Scatter(w *ecs.World, defaults config.PhysicsConfig, n int, rng *rand.Rand) error {
	floor := w.AddEntity("floor")
	if err := addBody(w, floor, component.Transform{
		Position: r3.Vec{X: -10, Y: scatterSpan},
		Size:     r3.Vec{X: scatterSpan + 20, Y: 20},
		Scale:    1,
	}, component.RigidBody2D{}); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		e := w.AddEntity("")
		err := addBody(w, e, component.Transform{
			Position: r3.Vec{X: rng.Float64() * scatterSpan, Y: rng.Float64() * scatterSpan * 0.9},
			Size:     r3.Vec{X: 8, Y: 8},
			Scale:    1,
		}, component.RigidBody2D{
			Velocity:           r3.Vec{X: rng.Float64()*4 - 2},
			GameType:           component.GameTypePlatform,
			Gravity:            defaults.Gravity,
			MaxFallSpeed:       defaults.MaxFallSpeed,
			FastFallMultiplier: defaults.FastFallMultiplier,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func addBody(w *ecs.World, e ecs.Entity, t component.Transform, rb component.RigidBody2D) error {
	if err := w.SetTransform(e, t); err != nil {
		return eris.Wrapf(err, "scattering entity %v", e)
	}
	if err := w.SetRigidBody(e, rb); err != nil {
		return eris.Wrapf(err, "scattering entity %v", e)
	}
	return nil
}
