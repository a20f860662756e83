// Package sim wires the world, the systems and an optional trace into one
// steppable simulation shared by the interactive host and headless tools.
package sim

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/milk9111/simcore/config"
	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/system"
	"github.com/milk9111/simcore/scene"
	"github.com/milk9111/simcore/telemetry"
)

// Simulation owns a world and the fixed system order run every tick:
// input (when given), controller, physics, animation.
type Simulation struct {
	World      *ecs.World
	Physics    *system.PhysicsSystem
	Controller *system.PlatformerController

	cfg       *config.Config
	scheduler *ecs.Scheduler
	trace     *telemetry.Recorder
	logger    zerolog.Logger
	dt        float64
}

// New builds an empty simulation. input runs first each tick and may be nil.
func New(cfg *config.Config, logger zerolog.Logger, input ecs.System) *Simulation {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := []system.Option{system.WithLogger(logger)}

	s := &Simulation{
		World:      ecs.NewWorld(),
		Physics:    system.NewPhysicsSystem(opts...),
		Controller: system.NewPlatformerController(cfg.Physics.MoveSpeed, cfg.Physics.JumpImpulse, opts...),
		cfg:        cfg,
		logger:     logger,
		dt:         1.0 / 60.0,
	}
	if cfg.Window.TPS > 0 {
		s.dt = 1.0 / float64(cfg.Window.TPS)
	}

	s.scheduler = ecs.NewScheduler()
	if input != nil {
		s.scheduler.Add(input)
	}
	s.scheduler.Add(s.Controller)
	s.scheduler.Add(s.Physics)
	s.scheduler.Add(system.NewAnimationSystem())
	return s
}

// Trace records every physics event of the world to r. Subscriptions
// survive Load.
func (s *Simulation) Trace(r *telemetry.Recorder) {
	if r == nil {
		return
	}
	s.trace = r
	r.Attach(s.World)
}

// OpenTrace creates a CSV trace at path and records to it. An empty path
// leaves tracing off.
func (s *Simulation) OpenTrace(path string) error {
	r, err := telemetry.Create(path, s.Physics.Tick)
	if err != nil {
		return err
	}
	s.Trace(r)
	return nil
}

// Load replaces the world's contents with sc and returns the build
// diagnostics, which are also logged.
func (s *Simulation) Load(sc *scene.Scene) ([]scene.Diagnostic, error) {
	if sc == nil {
		return nil, scene.ErrNoScene
	}
	s.World.Reset()
	s.Physics.Reset()

	diags, err := sc.Build(s.World, s.cfg.Physics)
	for _, d := range diags {
		s.logger.Warn().Str("scene", sc.Name).Str("entity", d.Entity).Str("field", d.Field).Msg(d.Message)
	}
	if err != nil {
		return diags, eris.Wrap(err, "loading scene")
	}
	s.logger.Info().Str("scene", sc.Name).Int("entities", s.World.EntityCount()).Msg("scene loaded")
	return diags, nil
}

// Step runs one tick.
func (s *Simulation) Step() {
	s.scheduler.Update(s.World, s.dt)
}

// Flush writes buffered trace records, if tracing.
func (s *Simulation) Flush() error {
	if s.trace == nil {
		return nil
	}
	return s.trace.Flush()
}

// Close flushes and closes the trace. Closing again is a no-op.
func (s *Simulation) Close() error {
	if s.trace == nil {
		return nil
	}
	err := s.trace.Close()
	s.trace = nil
	return err
}
