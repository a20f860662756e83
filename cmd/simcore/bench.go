package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/system"
	"github.com/milk9111/simcore/sim"
)

func newBenchCmd(root *rootFlags) *cobra.Command {
	var (
		entities int
		ticks    int
		prof     string
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the physics step headless over random bodies and report timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			if entities <= 0 || ticks <= 0 {
				return eris.New("--entities and --ticks must be positive")
			}

			switch prof {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
			case "mem":
				defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
			default:
				return eris.Errorf("unknown profile %q, want cpu or mem", prof)
			}

			w := ecs.NewWorld()
			if err := sim.Scatter(w, cfg.Physics, entities, rand.New(rand.NewSource(seed))); err != nil {
				return err
			}
			ps := system.NewPhysicsSystem()

			var collisions int
			ecs.Subscribe(w.Events(), func(ecs.CollisionEvent) { collisions++ })

			start := time.Now()
			for i := 0; i < ticks; i++ {
				ps.Update(w, 1.0/60.0)
			}
			elapsed := time.Since(start)

			logger.Info().
				Int("entities", entities).
				Int("ticks", ticks).
				Dur("elapsed", elapsed).
				Dur("per_tick", elapsed/time.Duration(ticks)).
				Int("collisions", collisions).
				Msg("bench done")
			fmt.Fprintf(cmd.OutOrStdout(), "%d entities x %d ticks: %s (%s/tick), %d collisions\n",
				entities, ticks, elapsed, elapsed/time.Duration(ticks), collisions)
			return nil
		},
	}
	cmd.Flags().IntVar(&entities, "entities", 500, "number of bodies")
	cmd.Flags().IntVar(&ticks, "ticks", 600, "number of physics steps")
	cmd.Flags().StringVar(&prof, "profile", "", "write a cpu or mem profile to the current directory")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for body placement")
	return cmd
}
