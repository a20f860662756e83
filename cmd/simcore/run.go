package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/simcore/host"
	"github.com/milk9111/simcore/scene"
)

func newRunCmd(root *rootFlags) *cobra.Command {
	var (
		sceneName string
		tracePath string
		watch     bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and play a scene",
		Long: "Plays a scene file or a bundled scene. Arrows or WASD move, space jumps, " +
			"down fast-falls, P pauses, '.' steps while paused, R reloads and F3 toggles the HUD.",
		Example: "simcore run --scene platformer\nsimcore run --scene ./my.yaml --trace events.csv",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			if tracePath != "" {
				cfg.Trace.Path = tracePath
			}

			game, err := host.NewGame(cfg, logger, sceneName)
			if err != nil {
				return err
			}
			defer game.Close()

			if err := game.Simulation().OpenTrace(cfg.Trace.Path); err != nil {
				return err
			}

			if watch {
				if _, err := os.Stat(sceneName); err == nil {
					w, err := scene.NewWatcher(sceneName)
					if err != nil {
						return err
					}
					game.Watch(w)
					logger.Info().Str("path", sceneName).Msg("watching scene")
				} else {
					logger.Warn().Str("scene", sceneName).Msg("bundled scenes are not watched")
				}
			}
			return host.Run(game)
		},
	}
	cmd.Flags().StringVar(&sceneName, "scene", "platformer", "scene file or bundled scene name")
	cmd.Flags().StringVar(&tracePath, "trace", "", "write physics events to this CSV file")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the scene file when it changes")
	return cmd
}
