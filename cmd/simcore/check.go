package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/scene"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	var sceneName string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and build a scene, printing diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.load()
			if err != nil {
				return err
			}
			if sceneName == "" {
				return eris.New("--scene is required")
			}
			sc, err := scene.Load(sceneName)
			if err != nil {
				return err
			}
			w := ecs.NewWorld()
			diags, err := sc.Build(w, cfg.Physics)
			out := cmd.OutOrStdout()
			for _, d := range diags {
				fmt.Fprintln(out, d)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d entities, %d diagnostics\n", sc.Name, w.EntityCount(), len(diags))
			return nil
		},
	}
	cmd.Flags().StringVar(&sceneName, "scene", "", "scene file or bundled scene name")
	return cmd
}
