package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/milk9111/simcore/config"
)

type rootFlags struct {
	config string
	level  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "simcore",
		Short:        "Platformer physics and collision sandbox",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "YAML file overlaid on the built-in defaults")
	cmd.PersistentFlags().StringVar(&flags.level, "log-level", "", "override log.level from the config")

	cmd.AddCommand(
		newRunCmd(flags),
		newBenchCmd(flags),
		newCheckCmd(flags),
	)
	return cmd
}

// load reads the configuration and builds the logger it describes.
func (f *rootFlags) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if f.level != "" {
		cfg.Log.Level = f.level
		if err := cfg.Validate(); err != nil {
			return nil, zerolog.Nop(), err
		}
	}
	return cfg, cfg.Logger(os.Stderr), nil
}
