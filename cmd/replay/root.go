package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "replay",
		Short:         "Replay recorded user turns through the router",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: search ./config, . and /etc/cognitive-router)")

	cmd.AddCommand(newRunCmd(&configPath))
	return cmd
}
