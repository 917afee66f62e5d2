package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "health-sender",
		Short:         "Collects the latest health samples and posts them to the health endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env", "./.env", "path of the .env file to load")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newSendCmd(opts))
	root.AddCommand(newDeviceIDCmd(opts))
	return root
}
