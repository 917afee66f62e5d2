package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeviceIDCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "device-id",
		Short: "Print the device identifier sent with every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts.envFile)
			if err != nil {
				return err
			}
			defer a.Close()
			fmt.Fprintln(cmd.OutOrStdout(), a.deviceID.DeviceID())
			return nil
		},
	}
}
