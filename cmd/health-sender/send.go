package main

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"PreTrip_Health_Sender/internal/health-sender/pipeline"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Run one sync: authorize, collect and post the health record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts.envFile)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Sync.Timeout)
			defer cancel()
			outcome := a.pipeline.Run(ctx, pipeline.RunOptions{
				Trigger: model.SyncTriggerCLI,
				DryRun:  dryRun,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", outcome.Status, outcome.Message)
			if dryRun && outcome.Record != nil {
				b, err := json.MarshalIndent(outcome.Record, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			}
			if !outcome.Succeeded() {
				return errors.New(outcome.Status)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "collect the record and print it without sending")
	return cmd
}
