package main

import (
	"github.com/spf13/cobra"
)

var initSchemaCmd = &cobra.Command{
	Use:   "init-schema",
	Short: "Create the campaigns, adgroups and search_items tables if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		adapter, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(adapter)

		return ensureSchema(ctx, adapter)
	},
}
