package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lg/ilovesteps/internal/walking"
)

func newPacesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "paces",
		Short: "Print the pace table (speed and MET value per pace).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePaces(cmd.OutOrStdout(), v.GetString("output"), walking.PaceTable())
		},
	}
}
