package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/safing/taxglobe/service/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print what the globe shows for every country",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	flags := reportCmd.Flags()
	{
		flags.String("region", "", "Only list countries of this region or continent, e.g. EU-W or AF.")
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	region, _ := cmd.Flags().GetString("region")

	scene, result, err := buildScene(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	r, err := report.Build(scene, result, region)
	if err != nil {
		return err
	}
	return r.Write(os.Stdout, stdoutIsTerminal())
}
