package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/safing/taxglobe/service/report"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the available datasets and their categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadDatasets(cfg)
		if err != nil {
			return err
		}

		styled := stdoutIsTerminal()
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for _, id := range registry.IDs() {
			ds, _ := registry.Get(id)
			_, _ = fmt.Fprintf(tw, "%s\t%s\tcolumn %q\n", ds.ID, ds.Title, ds.Column)
			for _, cat := range ds.Categories {
				key := cat.Key
				if cat.None {
					key = "(none)"
				}
				_, _ = fmt.Fprintf(tw, "   %s\t%s\t%s%s\n", key, cat.Color, report.Swatch(cat.RGBA(), styled), cat.Description)
			}
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
