package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available formats, scorers, and sample ranges",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Run: func(cmd *cobra.Command, args []string) {
			writeList(cmd.OutOrStdout(), []string{"Format", "Description"}, [][]string{
				{"table", "colored terminal tables, one per page"},
				{"json", "full review report as JSON"},
				{"csv", "one row per sample"},
				{"markdown", "per-page markdown tables"},
				{"html", "standalone HTML report"},
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "scorers",
		Short: "List match scorers",
		Run: func(cmd *cobra.Command, args []string) {
			writeList(cmd.OutOrStdout(), []string{"Scorer", "Description"}, [][]string{
				{"exact", "prediction equals ground truth after normalization"},
				{"includes", "prediction contains the ground truth"},
				{"cer", "character error rate at or below threshold"},
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ranges",
		Short: "List sample id ranges and their placement",
		Run: func(cmd *cobra.Command, args []string) {
			writeList(cmd.OutOrStdout(), []string{"Range", "Placement"}, [][]string{
				{"1-15", "shuffled into the front block, adjacency repaired"},
				{"16-59", "kept in arrival order after the front block"},
				{"60-69", "always last, adjacency repaired"},
				{"70-88", "shuffled into the front block, adjacency repaired"},
				{"89+", "kept in arrival order after the front block"},
			})
		},
	})

	return cmd
}

func writeList(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
