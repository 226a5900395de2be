package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/C0deXG/model-evalV7/pkg/dataset"
	"github.com/C0deXG/model-evalV7/pkg/reorder"
)

func newReorderCommand() *cobra.Command {
	var (
		datasetPath string
		seed        int64
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Print the full presentation order without paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(datasetPath, appConfig.Dataset)
			if path == "" {
				return errors.New("dataset path is required")
			}

			ds := dataset.NewFileDataset(path)
			records, err := ds.Load(context.Background())
			if err != nil {
				return err
			}

			seedResolved := resolveInt64(seed, appConfig.Seed)
			r := &reorder.Reorderer{Logger: logger}
			if seedResolved != 0 {
				r.Rand = rand.New(rand.NewSource(seedResolved))
			}
			result := r.Reorder(records)

			writer := cmd.OutOrStdout()
			if outputResolved := resolveString(outputPath, ""); outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			for i, record := range result.Records {
				fmt.Fprintf(writer, "%d\t%d\t%s\n", i+1, record.SampleID(), record.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "path to evaluation results file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 = random)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")

	return cmd
}
