package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/internal/batch"
	"github.com/katalvlaran/bestfirst/internal/config"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		input   string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer every query listed in a YAML graph file concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gf, err := config.LoadFile(input)
			if err != nil {
				return err
			}
			if len(gf.Queries) == 0 {
				return fmt.Errorf("%s: no queries to run", input)
			}
			g, err := gf.Build()
			if err != nil {
				return err
			}

			start := time.Now()
			results, err := batch.Run(cmd.Context(), g, gf.Queries, workers)
			if err != nil {
				return err
			}
			found := 0
			for _, r := range results {
				if r.Found {
					found++
				}
			}
			a.logger.Info("batch finished", "queries", len(results), "found", found,
				"workers", workers, "elapsed", time.Since(start))

			return a.emit(results, func() {
				for _, r := range results {
					a.printResult(r)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML graph file with queries (- for stdin)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent searches (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
