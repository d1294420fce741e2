package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDesignCmd(appRef **app) *cobra.Command {
	var v, k, t int

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Find a t-(v,k,1) combinatorial design via exact cover",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *appRef

			ctx, cancel := context.WithTimeout(context.Background(), a.cfg.TimeBudget)
			defer cancel()

			run, err := a.uc.SolveDesign(ctx, v, k, t)
			runlogResult(a, "design", run, err)
			if err != nil {
				return err
			}

			for _, block := range run.Design.Blocks {
				fmt.Println(block)
			}
			fmt.Println("run id:", run.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&v, "v", 7, "size of the point set")
	cmd.Flags().IntVar(&k, "k", 3, "block size")
	cmd.Flags().IntVar(&t, "t", 2, "coverage strength (every t-subset covered exactly once)")

	return cmd
}
