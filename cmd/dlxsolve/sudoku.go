package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raaphorst/dlxgo/internal/sudoku"
)

func newSudokuCmd(appRef **app) *cobra.Command {
	var order int
	var givensStr string
	var givensFile string

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve an order-N Sudoku board via exact cover",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *appRef

			raw := givensStr
			if givensFile != "" {
				data, err := os.ReadFile(givensFile)
				if err != nil {
					return fmt.Errorf("reading givens file: %w", err)
				}
				raw = strings.TrimSpace(string(data))
			}
			if raw == "" {
				return fmt.Errorf("sudoku: one of --givens or --givens-file is required")
			}

			givens, err := sudoku.ParseGivens(order, raw)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), a.cfg.TimeBudget)
			defer cancel()

			run, err := a.uc.SolveSudoku(ctx, order, givens)
			runlogResult(a, "sudoku", run, err)
			if err != nil {
				return err
			}

			for _, row := range run.Sudoku.Grid {
				fmt.Println(row)
			}
			fmt.Println("run id:", run.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&order, "order", 3, "board order N (side = N^2); ParseGivens only supports side<=9")
	cmd.Flags().StringVar(&givensStr, "givens", "", "row-major givens string, '0' or '.' for blank")
	cmd.Flags().StringVar(&givensFile, "givens-file", "", "file containing the givens string")

	return cmd
}
