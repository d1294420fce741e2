package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raaphorst/dlxgo/internal/dlx"
)

// parseIncidence reads a comma-separated list of "row:col" pairs and
// returns it row-grouped, satisfying Build's contiguity contract regardless
// of the order the pairs were given in on the command line.
func parseIncidence(s string) ([]dlx.Incidence, error) {
	var positions []dlx.Incidence
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("cover: %q is not a row:col pair", pair)
		}
		row, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("cover: bad row in %q: %w", pair, err)
		}
		col, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("cover: bad col in %q: %w", pair, err)
		}
		positions = append(positions, dlx.Incidence{Row: row, Col: col})
	}

	sort.SliceStable(positions, func(i, j int) bool { return positions[i].Row < positions[j].Row })
	return positions, nil
}

func newCoverCmd(appRef **app) *cobra.Command {
	var numCols, numRows int
	var incidenceStr string

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Solve a raw exact-cover instance given as row:col incidence pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *appRef

			positions, err := parseIncidence(incidenceStr)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), a.cfg.TimeBudget)
			defer cancel()

			s := dlx.Build(positions, numCols, numRows, len(positions))
			sol := make([]bool, numRows)
			found := dlx.Solve(ctx, s, sol)

			a.logger.Info("cover", "cols", numCols, "rows", numRows, "nodes", s.Nodes, "found", found)
			if !found {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("cover: search stopped: %w", err)
				}
				return fmt.Errorf("cover: no exact cover exists for this instance")
			}

			for row, chosen := range sol {
				if chosen {
					fmt.Println(row)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&numCols, "cols", 0, "number of columns in the universe")
	cmd.Flags().IntVar(&numRows, "rows", 0, "number of rows in the family")
	cmd.Flags().StringVar(&incidenceStr, "incidence", "", "comma-separated row:col pairs, e.g. \"0:0,0:2,1:1\"")

	return cmd
}
