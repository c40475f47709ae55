package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"algebramon/internal/challenge"
	"algebramon/internal/questions"
)

// poolCmd fetches the configured question sheet and reports how many
// questions each unit has, flagging units too small for a gym run.
var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Inspect the question pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := resolveSource(cmd)
		if err != nil {
			return err
		}
		rows, err := source.Fetch(cmd.Context(), questions.Filter{})
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for _, r := range rows {
			counts[r.UnitNorm()]++
		}
		units := make([]string, 0, len(counts))
		for u := range counts {
			units = append(units, u)
		}
		sort.Slice(units, func(i, j int) bool {
			a, aerr := strconv.Atoi(units[i])
			b, berr := strconv.Atoi(units[j])
			if aerr == nil && berr == nil {
				return a < b
			}
			return units[i] < units[j]
		})

		fmt.Printf("%d questions across %d units\n", len(rows), len(units))
		for _, u := range units {
			note := ""
			if counts[u] < challenge.GymQuestions {
				note = "  (too few for a gym run)"
			}
			fmt.Printf("  unit %-3s %3d%s\n", u, counts[u], note)
		}
		return nil
	},
}
