package cmd

import (
	"errors"
	"os"

	"algebramon/internal/questions"
	"algebramon/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "algebramon",
	Short: "Algebra battle trainer for the terminal",
	Long:  "Algebramon — catch the concepts, beat the gyms. A terminal algebra game with study drills, gym bosses, and trainer battles.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ALGEBRAMON_DB env var)")
	rootCmd.PersistentFlags().String("sheet", "", "URL of the published question sheet TSV (overrides ALGEBRAMON_SHEET env var)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a local question TSV, used instead of the sheet")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ALGEBRAMON_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveSource picks the question source: a local TSV file when
// --questions is set, otherwise the published sheet URL.
func resolveSource(cmd *cobra.Command) (questions.Source, error) {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return questions.FileSource{Path: p}, nil
	}
	url, _ := cmd.Flags().GetString("sheet")
	if url == "" {
		url = os.Getenv("ALGEBRAMON_SHEET")
	}
	if url == "" {
		return nil, errors.New("no question source: set --sheet, ALGEBRAMON_SHEET, or --questions")
	}
	return questions.NewSheetSource(url), nil
}
