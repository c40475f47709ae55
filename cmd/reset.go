package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"algebramon/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the save: profile, attempts, badges, stamina",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("This deletes all progress. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		if err := st.Wipe(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("Save wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm wiping all saved progress")
}
