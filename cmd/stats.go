package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"algebramon/internal/gamedata"
	"algebramon/internal/profile"
	"algebramon/internal/progression"
	"algebramon/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress without launching the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		prof, err := st.Profiles().Load(ctx, localUserID)
		if errors.Is(err, profile.ErrNotFound) {
			fmt.Println("No profile yet. Run `algebramon` to start.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		name := prof.DisplayName
		if name == "" {
			name = localUserID
		}
		fmt.Printf("%s  level %d  %d/%d xp\n", name, prof.Level, prof.XP, progression.XPNeeded(prof.Level))

		if prof.Starter.Name != "" {
			fmt.Printf("companion: %s (%s)\n", prof.Starter.Name, prof.Starter.Type)
		}

		reg, err := gamedata.Default()
		if err != nil {
			return fmt.Errorf("load game data: %w", err)
		}
		earned := make(map[string]bool)
		for _, b := range prof.Badges {
			earned[b] = true
		}
		fmt.Printf("badges: %d/%d\n", len(prof.Badges), len(reg.Gyms()))
		for _, g := range reg.Gyms() {
			mark := " "
			if earned[g.Unit] {
				mark = "★"
			}
			fmt.Printf("  %s unit %-3s %s\n", mark, g.Unit, g.Name)
		}

		stats, err := st.Attempts().UnitStats(ctx, prof.UserID)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("no questions answered yet")
			return nil
		}
		fmt.Println("accuracy by unit:")
		for _, s := range stats {
			fmt.Printf("  unit %-3s %3d/%-3d  %.0f%%\n", s.Unit, s.Correct, s.Total, s.Accuracy()*100)
		}
		return nil
	},
}
