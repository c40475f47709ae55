package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"algebramon/internal/app"
	"algebramon/internal/engine"
	"algebramon/internal/gamedata"
	"algebramon/internal/mastery"
	"algebramon/internal/profile"
	"algebramon/internal/stamina"
	"algebramon/internal/store"
)

// localUserID identifies the single local profile. The game is a
// one-seat client; multi-profile support would key this differently.
const localUserID = "local"

// runApp opens the store, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	reg, err := gamedata.Default()
	if err != nil {
		return fmt.Errorf("load game data: %w", err)
	}

	source, err := resolveSource(cmd)
	if err != nil {
		return err
	}

	prof, err := st.Profiles().Load(ctx, localUserID)
	if errors.Is(err, profile.ErrNotFound) {
		prof = &profile.Profile{UserID: localUserID, Level: 1}
		err = st.Profiles().Create(ctx, prof)
	}
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	val, err := st.KV().LoadStamina(ctx)
	if err != nil {
		return fmt.Errorf("load stamina: %w", err)
	}
	gauge := stamina.New(val, st.KV())

	eng := engine.New(engine.Deps{
		Profile:  prof,
		Profiles: st.Profiles(),
		Gauge:    gauge,
		Registry: reg,
		Source:   source,
		Attempts: st.Attempts(),
		Gate:     mastery.NewGate(st.Attempts()),
	})

	return app.Run(app.Options{
		Engine:   eng,
		Registry: reg,
		Attempts: st.Attempts(),
		Profiles: st.Profiles(),
	})
}
