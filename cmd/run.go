package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oguzk/denizci/internal/app"
	"github.com/oguzk/denizci/internal/bank"
	"github.com/oguzk/denizci/internal/cloud"
	"github.com/oguzk/denizci/internal/store"
	"github.com/oguzk/denizci/internal/syncer"
)

// runApp opens the store, loads the bank, builds the syncer, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	sy, b, err := buildSyncer(cmd)
	if err != nil {
		return err
	}

	if !sy.CloudEnabled() {
		fmt.Fprintln(os.Stderr, "No remote configured; running local-only.")
	} else {
		// Pull everyone's progress down before the first screen so the
		// leaderboard starts fresh. Failures fall back to local data.
		sy.SyncAll(cmd.Context())
	}

	return app.Run(app.Options{
		Syncer: sy,
		Bank:   b,
	})
}

// buildSyncer wires the store, bank, and optional cloud client from
// the resolved configuration. Shared by the TUI and the plain-stdout
// subcommands.
func buildSyncer(cmd *cobra.Command) (*syncer.Syncer, *bank.Bank, error) {
	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	st, err := store.Open(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	b, err := bank.Load(resolveBankPath(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("load question bank: %w", err)
	}

	var client *cloud.Client
	if remote := resolveRemoteURL(cmd); remote != "" {
		client = cloud.NewClient(remote, nil)
	}

	return syncer.New(st, client), b, nil
}
