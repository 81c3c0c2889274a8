package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oguzk/denizci/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "denizci",
	Short: "Amatör denizci sınavına hazırlık",
	Long:  "Denizci — terminal app for practicing the amateur sailor exam question bank, with offline-first progress sync.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// .env in the working directory is optional.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Progress data directory (overrides DENIZCI_DATA env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank JSON file (overrides DENIZCI_BANK env var)")
	rootCmd.PersistentFlags().String("remote", "", "Remote store base URL (overrides DENIZCI_REMOTE_URL env var); empty runs local-only")

	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using --data (highest
// priority), then DENIZCI_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d, nil
	}
	if d := os.Getenv("DENIZCI_DATA"); d != "" {
		return d, nil
	}
	return store.DefaultDataDir()
}

// resolveBankPath returns the question bank path using --bank, then
// DENIZCI_BANK, then questions.json in the working directory.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	if p := os.Getenv("DENIZCI_BANK"); p != "" {
		return p
	}
	return "questions.json"
}

// resolveRemoteURL returns the remote store base URL using --remote,
// then DENIZCI_REMOTE_URL. Empty means local-only mode.
func resolveRemoteURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("remote"); u != "" {
		return u
	}
	return os.Getenv("DENIZCI_REMOTE_URL")
}
