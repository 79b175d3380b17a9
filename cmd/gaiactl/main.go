// gaiactl inspects and manages the agent's weight checkpoints and cycle log.
package main

// #region imports
import (
	"fmt"
	"os"

	"github.com/danielpatrickdp/gaia-agent/internal/checkpoint"
	"github.com/danielpatrickdp/gaia-agent/internal/journal"
	"github.com/danielpatrickdp/gaia-agent/internal/replay"
	"github.com/spf13/cobra"
)

// #endregion imports

// #region flags
var (
	dbPath string
	limit  int
)

// #endregion flags

// #region root

var rootCmd = &cobra.Command{
	Use:   "gaiactl",
	Short: "Inspect and manage Gaia agent checkpoints",
	Long: `gaiactl operates on the agent's checkpoint database.

Examples:
  gaiactl versions                 # list weight versions, newest first
  gaiactl show <version-id>        # dump one version's weight matrix
  gaiactl rollback <version-id>    # point the active state at an old version
  gaiactl log                      # recent cycle decisions
  gaiactl replay fixture.json      # replay a deterministic fixture`,
	SilenceUsage: true,
}

// #endregion root

// #region store-helper

func openStore() (*checkpoint.Store, error) {
	store, err := checkpoint.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint db %s: %w", dbPath, err)
	}
	return store, nil
}

// #endregion store-helper

// #region versions

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List weight versions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.ListVersions(limit)
		if err != nil {
			return err
		}
		for _, rec := range records {
			parent := rec.ParentID
			if parent == "" {
				parent = "-"
			}
			fmt.Printf("%s  parent=%s  domain=%s  shape=(%d,%d)  %s\n",
				rec.VersionID, parent, rec.DomainName, rec.Rows, rec.Cols,
				rec.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

// #endregion versions

// #region show

var showCmd = &cobra.Command{
	Use:   "show <version-id>",
	Short: "Dump one version's weight matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rec, err := store.GetVersion(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("version %s (domain %s, created %s)\n",
			rec.VersionID, rec.DomainName, rec.CreatedAt.Format("2006-01-02 15:04:05"))
		for s, row := range rec.Weights {
			fmt.Printf("  sensor %d:", s)
			for _, w := range row {
				fmt.Printf(" %+.6f", w)
			}
			fmt.Println()
		}
		return nil
	},
}

// #endregion show

// #region rollback

var rollbackCmd = &cobra.Command{
	Use:   "rollback <version-id>",
	Short: "Point the active state at a previous version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Rollback(args[0]); err != nil {
			return err
		}
		fmt.Printf("active state now %s\n", args[0])
		return nil
	},
}

// #endregion rollback

// #region log

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent cycle decisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := journal.Recent(store.DB(), limit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  cycle=%s  action=%s  dissonance=%.4f  decision=%s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"),
				e.CycleID, e.SelectedAction, e.Dissonance, e.Decision)
		}
		return nil
	},
}

// #endregion log

// #region replay

var replayCmd = &cobra.Command{
	Use:   "replay <fixture.json>",
	Short: "Replay a deterministic fixture and report mismatches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fix, err := replay.LoadFixture(args[0])
		if err != nil {
			return err
		}
		results, err := replay.Run(fix)
		if err != nil {
			return err
		}
		for _, r := range results {
			status := "ok"
			if !r.Pass {
				status = fmt.Sprintf("MISMATCH (expected %s)", r.Expected)
			}
			fmt.Printf("%s  action=%s  dissonance=%.4f  %s\n", r.CycleID, r.Action, r.Dissonance, status)
		}
		passed, total := replay.Summarize(results)
		fmt.Printf("%d/%d cycles passed\n", passed, total)
		if passed != total {
			return fmt.Errorf("%d cycle(s) did not match", total-passed)
		}
		return nil
	},
}

// #endregion replay

// #region main

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "gaia_agent.db", "path to the checkpoint database")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 20, "max rows for list commands")
	rootCmd.AddCommand(versionsCmd, showCmd, rollbackCmd, logCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// #endregion main
