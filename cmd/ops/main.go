package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"smarttodo/internal/ops"
	"smarttodo/internal/todo"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "ops",
		Short:   "Operational tooling for the smarttodo data directory",
		Version: Version,
	}

	rootCmd.AddCommand(backupCmd())
	rootCmd.AddCommand(restoreCmd())
	rootCmd.AddCommand(verifyCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func backupCmd() *cobra.Command {
	var dataDir, out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a tar.gz snapshot of the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = filepath.Join("backups", "smarttodo-"+time.Now().UTC().Format("20060102-150405")+".tar.gz")
			}
			if err := ops.BackupDataDir(dataDir, out); err != nil {
				return err
			}
			fmt.Println("backup written:", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	cmd.Flags().StringVar(&out, "out", "", "archive path (default backups/smarttodo-<ts>.tar.gz)")
	return cmd
}

func restoreCmd() *cobra.Command {
	var dataDir, archive string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Unpack a snapshot into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if archive == "" {
				return fmt.Errorf("--archive is required")
			}
			if err := ops.RestoreDataDir(archive, dataDir); err != nil {
				return err
			}
			fmt.Println("restored into:", dataDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	cmd.Flags().StringVar(&archive, "archive", "", "snapshot to restore")
	return cmd
}

func verifyCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the todo document invariants (unique ids, counter, no null sequences)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := ops.VerifyDataFile(filepath.Join(dataDir, "todos.json"))
			if err != nil {
				return err
			}
			printJSON(rep)
			if !rep.OK() {
				return fmt.Errorf("document failed verification")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	return cmd
}

func statsCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate counts for the stored todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := todo.NewFileRepo(dataDir, nil)
			if err != nil {
				return err
			}
			stats, err := repo.Stats()
			if err != nil {
				return err
			}
			printJSON(stats)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to data directory")
	return cmd
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
