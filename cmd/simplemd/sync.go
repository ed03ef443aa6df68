// ABOUTME: Sync subcommands for GitHub integration.
// ABOUTME: Connect, disconnect, manual sync, auto-sync preference, and status.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/samk106/SimpleNotesMD/internal/sync"
	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage GitHub sync",
	Long: `Mirror your notes one-way to a private GitHub repository.

Notes are pushed as one markdown file per note under notes/. Local notes
always win; edits made on GitHub are overwritten by the next sync pass.

Commands:
  connect    - Connect with a personal access token and repository name
  disconnect - Forget the GitHub connection (local notes are kept)
  now        - Run a sync pass immediately
  auto       - Enable or disable the auto-sync preference
  watch      - Keep a 5-minute sync timer running in the foreground
  status     - Show sync configuration

Examples:
  simplemd sync connect --token ghp_xxxx --repo my-notes
  simplemd sync now
  simplemd sync auto on
  simplemd sync watch`,
}

var syncConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a GitHub repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		repo, _ := cmd.Flags().GetString("repo")

		cfg, err := syncEngine.Connect(cmd.Context(), token, repo)
		if err != nil {
			return fmt.Errorf("connect failed: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Connected as @%s to %s/%s", cfg.Username, cfg.Username, cfg.Repo)))
		return nil
	},
}

var syncDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect from GitHub",
	Long:  `Erase the GitHub connection and credentials. Local notes are not affected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := syncEngine.Disconnect(); err != nil {
			return fmt.Errorf("disconnect failed: %w", err)
		}
		fmt.Println(ui.Success("Disconnected from GitHub"))
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Run a sync pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := syncEngine.Sync(cmd.Context())
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		if res.Failed > 0 {
			fmt.Println(ui.Error(fmt.Sprintf("Synced %d notes, %d failed", res.Synced, res.Failed)))
			return nil
		}
		fmt.Println(ui.Success(fmt.Sprintf("Synced %d notes", res.Synced)))
		return nil
	},
}

var syncAutoCmd = &cobra.Command{
	Use:   "auto <on|off>",
	Short: "Enable or disable auto-sync",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enable bool
		switch args[0] {
		case "on":
			enable = true
		case "off":
			enable = false
		default:
			return fmt.Errorf("expected 'on' or 'off', got %q", args[0])
		}

		cfgs := syncEngine.Configs()
		cfg, err := cfgs.Load()
		if err != nil {
			return err
		}
		if !cfg.Connected {
			return sync.ErrNotConnected
		}

		cfg.AutoSync = enable
		if err := cfgs.Save(cfg); err != nil {
			return err
		}

		if enable {
			fmt.Println(ui.Success("Auto-sync enabled. Run 'simplemd sync watch' to keep the timer running."))
		} else {
			fmt.Println(ui.Success("Auto-sync disabled"))
		}
		return nil
	},
}

var syncWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the sync timer in the foreground",
	Long:  `Run a sync pass now and then every 5 minutes until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := syncEngine.Configs().Load()
		if err != nil {
			return err
		}
		if !cfg.Connected {
			return sync.ErrNotConnected
		}

		if res, err := syncEngine.Sync(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "initial sync failed: %v\n", err)
		} else {
			fmt.Println(ui.Success(fmt.Sprintf("Synced %d notes", res.Synced)))
		}

		syncEngine.StartAutoSync()
		defer syncEngine.StopAutoSync()

		fmt.Printf("Syncing every %s. Press Ctrl-C to stop.\n", sync.Interval)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		fmt.Println("\nStopped.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := syncEngine.Configs().Load()
		if err != nil {
			return err
		}

		fmt.Println("GitHub Sync Status")
		fmt.Println(ui.Separator())

		if !cfg.Connected {
			fmt.Println("Not connected. Run 'simplemd sync connect' to get started.")
			return nil
		}

		fmt.Printf("User:       @%s\n", cfg.Username)
		fmt.Printf("Repository: %s/%s\n", cfg.Username, cfg.Repo)
		if cfg.AutoSync {
			fmt.Printf("Auto-sync:  %s\n", color.GreenString("enabled"))
		} else {
			fmt.Printf("Auto-sync:  %s\n", color.YellowString("disabled"))
		}
		return nil
	},
}

func init() {
	syncConnectCmd.Flags().String("token", "", "GitHub personal access token (ghp_...)")
	syncConnectCmd.Flags().String("repo", "", "repository name to mirror notes into")
	_ = syncConnectCmd.MarkFlagRequired("token")
	_ = syncConnectCmd.MarkFlagRequired("repo")

	syncCmd.AddCommand(syncConnectCmd)
	syncCmd.AddCommand(syncDisconnectCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncAutoCmd)
	syncCmd.AddCommand(syncWatchCmd)
	syncCmd.AddCommand(syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
