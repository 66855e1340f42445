// ABOUTME: Sync subcommand for Charm cloud integration.
// ABOUTME: Provides status, link, unlink, now, repair and reset for the charm backend.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/harper/notebook/internal/charm"
	"github.com/harper/notebook/internal/config"
	"github.com/harper/notebook/internal/db"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage Charm cloud sync",
	Long: `Sync your notes to the Charm cloud.

Only the charm backend syncs; select it with "backend": "charm" in
the config file or --backend charm.

Charm uses SSH key authentication - no passwords needed.

Examples:
  notebook sync status
  notebook sync link --host charm.example.com
  notebook sync now`,
	// Sync commands talk to charm directly and never open the repository.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Charm Sync Status")
		fmt.Println(strings.Repeat("-", 40))

		fmt.Printf("Config:    %s\n", config.ConfigPath())
		fmt.Printf("Backend:   %s\n", cfg.Backend)
		if cfg.CharmHost != "" {
			fmt.Printf("Host:      %s\n", cfg.CharmHost)
		} else {
			fmt.Printf("Host:      %s\n", color.New(color.Faint).Sprint("(default: cloud.charm.sh)"))
		}
		if cfg.AutoSync {
			fmt.Printf("Auto-sync: %s\n", color.GreenString("enabled"))
		} else {
			fmt.Printf("Auto-sync: %s\n", color.YellowString("disabled"))
		}

		if cfg.Backend != config.BackendCharm {
			if last, ok := lastLocalSave(cfg); ok {
				fmt.Printf("Last save: %s\n", last.Local().Format("2006-01-02 15:04:05"))
			}
			fmt.Printf("\nStatus:    %s\n", color.YellowString("local only"))
			return nil
		}

		client := newCharmClient(cfg, logger)
		if last := client.LastSyncTime(); !last.IsZero() {
			fmt.Printf("Last sync: %s\n", last.Format("2006-01-02 15:04:05"))
		}
		user, err := client.User()
		fmt.Println()
		if err != nil || user == nil {
			fmt.Printf("Status:    %s\n", color.YellowString("not linked"))
			fmt.Println("\nRun 'notebook sync link' to connect to Charm cloud.")
			return nil
		}
		fmt.Printf("User ID:   %s\n", user.CharmID)
		fmt.Printf("Name:      %s\n", valueOrNone(user.Name))
		fmt.Printf("Status:    %s\n", color.GreenString("connected"))
		return nil
	},
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Connect to Charm cloud",
	Long: `Link this device to Charm cloud and switch the store to the charm backend.

Your SSH keys are used automatically - no passwords needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		if host != "" {
			cfg.CharmHost = host
		}
		cfg.Backend = config.BackendCharm
		if _, err := config.Update(config.ConfigPath(), func(c *config.Config) {
			if host != "" {
				c.CharmHost = host
			}
			c.Backend = config.BackendCharm
		}); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		client := newCharmClient(cfg, logger)
		if err := client.Link(); err != nil {
			return fmt.Errorf("link failed: %w", err)
		}
		user, err := client.User()
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		color.Green("\n✓ Linked to Charm cloud")
		fmt.Printf("  User ID: %s\n", user.CharmID)
		if user.Name != "" {
			fmt.Printf("  Name:    %s\n", user.Name)
		}
		fmt.Println("\nYour notes will now sync automatically.")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm cloud",
	Long: `Unlink this device from Charm cloud and clear the local charm copy.
The store switches back to the badger backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will disconnect this device from Charm cloud.")
		fmt.Println("Export a backup first if you want to keep a local copy.")
		fmt.Print("\nType 'unlink' to confirm: ")

		reader := bufio.NewReader(os.Stdin)
		confirmation, _ := reader.ReadString('\n')
		if strings.TrimSpace(confirmation) != "unlink" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := newCharmClient(cfg, logger).Unlink(); err != nil {
			return fmt.Errorf("unlink failed: %w", err)
		}
		cfg.Backend = config.BackendBadger
		if _, err := config.Update(config.ConfigPath(), func(c *config.Config) {
			c.Backend = config.BackendBadger
		}); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		color.Green("\n✓ Unlinked from Charm cloud")
		fmt.Println("Run 'notebook sync link' to reconnect.")
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Backend != config.BackendCharm {
			return fmt.Errorf("sync requires the charm backend (current: %s)", cfg.Backend)
		}
		if err := newCharmClient(cfg, logger).Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Synced")
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair local charm database corruption",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		fmt.Println("Repairing database...")
		result, err := charmkv.Repair(charm.DBName, force)
		if err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}

		if result.WalCheckpointed {
			fmt.Println("  ✓ WAL checkpointed")
		}
		if result.ShmRemoved {
			fmt.Println("  ✓ SHM file removed")
		}
		if result.Vacuumed {
			fmt.Println("  ✓ Database vacuumed")
		}
		if result.IntegrityOK {
			color.Green("\n✓ Database repaired successfully")
		} else {
			color.Yellow("\n⚠ Repair completed but integrity issues remain")
			fmt.Println("Consider running 'notebook sync reset'")
		}
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local sync data",
	Long:  `Reset the local charm database while keeping cloud data intact. The next read re-syncs from the cloud.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("This will reset local sync data. Continue? [y/N]: ") {
			fmt.Println("Aborted.")
			return nil
		}
		if err := newCharmClient(cfg, logger).Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local sync data reset")
		return nil
	},
}

// lastLocalSave reports when the sqlite store last wrote the notes slot.
// Other backends do not track write times.
func lastLocalSave(c *config.Config) (time.Time, bool) {
	if c.Backend != config.BackendSQLite {
		return time.Time{}, false
	}
	path := db.DefaultPath(c.DataDir)
	if _, err := os.Stat(path); err != nil {
		return time.Time{}, false
	}
	s, err := db.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer func() { _ = s.Close() }()
	ts, err := s.UpdatedAt(c.Slot)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// valueOrNone returns "(not set)" if the string is empty.
func valueOrNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	syncLinkCmd.Flags().String("host", "", "self-hosted charm server")
	syncRepairCmd.Flags().Bool("force", false, "repair even if the integrity check fails")

	syncCmd.AddCommand(syncStatusCmd, syncLinkCmd, syncUnlinkCmd, syncNowCmd, syncRepairCmd, syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
