package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/studygen/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data",
	Long:  "Deletes the local account record, signing you out. With --all, removes the whole database including quiz cooldowns and LLM event history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if all {
				fmt.Printf("This removes the entire database at %s, including quiz cooldowns and LLM history.\n", dbPath)
			} else {
				fmt.Println("This removes your account record and signs you out.")
			}
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		if all {
			if err := os.Remove(dbPath); err != nil {
				if os.IsNotExist(err) {
					fmt.Println("Nothing to reset.")
					return nil
				}
				return fmt.Errorf("remove database: %w", err)
			}
			fmt.Println("Database removed.")
			return nil
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.AccountRepo().Delete(context.Background()); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		fmt.Println("Account removed. You will be asked to sign in on the next run.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Remove the entire database file")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
