// ABOUTME: Remove command for deleting a single note.
// ABOUTME: Asks for confirmation unless --force is given.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samk106/SimpleNotesMD/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forceFlag, _ := cmd.Flags().GetBool("force")

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		note, err := noteStore.Get(id)
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		if !forceFlag && !confirm(fmt.Sprintf("Delete note %d (%s)?", note.ID, note.Title)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := noteStore.Delete(id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deleted note %d", id)))
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func init() {
	rmCmd.Flags().Bool("force", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
