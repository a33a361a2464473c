package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/core"
)

var resetCmd = &cobra.Command{
	Use:   "reset <commit-hash | HEAD>",
	Short: "Remove all commits after a certain commit",
	Long: `Restore the working tree to the state it was in at a certain commit and
remove every commit after it, making that commit the new HEAD.

This destroys history and cannot be undone; you will be asked to confirm
unless --force is given. Reset is only available when HEAD is checked
out.`,
	Args: cobra.ExactArgs(1),
	Run:  runReset,
}

var resetForce bool

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	opts := core.ResetOptions{Confirmed: resetForce}
	result, err := core.Reset(c.Config, c.Store, args[0], opts)
	if errors.Is(err, apperrors.ErrNotConfirmed) {
		yellow := color.New(color.FgYellow)
		yellow.Printf("WARNING! All commits after %s will be lost!\n", args[0])
		yellow.Println("History will be lost. This cannot be undone!")
		if !confirm("Do you want to proceed?") {
			fmt.Println("Aborting reset")
			return
		}
		opts.Confirmed = true
		result, err = core.Reset(c.Config, c.Store, args[0], opts)
	}
	if err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Successfully reset to %s\n", result.Commit.ShortHash())
	if len(result.Removed) > 0 {
		fmt.Printf(" %d commit(s) removed\n", len(result.Removed))
	}
}
