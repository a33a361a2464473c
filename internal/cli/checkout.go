package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/core"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout <commit-hash | HEAD>",
	Short: "Restore the working tree to a commit",
	Long: `Restore the working tree to the state it was in at a certain commit.

The argument is either an unambiguous prefix of a commit hash, or HEAD
for the most recent commit. Checking out anything but HEAD leaves the
repository detached: add, remove, commit, and reset are unavailable
until HEAD is checked out again.

Checking out a non-latest commit discards uncommitted changes in tracked
files; you will be asked to confirm unless --force is given.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheckout,
}

var checkoutForce bool

func init() {
	checkoutCmd.Flags().BoolVarP(&checkoutForce, "force", "f", false, "Don't ask before discarding uncommitted changes")
}

func runCheckout(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	opts := core.CheckoutOptions{Confirmed: checkoutForce}
	result, err := core.Checkout(c.Config, c.Store, args[0], opts)
	if errors.Is(err, apperrors.ErrNotConfirmed) {
		color.New(color.FgYellow).Println("Warning! Uncommitted changes will be lost!")
		if !confirm("Do you want to proceed?") {
			fmt.Println("Aborting checkout")
			return
		}
		opts.Confirmed = true
		result, err = core.Checkout(c.Config, c.Store, args[0], opts)
	}
	if err != nil {
		exitError("%v", err)
	}

	green := color.New(color.FgGreen)
	if result.IsHead {
		green.Println("Checked out HEAD")
	} else {
		green.Printf("Checked out commit %s\n", result.Commit.Hash)
	}
}
