package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/apperrors"
	"github.com/ryandancy/yagc/internal/core"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit staged files to the repository",
	Long: `Record the staged files as a new immutable snapshot.

Without -m, an editor opens to collect the commit message. The commit
hash printed afterwards (or any unambiguous prefix of it) identifies the
commit for 'yagc checkout' and 'yagc reset'.`,
	Args: cobra.NoArgs,
	Run:  runCommit,
}

var commitMessage string

func init() {
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message (skips the editor)")
}

func runCommit(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	var provider core.MessageProvider
	if cmd.Flags().Changed("message") {
		provider = core.StaticMessage(commitMessage)
	} else {
		provider = &editorMessageProvider{cfg: c.Config}
	}

	result, err := core.Commit(context.Background(), c.Config, c.Store, provider)
	if err != nil {
		if errors.Is(err, apperrors.ErrNothingToCommit) {
			exitError("there are no staged files -- try using `yagc add` first")
		}
		exitError("%v", err)
	}

	yellow := color.New(color.FgYellow)
	for _, w := range result.Warnings {
		yellow.Printf("warning: %s\n", w.Message)
	}

	green := color.New(color.FgGreen)
	green.Printf("[%s] %s\n", result.Commit.ShortHash(), result.Commit.Subject())
	fmt.Printf(" %d staged, %d carried forward, %d deleted\n",
		result.Staged, result.Carried, len(result.Deletions))
	fmt.Printf("Commit hash: %s\n", result.Commit.Hash)
}
