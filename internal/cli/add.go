package cli

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/core"
)

var addCmd = &cobra.Command{
	Use:   "add <filename> [filenames...]",
	Short: "Stage a file for commit",
	Long: `Stage a file or files for commit. When the staged files are committed
with 'yagc commit', all files added using this command are committed and
the staged set is cleared.

Staging a file that is already staged does nothing.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	// Resolve against the invocation directory, not the repository root.
	paths := make([]string, len(args))
	for i, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			exitError("%v", err)
		}
		paths[i] = abs
	}

	result, err := core.Stage(c.Config, c.Store, paths)
	if err != nil {
		exitError("%v", err)
	}

	yellow := color.New(color.FgYellow)
	for _, w := range result.AlreadyStaged {
		yellow.Printf("%s\n", w.Error())
	}

	green := color.New(color.FgGreen)
	green.Printf("Staged %d file(s)\n", result.Staged)
}
