package cli

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/core"
)

var removeCmd = &cobra.Command{
	Use:   "remove <filename>",
	Short: "Unstage a file",
	Long: `Unstage a file. The file's changes will no longer be committed on
'yagc commit', but the file stays tracked if it was committed before.`,
	Args: cobra.ExactArgs(1),
	Run:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	abs, err := filepath.Abs(args[0])
	if err != nil {
		exitError("%v", err)
	}

	if err := core.Unstage(c.Config, c.Store, abs); err != nil {
		exitError("%v", err)
	}

	color.New(color.FgGreen).Printf("Unstaged %s\n", args[0])
}
