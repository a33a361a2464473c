package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/core"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new yagc repository",
	Long: `Initialize a new yagc repository in the current working directory.
This creates a .yagc directory holding all version control state.

Initializing an already-initialized repository does nothing.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		exitError("%v", err)
	}

	result, err := core.Init(cwd)
	if err != nil {
		exitError("failed to initialize repository: %v", err)
	}

	if result.Created {
		fmt.Printf("Initialized empty yagc repository in %s\n", result.Config.YagcPath())
	} else {
		fmt.Println("Project already initialized -- delete the .yagc folder if you want to reinitialize")
	}
}
