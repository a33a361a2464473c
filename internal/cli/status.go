package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the repository's current status",
	Long: `Display the current status of the yagc repository: the list of staged
files and whether HEAD is checked out.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	status, err := core.Status(c.Config, c.Store)
	if err != nil {
		exitError("failed to read status: %v", err)
	}

	fmt.Printf("Status of repository at %s:\n", status.Root)

	n := len(status.Staged)
	switch {
	case n == 0:
		fmt.Println("No files staged for commit.")
	case n == 1:
		fmt.Println("1 file staged for commit:")
	default:
		fmt.Printf("%d files staged for commit:\n", n)
	}

	green := color.New(color.FgGreen)
	for _, p := range status.Staged {
		green.Printf("- %s\n", p)
	}

	if status.Head {
		fmt.Println("HEAD is checked out.")
	} else {
		color.New(color.FgYellow).Println("HEAD is not checked out; some functionality unavailable")
	}
}
