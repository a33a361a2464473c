package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/core"
	"github.com/ryandancy/yagc/internal/models"
	"github.com/ryandancy/yagc/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Display a summary of all commits",
	Long: `Display the commit messages and hashes of all commits, oldest first,
as well as a total count.

With --short, only the first line of each commit message is printed.`,
	Args: cobra.NoArgs,
	Run:  runLog,
}

var (
	logShort bool
	logLimit int
)

func init() {
	logCmd.Flags().BoolVarP(&logShort, "short", "s", false, "Print an abridged version of the commit log")
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 0, "Show at most this many commits (0 for all)")
}

func runLog(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	count, err := c.Store.CommitCount()
	if err != nil {
		exitError("failed to read commit log: %v", err)
	}

	plural := "s"
	if count == 1 {
		plural = ""
	}
	fmt.Printf("%d commit%s\n", count, plural)
	if count > 0 {
		fmt.Println()
	}

	shown := count
	if logLimit > 0 && logLimit < count {
		shown = logLimit
	}

	yellow := color.New(color.FgYellow)
	printed := 0
	err = core.Log(c.Store, func(commit *models.Commit) error {
		if printed >= shown {
			return store.ErrStop
		}
		if logShort {
			yellow.Printf("%s ", commit.Hash)
			fmt.Println(commit.Subject())
		} else {
			yellow.Printf("commit %s\n", commit.Hash)
			fmt.Printf("Date:   %s\n", commit.Timestamp.Format("Mon Jan 2 15:04:05 2006"))
			fmt.Printf("\n%s\n", commit.Message)
			if printed < shown-1 {
				fmt.Println("\n---")
				fmt.Println()
			}
		}
		printed++
		return nil
	})
	if err != nil {
		exitError("failed to read commit log: %v", err)
	}
}
