// Package cli implements the command-line interface for yagc.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryandancy/yagc/internal/config"
	"github.com/ryandancy/yagc/internal/core"
	"github.com/ryandancy/yagc/internal/store"
)

// cmdContext holds common resources for CLI commands.
type cmdContext struct {
	Config *config.Config
	Store  *store.Store
}

// Close releases resources held by cmdContext.
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}

// initContext locates the repository from the current directory and
// opens its state store.
func initContext() *cmdContext {
	cfg, err := config.Load("")
	if err != nil {
		exitError("%v", err)
	}

	st, err := core.OpenStore(cfg)
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	return &cmdContext{Config: cfg, Store: st}
}

var rootCmd = &cobra.Command{
	Use:   "yagc",
	Short: "Yet Another Git Clone",
	Long: `yagc is a minimal local version-control tool. Stage files, commit them
as immutable full-tree snapshots, inspect history, and restore the
working tree to any prior snapshot.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(resetCmd)
}

// exitError prints an error and exits.
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// confirm prompts the user with a y/N question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s (y/N) ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
