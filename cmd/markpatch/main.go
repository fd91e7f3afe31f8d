package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/markpatch/cmd/markpatch/commands"
	"github.com/walteh/markpatch/cmd/markpatch/opts"
)

func main() {
	ctx := context.Background()

	// Filled in after flag parsing, shared by all commands
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "markpatch",
		Short: "A one-shot anchored patcher for a single text file",
		Long: `markpatch splices a baked-in replacement block between two literal
marker comments in one target file. The patch is one-shot: a successful
run consumes the start marker, so a second run aborts instead of
silently re-applying.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return populateRootOpts(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
