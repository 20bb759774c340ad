package main

import (
	"github.com/bethropolis/files-to-prompt/internal/app"
	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the files-to-prompt command. Every invocation gets a
// fresh Config so the command can be executed more than once in tests.
func newRootCmd() *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "files-to-prompt PATH...",
		Short: "Concatenate a directory full of files into a single prompt for use with LLMs",
		Long: `Takes one or more paths to files or directories and outputs every file,
recursively, each one preceded with its filename.

Hidden files and files matched by .gitignore rules are skipped unless
--include-hidden or --ignore-gitignore is given.`,
		Version:       config.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Finalize(args, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
		},
	}
	cmd.SetVersionTemplate("files-to-prompt version {{.Version}}\n")
	cfg.BindFlags(cmd.Flags())

	return cmd
}
