package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/launcher"
)

// NewRootCmd builds the tres command tree
func NewRootCmd() *cobra.Command {
	opts := launcher.Options{}

	rootCmd := &cobra.Command{
		Use:   "tres",
		Short: "tres - a three column todo board",
		Long: `tres is a terminal todo board with three stages: Todo, In Progress and Done.

Todos are added to Todo and move one stage at a time. The board lives in
memory and is gone when the program exits.

Examples:
  # Start with an empty board
  tres

  # Start with a few sample todos
  tres --demo

  # Use a different config and theme
  tres --config ./tres.yaml --theme ./mono.yaml
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tres/config.yaml)")
	rootCmd.Flags().StringVar(&opts.ThemePath, "theme", "", "Theme file merged over the configured theme")
	rootCmd.Flags().StringVar(&opts.LogPath, "log-file", "", "Log file (default ~/.tres/logs/tres.log)")
	rootCmd.Flags().BoolVar(&opts.Debug, "debug", false, "Log every board change")
	rootCmd.Flags().BoolVar(&opts.Demo, "demo", false, "Seed Todo with sample todos")

	rootCmd.AddCommand(VersionCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
