// Package cli implements the myenglish command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-client/internal/app"
	"github.com/heartmarshall/myenglish-client/internal/config"
)

// NewRootCommand builds the myenglish command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "myenglish",
		Short: "Review your vocabulary from the terminal",
		Long: `myenglish shows the words due for review one at a time and records
your answers on the MyEnglish server. Questions are prefetched in batches
so the next word is ready as soon as you grade the current one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("CONFIG_PATH", configPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config YAML (default ./config.yaml)")

	root.AddCommand(
		newReviewCommand(),
		newStatusCommand(),
		newVersionCommand(),
	)
	return root
}

// loadApp reads the configuration and wires the client. Logs go to the
// command's stderr.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, cmd.ErrOrStderr())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "myenglish "+app.BuildVersion())
		},
	}
}
