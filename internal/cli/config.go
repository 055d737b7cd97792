package cli

import (
	"fmt"

	"github.com/Davincible/qrecc/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config inspection command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or reset the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cm, err := loadConfig()
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), cm.GetConfig())
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.GetConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default configuration (profiles are kept)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cm, err := loadConfig()
				if err != nil {
					return err
				}
				if err := cm.Reset(); err != nil {
					return err
				}

				yellow := color.New(color.FgYellow)
				yellow.Fprintf(cmd.OutOrStdout(), "Configuration reset: %s\n", cm.Path())
				return nil
			},
		},
	)

	return cmd
}
