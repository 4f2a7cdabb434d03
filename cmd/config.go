package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quick-init/internal/config"
)

// newConfigCmd groups the config file subcommands.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the quick-init configuration",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := opts.configPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the loaded configuration, creating the default file if missing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := opts.configPath()
				if err != nil {
					return err
				}
				cfg, err := config.LoadOrInit(path)
				if err != nil {
					return err
				}
				data, err := config.Marshal(path, cfg)
				if err != nil {
					return fmt.Errorf("encoding config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
	)

	return configCmd
}
