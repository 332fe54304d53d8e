package cmd

import (
	"fmt"

	"github.com/bnema/askme/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the askme config file",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigInitCmd(app))

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Encode(app.cfg)
			if err != nil {
				return err
			}

			source := app.cfg.File
			if source == "" {
				source = "defaults"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, data)
			return err
		},
	}
}

func newConfigInitCmd(app *app) *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := path
			if target == "" {
				defaultFile, err := config.DefaultFile()
				if err != nil {
					return err
				}
				target = defaultFile
			}

			if err := config.WriteFile(target, app.cfg, force); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Config file to write (default $HOME/.askme/config.toml)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
