package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/dtsgen/config"
)

func newConfigCmd(s *state) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show or create dtsgen configuration",
		Long: `Show the effective configuration after merging dtsgen.toml, DTSGEN_*
environment variables and flags, or write a starter dtsgen.toml.`,
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(s.cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	showCmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format: toml, json, yaml")

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter dtsgen.toml",
		Long: `Write dtsgen.toml with the default settings, plus any --input and
--output given on the command line, into dir (default: current directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.FileName)

			cfg := config.Default()
			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Input = s.cfg.Input
			}
			if flags.Changed("output") {
				cfg.Output = s.cfg.Output
			}
			if flags.Changed("no-header") {
				cfg.Header = s.cfg.Header
			}

			if err := config.WriteFile(path, cfg, force); err != nil {
				return err
			}
			pterm.Fprintln(cmd.ErrOrStderr(), fmt.Sprintf("%s %s", pterm.LightGreen("✓ Wrote"), path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing dtsgen.toml (previous copy kept as .back1)")

	c.AddCommand(showCmd, initCmd)
	return c
}
