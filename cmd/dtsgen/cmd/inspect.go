package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teranos/dtsgen/typedef"
)

func newInspectCmd(s *state) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Show the sorted, merged records per namespace",
		Long: `Load the intermediate type definitions, sort and merge them exactly as
generation does, and print the resulting namespace groups instead of
declaration text. Impl blocks appear folded into their struct's def.

Examples:
  dtsgen inspect -i target/type-def.jsonl
  dtsgen inspect --format json | jq '.[].namespace'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := typedef.ExpandInputs(s.cfg.Input)
			if err != nil {
				return err
			}
			records, err := typedef.LoadAll(files)
			if err != nil {
				return err
			}
			groups, _, err := typedef.Build(records)
			if err != nil {
				return err
			}
			return typedef.Dump(cmd.OutOrStdout(), groups, format)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml, json")
	return c
}
