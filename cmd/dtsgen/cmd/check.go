package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teranos/dtsgen/errors"
	"github.com/teranos/dtsgen/typedef"
)

func newCheckCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check if the declaration file is up to date",
		Long: `Check if the declaration file on disk matches what dtsgen would generate
from the current intermediate type definitions, byte for byte.

Exit codes:
  0 - Declarations are up to date
  1 - Declarations are out of date (first difference shown)
  2 - Error during check

Examples:
  dtsgen check -i target/type-def.jsonl -o index.d.ts
  dtsgen check                              # input/output from dtsgen.toml`,
		Args: cobra.NoArgs,
		RunE: s.runCheck,
	}
}

func (s *state) runCheck(cmd *cobra.Command, args []string) error {
	if err := s.requireOutput("check"); err != nil {
		return withExitCode(err, ExitCheckErr)
	}

	res, err := typedef.Check(s.options(), s.cfg.Output)
	if err != nil {
		return withExitCode(errors.Wrap(err, "check failed"), ExitCheckErr)
	}

	if res.UpToDate {
		printUpToDate(cmd.OutOrStdout(), s.cfg.Output)
		return nil
	}

	printOutOfDate(cmd.OutOrStdout(), res)
	return silentExit(errors.Newf("%s is out of date", s.cfg.Output), ExitFailure)
}
