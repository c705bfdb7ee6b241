package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teranos/dtsgen/logger"
	"github.com/teranos/dtsgen/typedef"
)

func newWatchCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the declaration file whenever an input changes",
		Long: `Generate once, then watch the input files and regenerate the output
after every change. Failed regenerations are logged and the previous
output is kept. Stop with Ctrl-C.

Examples:
  dtsgen watch -i 'target/type-def/**/*.jsonl' -o index.d.ts -v`,
		Args: cobra.NoArgs,
		RunE: s.runWatch,
	}
}

func (s *state) runWatch(cmd *cobra.Command, args []string) error {
	if err := s.requireOutput("watch"); err != nil {
		return err
	}

	// Resolve inputs up front so a typo fails fast
	if _, err := typedef.ExpandInputs(s.cfg.Input); err != nil {
		return err
	}

	w, err := typedef.NewWatcher(s.options(), s.cfg.Output, s.cfg.Watch.Debounce())
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	w.OnRegenerate(func(res *typedef.Result, err error) {
		if err == nil {
			printGenerated(errOut, s.cfg.Output, res)
			printRunDetails(errOut, s.cfg.Log.Verbosity, res)
		}
	})

	// Initial pass; a failure here is logged and watching continues
	_, _ = w.Regenerate()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("Watching for changes",
		logger.FieldOutput, s.cfg.Output,
		"inputs", s.cfg.Input)
	return w.Run(ctx)
}
