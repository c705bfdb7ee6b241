package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teranos/dtsgen/config"
	"github.com/teranos/dtsgen/errors"
	"github.com/teranos/dtsgen/logger"
	"github.com/teranos/dtsgen/typedef"
	"github.com/teranos/dtsgen/version"
)

// state is shared by the command tree built in NewRootCmd
type state struct {
	configFile string
	inputs     []string
	output     string
	noHeader   bool
	verbosity  int
	logJSON    bool

	cfg *config.Config
}

// NewRootCmd builds the dtsgen command tree
func NewRootCmd() *cobra.Command {
	s := &state{}

	root := &cobra.Command{
		Use:   "dtsgen",
		Short: "Generate a TypeScript declaration file from intermediate type definitions",
		Long: `Generate a TypeScript declaration file (.d.ts) from the intermediate
type definition records a native binding build emits, one JSON object per line.

It handles:
  - Structs → classes, with impl blocks folded into the class body
  - Enums → const enums, interfaces, functions and constants
  - Namespaces → export namespace blocks
  - Deterministic order: structs first, then by name; namespaces ascending

Examples:
  dtsgen -i target/type-def.jsonl                  # Write declarations to stdout
  dtsgen -i 'target/type-def/**/*.jsonl' -o index.d.ts
  dtsgen check -o index.d.ts                       # Fail if index.d.ts is stale
  dtsgen inspect --format yaml                     # Show merged records
  dtsgen watch -o index.d.ts                       # Regenerate on change

Settings can also come from dtsgen.toml (searched upward from the working
directory) or DTSGEN_* environment variables.`,
		Version:           version.Get().String(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		RunE:              s.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.configFile, "config", "", "Config file (default: dtsgen.toml searched upward)")
	flags.StringSliceVarP(&s.inputs, "input", "i", nil, "Intermediate type definition files or ** patterns")
	flags.StringVarP(&s.output, "output", "o", "", "Output declaration file (default: stdout)")
	flags.BoolVar(&s.noHeader, "no-header", false, "Omit the tslint/eslint disclaimer header")
	flags.CountVarP(&s.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	flags.BoolVar(&s.logJSON, "log-json", false, "Log as JSON instead of console text")

	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(newCheckCmd(s))
	root.AddCommand(newInspectCmd(s))
	root.AddCommand(newWatchCmd(s))
	root.AddCommand(newConfigCmd(s))

	return root
}

// setup merges config file, environment and flags, then starts the logger
func (s *state) setup(cmd *cobra.Command, args []string) error {
	v, err := config.New(s.configFile)
	if err != nil {
		return err
	}

	if err := s.applyFlags(cmd, v); err != nil {
		return err
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}

	// Paths from a config file are relative to that file
	used := v.ConfigFileUsed()
	if !cmd.Flags().Changed("input") {
		cfg.Input = config.ResolveInputs(used, cfg.Input)
	}
	if !cmd.Flags().Changed("output") {
		cfg.Output = config.ResolvePath(used, cfg.Output)
	}
	s.cfg = cfg

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	if used != "" {
		logger.Debugw("Loaded config", logger.FieldFile, used)
		if logger.ShouldOutput(cfg.Log.Verbosity, logger.OutputConfig) {
			pterm.Fprintln(cmd.ErrOrStderr(), pterm.Gray("Using "+used))
		}
	}
	return nil
}

// applyFlags overrides config values with flags the user actually set
func (s *state) applyFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()

	for key, name := range map[string]string{
		"input":    "input",
		"output":   "output",
		"log.json": "log-json",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "failed to bind --%s", name)
		}
	}

	if flags.Changed("no-header") {
		v.Set("header", !s.noHeader)
	}
	if flags.Changed("verbose") {
		v.Set("log.verbosity", s.verbosity)
	}
	return nil
}

func (s *state) options() typedef.Options {
	return typedef.Options{
		Inputs:     s.cfg.Input,
		WithHeader: s.cfg.Header,
	}
}

func (s *state) requireOutput(command string) error {
	if s.cfg.Output != "" {
		return nil
	}
	return errors.WithHint(
		errors.Newf("%s needs an output file", command),
		"pass --output or set output in dtsgen.toml")
}

func (s *state) runGenerate(cmd *cobra.Command, args []string) error {
	res, err := typedef.Generate(s.options())
	if err != nil {
		return withExitCode(err, ExitFailure)
	}

	if s.cfg.Output == "" {
		printRunDetails(cmd.ErrOrStderr(), s.cfg.Log.Verbosity, res)
		_, err := fmt.Fprint(cmd.OutOrStdout(), res.Output)
		return err
	}

	if err := typedef.WriteOutput(s.cfg.Output, res.Output); err != nil {
		return err
	}

	logger.Infow("Generated declarations",
		logger.FieldOutput, s.cfg.Output,
		logger.FieldCount, res.Records,
		logger.FieldGroups, len(res.Groups))
	printGenerated(cmd.ErrOrStderr(), s.cfg.Output, res)
	printRunDetails(cmd.ErrOrStderr(), s.cfg.Log.Verbosity, res)
	return nil
}
