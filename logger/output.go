package logger

// Output controls what categories of information the CLI prints at each
// verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT is printed to the terminal regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Declarations, errors with hints, final status line
//	1 (-v)      - + Per-run summary: files, records, namespaces, folded impls
//	2 (-vv)     - + Dropped impls, timing, config file used
//	3 (-vvv)    - + Every loaded input file

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Generated declarations, inspect dumps
	OutputErrors                           // Errors with hints
	OutputUserStatus                       // ✓ Generated / ✓ Up to date / ✗ Out of date

	// Level 1 (-v) - Informational
	OutputSummary // Files, records and namespaces of a run

	// Level 2 (-vv) - Detailed
	OutputDropped // Impl records with no struct to fold into
	OutputTiming  // Duration of a run
	OutputConfig  // Config file in use

	// Level 3 (-vvv) - Trace
	OutputFiles // Each input file after pattern expansion
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputSummary: VerbosityInfo,

	OutputDropped: VerbosityDebug,
	OutputTiming:  VerbosityDebug,
	OutputConfig:  VerbosityDebug,

	OutputFiles: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputUserStatus: "status",
	OutputSummary:    "summary",
	OutputDropped:    "dropped",
	OutputTiming:     "timing",
	OutputConfig:     "config",
	OutputFiles:      "files",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors and run summaries"
	case VerbosityDebug:
		return "above + dropped impls, timing, config file"
	case VerbosityTrace:
		return "above + every input file"
	default:
		if verbosity > VerbosityTrace {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
