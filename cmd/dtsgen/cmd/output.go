package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/teranos/dtsgen/logger"
	"github.com/teranos/dtsgen/typedef"
)

func printGenerated(w io.Writer, path string, res *typedef.Result) {
	pterm.Fprintln(w, fmt.Sprintf("%s %s %s",
		pterm.LightGreen("✓ Generated"),
		path,
		pterm.Gray(fmt.Sprintf("(%d records, %d namespaces)", res.Records, len(res.Groups)))))
}

// printRunDetails prints what went into a run, as far as verbosity allows
func printRunDetails(w io.Writer, verbosity int, res *typedef.Result) {
	if logger.ShouldOutput(verbosity, logger.OutputFiles) {
		for _, file := range res.Files {
			pterm.Fprintln(w, pterm.Gray("  · "+file))
		}
	}

	if logger.ShouldOutput(verbosity, logger.OutputSummary) {
		pterm.Fprintln(w, fmt.Sprintf("  %d file(s), %d records, %d namespaces, %d impls folded",
			len(res.Files), res.Records, len(res.Groups), res.Stats.Folded))
	}

	if logger.ShouldOutput(verbosity, logger.OutputDropped) {
		for _, rec := range res.Stats.Dropped {
			pterm.Fprintln(w, fmt.Sprintf("  %s impl %s in %s has no struct to fold into",
				pterm.Yellow("⚠ Dropped"), rec.Name, rec.NamespaceKey()))
		}
	}

	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Fprintln(w, pterm.Gray(fmt.Sprintf("  took %s", res.Duration)))
	}
}

func printUpToDate(w io.Writer, path string) {
	pterm.Fprintln(w, fmt.Sprintf("%s %s", pterm.LightGreen("✓ Up to date:"), path))
}

func printOutOfDate(w io.Writer, res *typedef.CheckResult) {
	if res.Missing {
		pterm.Fprintln(w, fmt.Sprintf("%s %s %s", pterm.Red("✗ Missing:"), res.Path, pterm.Gray("(run dtsgen to create it)")))
		return
	}
	pterm.Fprintln(w, fmt.Sprintf("%s %s", pterm.Red("✗ Out of date:"), res.Path))
	pterm.Fprintln(w, fmt.Sprintf("  %s %d", pterm.Yellow("First difference at line"), res.Line))
	pterm.Fprintln(w, fmt.Sprintf("  %s %q", pterm.Green("generated:"), res.Want))
	pterm.Fprintln(w, fmt.Sprintf("  %s %q", pterm.Red("on disk:  "), res.Got))
}
