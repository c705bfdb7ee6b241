package typedef

import (
	"os"
	"path/filepath"
	"time"

	"github.com/teranos/dtsgen/errors"
	"github.com/teranos/dtsgen/logger"
)

// Options configures one generation pass.
type Options struct {
	// Inputs are intermediate files or doublestar patterns, see ExpandInputs.
	Inputs []string
	// WithHeader prepends the tooling disclaimer.
	WithHeader bool
}

// Result holds the declaration text of one pass and what went into it.
type Result struct {
	Output   string
	Files    []string
	Records  int
	Groups   Groups
	Stats    MergeStats
	Duration time.Duration
}

// Render sorts, merges and emits records. It fails with ErrEmptyInput when
// there is nothing to render. records is sorted in place.
func Render(records []Record, withHeader bool) (string, error) {
	groups, _, err := Build(records)
	if err != nil {
		return "", err
	}
	return Emit(groups, withHeader), nil
}

// Build runs the sort and merge steps. records is sorted in place.
func Build(records []Record) (Groups, MergeStats, error) {
	if len(records) == 0 {
		return nil, MergeStats{}, errors.WithHint(
			ErrEmptyInput,
			"the intermediate file exists but holds no records; was anything exported?")
	}
	Sort(records)
	groups, stats := Merge(records)
	return groups, stats, nil
}

// Generate expands the inputs, loads every file and renders the result.
func Generate(opts Options) (*Result, error) {
	start := time.Now()

	files, err := ExpandInputs(opts.Inputs)
	if err != nil {
		return nil, err
	}

	records, err := LoadAll(files)
	if err != nil {
		return nil, err
	}
	logger.Debugw("Loaded type definitions",
		logger.FieldCount, len(records),
		"files", files)

	groups, stats, err := Build(records)
	if err != nil {
		return nil, errors.Wrapf(err, "nothing to generate from %d file(s)", len(files))
	}

	for _, rec := range stats.Dropped {
		logger.Debugw("Dropped impl without matching struct",
			logger.FieldName, rec.Name,
			logger.FieldNamespace, rec.NamespaceKey())
	}

	res := &Result{
		Output:  Emit(groups, opts.WithHeader),
		Files:   files,
		Records: len(records),
		Groups:  groups,
		Stats:   stats,
	}
	res.Duration = time.Since(start)

	logger.Debugw("Rendered declarations",
		logger.FieldGroups, len(groups),
		logger.FieldSize, len(res.Output),
		logger.FieldDurationMS, res.Duration.Milliseconds())

	return res, nil
}

// WriteOutput writes text to path, creating parent directories. The file
// is replaced via rename so readers never see a partial file.
func WriteOutput(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
