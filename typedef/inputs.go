package typedef

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/teranos/dtsgen/errors"
	"github.com/teranos/dtsgen/logger"
)

// ExpandInputs resolves input arguments to a sorted, de-duplicated file list.
// Each argument is a plain path or a doublestar pattern ("target/**/*.jsonl").
// An argument that matches no file is an ErrIO failure.
func ExpandInputs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, errors.WithHint(
			errors.Mark(errors.New("no type definition inputs given"), ErrIO),
			"pass --input or set input in dtsgen.toml")
	}

	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, errors.Mark(errors.Newf("invalid input pattern: %s", pattern), ErrIO)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, ioError(err, "failed to expand input pattern %s", pattern)
		}
		if len(matches) == 0 {
			return nil, ioError(os.ErrNotExist, "input %s matched no files", pattern)
		}

		logger.Debugw("Expanded input pattern",
			logger.FieldPattern, pattern,
			logger.FieldCount, len(matches))

		sort.Strings(matches)
		for _, m := range matches {
			m = filepath.Clean(m)
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	return files, nil
}

// matchesInput reports whether path is selected by any input pattern.
func matchesInput(patterns []string, path string) bool {
	name := filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range patterns {
		p := filepath.ToSlash(filepath.Clean(pattern))
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
