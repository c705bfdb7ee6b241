package typedef

import (
	"os"
	"strings"

	"github.com/teranos/dtsgen/errors"
)

// CheckResult holds the outcome of comparing a fresh generation pass with a
// declaration file on disk.
type CheckResult struct {
	UpToDate bool
	Path     string
	// Missing is set when the file on disk does not exist.
	Missing bool
	// Line is the first differing line (1-based), 0 when up to date.
	Line int
	// Want is the generated text of that line, Got the text on disk.
	Want string
	Got  string
}

// Check regenerates from opts and compares the text byte-for-byte with the
// file at path.
func Check(opts Options, path string) (*CheckResult, error) {
	res, err := Generate(opts)
	if err != nil {
		return nil, err
	}

	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &CheckResult{Path: path, Missing: true, Line: 1}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	result := CompareOutput(res.Output, string(existing))
	result.Path = path
	return result, nil
}

// CompareOutput reports the first line where got differs from want.
func CompareOutput(want, got string) *CheckResult {
	if want == got {
		return &CheckResult{UpToDate: true}
	}

	wantLines := strings.Split(want, "\n")
	gotLines := strings.Split(got, "\n")

	for i := 0; i < len(wantLines) || i < len(gotLines); i++ {
		var w, g string
		if i < len(wantLines) {
			w = wantLines[i]
		}
		if i < len(gotLines) {
			g = gotLines[i]
		}
		if w != g || i >= len(wantLines) || i >= len(gotLines) {
			return &CheckResult{Line: i + 1, Want: w, Got: g}
		}
	}

	// Unreachable: equal line slices join to equal strings
	return &CheckResult{Line: len(wantLines)}
}
