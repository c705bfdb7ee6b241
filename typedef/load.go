package typedef

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/teranos/dtsgen/errors"
)

// Load reads an intermediate file and returns its records in file order.
//
// The file is mapped read-only when the platform allows it and read into
// memory otherwise. One malformed line fails the whole load.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithHint(
			ioError(err, "failed to open type definitions %s", path),
			"check that the binding build wrote its intermediate type definition file")
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, ioError(err, "failed to stat %s", path)
	}

	// Can't mmap zero bytes
	if stat.Size() == 0 {
		return nil, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		// Fallback: read entire file into memory
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, ioError(readErr, "failed to read %s (mmap: %v)", path, err)
		}
		return parseRecords(content, path)
	}
	defer data.Unmap()

	return parseRecords(data, path)
}

// LoadReader reads records from r. source names the stream in error messages.
func LoadReader(r io.Reader, source string) ([]Record, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(err, "failed to read %s", source)
	}
	return parseRecords(content, source)
}

// LoadAll loads each path in order and concatenates the records, so the
// combined file order is path order, then line order.
func LoadAll(paths []string) ([]Record, error) {
	var records []Record
	for _, path := range paths {
		recs, err := Load(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// parseRecords decodes one record per non-blank line. json.Unmarshal copies
// every string out of data, so data may be unmapped afterwards.
func parseRecords(data []byte, source string) ([]Record, error) {
	var records []Record
	lineNo := 0

	for len(data) > 0 {
		lineNo++
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, errors.WithHint(
				errors.Mark(errors.Wrapf(err, "%s:%d: malformed type definition", source, lineNo), ErrMalformedRecord),
				"each line must be a single JSON object with kind, name and def")
		}
		records = append(records, rec)
	}

	return records, nil
}
