package typedef

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/teranos/dtsgen/errors"
	"gopkg.in/yaml.v3"
)

// NamespaceDump is one merged group as shown by Dump.
type NamespaceDump struct {
	Namespace string   `json:"namespace" yaml:"namespace"`
	Records   []Record `json:"records" yaml:"records"`
}

// Dump writes merged groups to w in namespace order, as "yaml" or "json".
func Dump(w io.Writer, groups Groups, format string) error {
	dump := make([]NamespaceDump, 0, len(groups))
	for _, ns := range groups.Namespaces() {
		dump = append(dump, NamespaceDump{Namespace: ns, Records: groups[ns]})
	}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(dump); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(dump), "failed to encode json")
	default:
		return errors.WithHint(
			errors.Newf("unknown dump format: %s", format),
			"supported formats: yaml, json")
	}
}
