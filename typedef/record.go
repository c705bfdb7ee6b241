package typedef

import (
	"encoding/json"

	"github.com/teranos/dtsgen/errors"
)

// TopLevelNamespace is the group key for records without a namespace. It
// sorts with the other namespace keys but is rendered without a wrapper.
const TopLevelNamespace = "__TOP_LEVEL__"

// Record describes one exported symbol, as emitted on one line of the
// intermediate file.
type Record struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
	// OriginalName is the internal identifier of a struct exported under an
	// alias. Only meaningful for KindStruct.
	OriginalName string `json:"original_name,omitempty" yaml:"original_name,omitempty"`
	// Def is the unindented body or signature fragment.
	Def        string `json:"def" yaml:"def"`
	DocComment string `json:"doc_comment,omitempty" yaml:"doc_comment,omitempty"`
	Namespace  string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// wireRecord mirrors Record with pointers so missing and null fields can
// be told apart from empty strings. js_doc and js_mod are the field names
// older producers emit.
type wireRecord struct {
	Kind         *Kind   `json:"kind"`
	Name         *string `json:"name"`
	OriginalName *string `json:"original_name"`
	Def          *string `json:"def"`
	DocComment   *string `json:"doc_comment"`
	Namespace    *string `json:"namespace"`
	JSDoc        *string `json:"js_doc"`
	JSMod        *string `json:"js_mod"`
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch {
	case w.Kind == nil:
		return errors.New("missing field `kind`")
	case w.Name == nil:
		return errors.New("missing field `name`")
	case w.Def == nil:
		return errors.New("missing field `def`")
	}

	*r = Record{
		Kind:         *w.Kind,
		Name:         *w.Name,
		OriginalName: deref(w.OriginalName),
		Def:          *w.Def,
		DocComment:   firstNonNil(w.DocComment, w.JSDoc),
		Namespace:    firstNonNil(w.Namespace, w.JSMod),
	}
	return nil
}

// NamespaceKey returns the group key the record merges and renders under.
func (r Record) NamespaceKey() string {
	if r.Namespace == "" {
		return TopLevelNamespace
	}
	return r.Namespace
}

// HasAlias reports whether a type alias line follows the class body.
func (r Record) HasAlias() bool {
	return r.Kind == KindStruct && r.OriginalName != "" && r.OriginalName != r.Name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonNil(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}
