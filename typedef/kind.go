package typedef

import (
	"github.com/teranos/dtsgen/errors"
)

// Kind is the category of an exported symbol. It selects the emission
// template and decides how the record takes part in merging.
type Kind int

const (
	KindConst Kind = iota
	KindFn
	KindStruct
	KindImpl
	KindEnum
	KindInterface
)

var kindNames = map[Kind]string{
	KindConst:     "const",
	KindFn:        "fn",
	KindStruct:    "struct",
	KindImpl:      "impl",
	KindEnum:      "enum",
	KindInterface: "interface",
}

// ParseKind maps a wire tag ("struct", "impl", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.Newf("unknown kind %q", s)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsStructural reports whether records of this kind sort ahead of all others.
func (k Kind) IsStructural() bool {
	return k == KindStruct
}

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, errors.Newf("unknown kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
