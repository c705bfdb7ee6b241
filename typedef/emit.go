package typedef

import (
	"fmt"
	"strings"
)

// Header is the optional tooling disclaimer that opens a declaration file.
const Header = `/* tslint:disable */
/* eslint-disable */

/* auto-generated by NAPI-RS */

`

// Preamble declares the opaque handle type binding glue uses for native
// objects. It is always emitted.
const Preamble = `export class ExternalObject<T> {
  readonly '': {
    readonly '': unique symbol
    [K: symbol]: T
  }
}

`

// Emit renders merged groups as a declaration file: the optional header,
// the preamble, then every group in namespace order. Named groups are
// wrapped in an `export namespace` block and indented by 2. The result
// ends with exactly one newline.
func Emit(groups Groups, withHeader bool) string {
	var sb strings.Builder

	if withHeader {
		sb.WriteString(Header)
	}
	sb.WriteString(Preamble)

	for _, ns := range groups.Namespaces() {
		if ns == TopLevelNamespace {
			for _, rec := range groups[ns] {
				sb.WriteString(rec.Declaration(0))
			}
			continue
		}

		fmt.Fprintf(&sb, "export namespace %s {\n", ns)
		for _, rec := range groups[ns] {
			sb.WriteString(rec.Declaration(2))
		}
		sb.WriteString("}\n")
	}

	return strings.TrimRight(sb.String(), " \t\r\n") + "\n"
}

// Declaration renders the record with its kind's template and reindents
// the result at the given base indent.
func (r Record) Declaration(indent int) string {
	var s string

	switch r.Kind {
	case KindInterface:
		s = fmt.Sprintf("%sexport interface %s {\n%s\n}\n\n", r.DocComment, r.Name, r.Def)
	case KindEnum:
		s = fmt.Sprintf("%sexport const enum %s {\n%s\n}\n\n", r.DocComment, r.Name, r.Def)
	case KindStruct:
		s = fmt.Sprintf("%sexport class %s {\n%s\n}", r.DocComment, r.Name, r.Def)
		if r.HasAlias() {
			s += fmt.Sprintf("\nexport type %s = %s\n\n", r.OriginalName, r.Name)
		} else {
			s += "\n\n"
		}
	default:
		s = r.DocComment + r.Def + "\n"
	}

	return Reindent(s, indent)
}
