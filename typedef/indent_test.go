package typedef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReindent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		indent int
		want   string
	}{
		{
			name: "nested blocks",
			input: `
class A {
  foo() {
    a = b
  }

bar = () => {

}
    boz = 1
  }

namespace B {
    namespace C {
type D = A
    }
}
`,
			want: `
class A {
  foo() {
    a = b
  }

  bar = () => {

  }
  boz = 1
}

namespace B {
  namespace C {
    type D = A
  }
}
`,
		},
		{
			name:  "doc comment at top level",
			input: "/**\n * doc\n */\nfoo(): void\n",
			want:  "/**\n * doc\n */\nfoo(): void\n",
		},
		{
			name:   "doc comment inside class with base indent",
			input:  "export class A {\n/**\n* x\n*/\nfoo(): void\n}\n",
			indent: 2,
			want:   "  export class A {\n    /**\n     * x\n     */\n    foo(): void\n  }\n",
		},
		{
			name:  "comment line ending in brace does not open a block",
			input: "/**\n * @example {\n */\nx\n",
			want:  "/**\n * @example {\n */\nx\n",
		},
		{
			name:  "closing brace at depth zero",
			input: "  }\n}\nx",
			want:  "}\n}\nx",
		},
		{
			name:  "whitespace-only lines become empty",
			input: "a {\n   \n\t\nb\n}\n",
			want:  "a {\n\n\n  b\n}\n",
		},
		{
			name:  "no trailing newline stays without one",
			input: "a {\nb\n}",
			want:  "a {\n  b\n}",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "single newline",
			input: "\n",
			want:  "\n",
		},
		{
			name:   "negative indent treated as zero",
			input:  "x",
			indent: -4,
			want:   "x",
		},
		{
			name:  "crlf line endings",
			input: "a {\r\nb\r\n}\r\n",
			want:  "a {\n  b\n}\n",
		},
		{
			// The opener rule sees the trailing '{' and nothing else
			name:  "else on a closing line opens another level",
			input: "if (a) {\nb\n} else {\nc\n}",
			want:  "if (a) {\n  b\n  } else {\n    c\n  }",
		},
		{
			// Braces inside literals are counted like structural ones
			name:  "brace at end of template literal line",
			input: "const t = `{\nx`",
			want:  "const t = `{\n  x`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reindent(tt.input, tt.indent))
		})
	}
}

func TestReindentIsIdempotent(t *testing.T) {
	inputs := []string{
		"class A {\nfoo() {\na = b\n}\n\n  bar = 1\n}\n",
		"/**\n* doc\n*/\nexport function f(): void\n",
		"export interface I {\n/** field */\na: { b: number }\nc: {\nd: string\n}\n}\n\n",
		"}\n}\n{\n",
		"",
	}

	for _, indent := range []int{0, 2, 4} {
		for _, in := range inputs {
			once := Reindent(in, indent)
			assert.Equal(t, once, Reindent(once, indent), "indent=%d input=%q", indent, in)
		}
	}
}
