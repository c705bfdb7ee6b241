package typedef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want int
	}{
		{"struct before const", Record{Kind: KindStruct, Name: "Z"}, Record{Kind: KindConst, Name: "A"}, -1},
		{"impl after struct", Record{Kind: KindImpl, Name: "A"}, Record{Kind: KindStruct, Name: "A"}, 1},
		{"structs by name", Record{Kind: KindStruct, Name: "A"}, Record{Kind: KindStruct, Name: "B"}, -1},
		{"mixed non-structs by name", Record{Kind: KindFn, Name: "b"}, Record{Kind: KindEnum, Name: "a"}, 1},
		{"byte order puts upper case first", Record{Kind: KindConst, Name: "Zed"}, Record{Kind: KindConst, Name: "alpha"}, -1},
		{"equal", Record{Kind: KindImpl, Name: "A"}, Record{Kind: KindImpl, Name: "A"}, 0},
		{"kind does not matter outside structs", Record{Kind: KindInterface, Name: "X"}, Record{Kind: KindImpl, Name: "X"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestSort(t *testing.T) {
	records := []Record{
		{Kind: KindConst, Name: "b"},
		{Kind: KindImpl, Name: "Foo", Def: "first"},
		{Kind: KindStruct, Name: "Zoo"},
		{Kind: KindFn, Name: "a"},
		{Kind: KindImpl, Name: "Foo", Def: "second"},
		{Kind: KindStruct, Name: "Foo"},
		{Kind: KindImpl, Name: "Foo", Def: "third"},
	}

	Sort(records)

	var got []string
	for _, r := range records {
		got = append(got, r.Kind.String()+":"+r.Name+":"+r.Def)
	}
	assert.Equal(t, []string{
		"struct:Foo:",
		"struct:Zoo:",
		"impl:Foo:first",
		"impl:Foo:second",
		"impl:Foo:third",
		"fn:a:",
		"const:b:",
	}, got)
}
