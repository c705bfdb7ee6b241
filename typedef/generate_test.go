package typedef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/dtsgen/errors"
)

// fixture writes a small two-file intermediate tree and returns its root.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeLines(t, dir, "type-def/core.jsonl",
		`{"kind":"struct","name":"Engine","def":"constructor()","namespace":"core"}`,
		`{"kind":"impl","name":"Engine","def":"start(): void","namespace":"core"}`,
	)
	writeLines(t, dir, "type-def/top.jsonl",
		`{"kind":"impl","name":"Engine","def":"stop(): void","namespace":"core"}`,
		`{"kind":"fn","name":"version","def":"export function version(): string"}`,
		`{"kind":"impl","name":"Missing","def":"nothing(): void"}`,
	)
	return dir
}

// __TOP_LEVEL__ sorts before lower-case namespace names.
const fixtureOutput = Preamble +
	"export function version(): string\n" +
	"export namespace core {\n" +
	"  export class Engine {\n" +
	"    constructor()\n" +
	"    start(): void\n" +
	"    stop(): void\n" +
	"  }\n" +
	"\n" +
	"}\n"

func TestGenerate(t *testing.T) {
	dir := fixture(t)

	res, err := Generate(Options{Inputs: []string{filepath.Join(dir, "type-def", "*.jsonl")}})
	require.NoError(t, err)

	assert.Equal(t, fixtureOutput, res.Output)
	assert.Equal(t, []string{
		filepath.Join(dir, "type-def", "core.jsonl"),
		filepath.Join(dir, "type-def", "top.jsonl"),
	}, res.Files)
	assert.Equal(t, 5, res.Records)
	assert.Equal(t, []string{TopLevelNamespace, "core"}, res.Groups.Namespaces())
	assert.Equal(t, 2, res.Stats.Folded)
	require.Len(t, res.Stats.Dropped, 1)
	assert.Equal(t, "Missing", res.Stats.Dropped[0].Name)
}

func TestGenerateWithHeader(t *testing.T) {
	dir := fixture(t)

	res, err := Generate(Options{
		Inputs:     []string{filepath.Join(dir, "type-def", "**", "*.jsonl")},
		WithHeader: true,
	})
	require.NoError(t, err)
	assert.Equal(t, Header+fixtureOutput, res.Output)
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	empty := writeLines(t, dir, "empty.jsonl", "", "")
	bad := writeLines(t, dir, "bad.jsonl", `{"kind":"struct"}`)

	tests := []struct {
		name   string
		inputs []string
		is     error
	}{
		{"missing input", []string{filepath.Join(dir, "none.jsonl")}, ErrIO},
		{"only blank lines", []string{empty}, ErrEmptyInput},
		{"malformed record", []string{empty, bad}, ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Generate(Options{Inputs: tt.inputs})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
		})
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "index.d.ts")

	require.NoError(t, WriteOutput(path, "first\n"))
	require.NoError(t, WriteOutput(path, "second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestCheck(t *testing.T) {
	dir := fixture(t)
	opts := Options{Inputs: []string{filepath.Join(dir, "type-def", "*.jsonl")}}
	path := filepath.Join(dir, "index.d.ts")

	res, err := Check(opts, path)
	require.NoError(t, err)
	assert.True(t, res.Missing)
	assert.False(t, res.UpToDate)
	assert.Equal(t, 1, res.Line)

	require.NoError(t, WriteOutput(path, fixtureOutput))
	res, err = Check(opts, path)
	require.NoError(t, err)
	assert.True(t, res.UpToDate)
	assert.Equal(t, path, res.Path)

	require.NoError(t, WriteOutput(path, Header+fixtureOutput))
	res, err = Check(opts, path)
	require.NoError(t, err)
	assert.False(t, res.UpToDate)
	assert.Equal(t, 1, res.Line)
	assert.Equal(t, "export class ExternalObject<T> {", res.Want)
	assert.Equal(t, "/* tslint:disable */", res.Got)
}

func TestCheckPropagatesGenerateErrors(t *testing.T) {
	_, err := Check(Options{Inputs: []string{filepath.Join(t.TempDir(), "none.jsonl")}}, "index.d.ts")
	assert.True(t, errors.Is(err, ErrIO))
}

func TestCompareOutput(t *testing.T) {
	tests := []struct {
		name      string
		want, got string
		upToDate  bool
		line      int
		wantLine  string
		gotLine   string
	}{
		{"identical", "a\nb\n", "a\nb\n", true, 0, "", ""},
		{"changed line", "a\nb\nc\n", "a\nx\nc\n", false, 2, "b", "x"},
		{"file shorter", "a\nb\n", "a\n", false, 2, "b", ""},
		{"file longer", "a\n", "a\nb\n", false, 2, "", "b"},
		{"missing final newline", "a\n", "a", false, 2, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CompareOutput(tt.want, tt.got)
			assert.Equal(t, tt.upToDate, res.UpToDate)
			assert.Equal(t, tt.line, res.Line)
			assert.Equal(t, tt.wantLine, res.Want)
			assert.Equal(t, tt.gotLine, res.Got)
		})
	}
}
