package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestMark(t *testing.T) {
	sentinel := New("malformed record")
	cause := fmt.Errorf("unexpected end of JSON input")

	err := Mark(Wrapf(cause, "records.jsonl:3"), sentinel)

	assert.True(t, Is(err, sentinel))
	assert.Contains(t, err.Error(), "records.jsonl:3")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	assert.NotContains(t, err.Error(), "malformed record")

	// Wrapping a marked error keeps the mark
	assert.True(t, Is(Wrap(err, "load"), sentinel))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "try this fix")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestHints(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "no hints",
			err:  New("plain"),
			want: nil,
		},
		{
			name: "duplicate hints collapse",
			err:  WithHint(Wrap(WithHint(New("base"), "check the path"), "outer"), "check the path"),
			want: []string{"check the path"},
		},
		{
			name: "blank hints dropped",
			err:  WithHint(WithHint(New("base"), "  "), "regenerate the input"),
			want: []string{"regenerate the input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hints(tt.err))
		})
	}
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func ExampleWrap() {
	baseErr := New("no such file")
	err := Wrap(baseErr, "failed to open type definitions")
	fmt.Println(err)
	// Output: failed to open type definitions: no such file
}
