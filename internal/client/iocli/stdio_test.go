package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := New(strings.NewReader("  user input \nsecond\nlast"), &out)

	first, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", first)
	assert.Equal(t, "Prompt: ", out.String())

	second, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", second)

	// последняя строка без перевода строки
	last, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", last)

	_, err = stdio.ReadInput("")
	assert.Error(t, err)
}

func TestReadMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "terminated by dot", input: "line one\nline two\n.\nignored\n", want: "line one\nline two"},
		{name: "terminated by EOF", input: "only line", want: "only line"},
		{name: "keeps inner blank lines", input: "a\n\nb\n.\n", want: "a\n\nb"},
		{name: "empty", input: ".\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdio := New(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := stdio.ReadMultiline("Body:\n")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotTerminal(t *testing.T) {
	stdio := New(strings.NewReader(""), &bytes.Buffer{})
	assert.False(t, stdio.IsTerminal())
	assert.Zero(t, stdio.Width())
}
