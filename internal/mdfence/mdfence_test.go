package mdfence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/structmatch/internal/mdfence"
)

func TestFind(t *testing.T) {
	src := []byte("# Title\n\n" +
		"Some prose.\n\n" +
		"```go\n" +
		"func f() {\n" +
		"\treturn\n" +
		"}\n" +
		"```\n\n" +
		"More prose.\n\n" +
		"```js\n" +
		"function f() {\n" +
		"```\n")

	fences := mdfence.Find(src)
	if assert.Len(t, fences, 2) {
		assert.Equal(t, "go", fences[0].Info)
		assert.Contains(t, fences[0].Literal, "func f()")

		assert.Equal(t, "js", fences[1].Info)
		assert.Contains(t, fences[1].Literal, "function f()")
	}
}

func TestFiletype(t *testing.T) {
	cases := []struct {
		info string
		want string
		ok   bool
	}{
		{"go", "go", true},
		{"js", "javascript", true},
		{"js ignore-next", "javascript", true},
		{"sh", "shell", true},
		{"rs", "rust", true},
		{"", "", false},
		{"brainfuck", "", false},
	}
	for _, c := range cases {
		got, ok := mdfence.Filetype(c.info)
		assert.Equal(t, c.ok, ok, "info=%q", c.info)
		if c.ok {
			assert.Equal(t, c.want, got, "info=%q", c.info)
		}
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{""}, mdfence.Lines(""))
	assert.Equal(t, []string{"a", "b"}, mdfence.Lines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, mdfence.Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, mdfence.Lines("a\n\nb\n"))
}
