package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/structmatch"
	"github.com/jcorbin/structmatch/internal/textutil"
)

func reportString(t *testing.T, filetype string, lines []string) string {
	t.Helper()
	buf, ok := structmatch.Parse(filetype, 4, lines)
	if !assert.True(t, ok) {
		return ""
	}
	var out bytes.Buffer
	w := textutil.PrefixWriter("", &out)
	report(buf, w)
	w.Close()
	return out.String()
}

func TestReport_clean(t *testing.T) {
	got := reportString(t, "go", []string{"func f() {", "}"})
	assert.Equal(t, "ok\n", got)
}

func TestReport_unmatched(t *testing.T) {
	got := reportString(t, "go", []string{"func f() {", "\tfoo(", "}"})
	assert.Contains(t, got, "2:5: unmatched opening")
}

func TestFiletypeFromExt(t *testing.T) {
	assert.Equal(t, "go", filetypeFromExt("main.go"))
	assert.Equal(t, "markdown", filetypeFromExt("README.md"))
	assert.Equal(t, "", filetypeFromExt("README.weird"))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestLintFile_propagatesWriteError(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "main.go")
	assert.NoError(t, ioutil.WriteFile(name, []byte("package p\n"), 0o644))

	err := lintFile(name, "", 4, failingWriter{})
	assert.Error(t, err)
}
