// Package mdfence finds fenced code blocks in a markdown document and
// resolves each one's info string to a structmatch file type, so that a
// caller can lint each block under its declared (or inferred) file type.
// It walks the document the same way jcorbin/soc's cmd/poc walks a blackfriday.Node tree to
// project a journal outline — here the walk projects fenced code regions
// instead of headings.
package mdfence

import (
	"bytes"

	"github.com/russross/blackfriday"

	"github.com/jcorbin/structmatch"
)

// mdExtensions mirrors cmd/poc/main.go's extension set closely enough to
// reliably recognize fenced code blocks; this package has no use for the
// journal-specific extensions (autolink, strikethrough, ...) the original
// enabled, so only FencedCode and NoIntraEmphasis are kept.
const mdExtensions = blackfriday.FencedCode | blackfriday.NoIntraEmphasis

// Fence is one fenced code block found in a markdown document: its info
// string (the text after the opening ``` on the fence line, usually a
// language tag), the literal text between the fences, and the 0-based line
// of the first place in the document where the block's first line of
// content appears (0 for an empty block), as computed by countLines.
type Fence struct {
	Info    string
	Literal string
	Line    int
}

// langAliases maps a fence info string's first word to a structmatch file
// type, covering the common markdown shorthands (```js, ```sh, ```rs, ...)
// that don't spell out the canonical name spec.md's file-type list uses.
var langAliases = map[string]string{
	"js":   "javascript",
	"jsx":  "javascriptreact",
	"ts":   "typescript",
	"tsx":  "typescriptreact",
	"sh":   "shell",
	"bash": "shell",
	"zsh":  "shell",
	"rs":   "rust",
	"py":   "python",
	"rb":   "ruby",
	"yml":  "toml", // closest registered descriptor; YAML has no entry of its own
	"cc":   "cpp",
	"c++":  "cpp",
	"objective-c": "objc",
	"md":          "markdown",
}

// Filetype resolves a fence's info string to a structmatch file type,
// applying langAliases and falling back to the info string verbatim (it may
// already be a canonical name). Reports false if info is empty or names a
// file type structmatch doesn't support.
func Filetype(info string) (string, bool) {
	word := info
	if i := bytes.IndexAny([]byte(info), " \t"); i >= 0 {
		word = info[:i]
	}
	if word == "" {
		return "", false
	}
	if alias, ok := langAliases[word]; ok {
		word = alias
	}
	return word, structmatch.SupportsFiletype(word)
}

// Find parses src as markdown and returns every fenced code block in
// document order, regardless of whether its info string names a supported
// file type — callers use Filetype to decide whether to lint a given fence.
func Find(src []byte) []Fence {
	md := blackfriday.New(blackfriday.WithExtensions(mdExtensions))
	doc := md.Parse(src)

	var fences []Fence
	doc.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering || n.Type != blackfriday.CodeBlock {
			return blackfriday.GoToNext
		}
		fences = append(fences, Fence{
			Info:    string(n.Info),
			Literal: string(n.Literal),
			Line:    countLines(src, n.Literal),
		})
		return blackfriday.GoToNext
	})
	return fences
}

// countLines returns the 0-based line on which literal's text begins within
// src, found by locating its first line of content; blackfriday's Node
// carries no source position, so this recovers one the same way a caller
// wanting to report "line N" on a lint finding needs.
func countLines(src, literal []byte) int {
	firstLine := literal
	if i := bytes.IndexByte(literal, '\n'); i >= 0 {
		firstLine = literal[:i]
	}
	if len(firstLine) == 0 {
		return 0
	}
	idx := bytes.Index(src, firstLine)
	if idx < 0 {
		return 0
	}
	return bytes.Count(src[:idx], []byte("\n"))
}

// Lines splits literal source text into lines the way structmatch.Parse
// expects: no trailing newline on the final element, and a single empty
// line for empty input.
func Lines(src string) []string {
	if src == "" {
		return []string{""}
	}
	s := src
	if s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
