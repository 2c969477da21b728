// Package structmatch implements the structural-match engine behind a
// multi-language editor helper: given a buffer's lines and a declared file
// type, it tokenizes delimiters, comments, and string spans per line, then
// resolves every opening/closing pair to a nesting depth ("stack height")
// even when the source is syntactically malformed. It also answers
// cursor-relative structural queries (pair lookup, surrounding pair,
// unmatched-delimiter search, stack height at a position) used by features
// like smart bracket insertion and indent-aware navigation.
//
// The package never modifies source text, performs no I/O, and keeps no
// global state: a *ParsedBuffer is a plain value owned by its caller, built
// with Parse and thereafter only mutated in place via ReparseRange.
//
// Minimal usage:
//
//	buf, ok := structmatch.Parse("go", 4, []string{
//		"func main() {",
//		"\tfmt.Println(\"hi\")",
//		"}",
//	})
//	if !ok {
//		return // unsupported file type
//	}
//	open, close, ok := buf.MatchPair(0, 12)
package structmatch
