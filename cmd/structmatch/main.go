// Command structmatch lints files for unmatched delimiters using the
// structmatch engine: given a plain source file it reports every unmatched
// opening or closing delimiter in that file directly; given a markdown file
// it additionally walks every fenced code block and lints each one under
// its own declared (or inferred) file type, the same way jcorbin/soc's
// cmd/poc walks a parsed document to project a journal outline.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/jcorbin/structmatch"
	"github.com/jcorbin/structmatch/internal/mdfence"
	"github.com/jcorbin/structmatch/internal/textutil"
)

func main() {
	var (
		filetype string
		tabWidth uint
	)
	flag.StringVar(&filetype, "filetype", "", "override file type detection for all files named on the command line")
	flag.UintVar(&tabWidth, "tabwidth", 4, "tab expansion width used for indent rematching")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: %v [flags] file...", filepath.Base(os.Args[0]))
	}

	exit := 0
	for _, name := range flag.Args() {
		if err := lintFile(name, filetype, uint8(tabWidth), os.Stdout); err != nil {
			log.Printf("%v: %v", name, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func lintFile(name, filetypeOverride string, tabWidth uint8, out io.Writer) error {
	src, err := ioutil.ReadFile(name)
	if err != nil {
		return fmt.Errorf("unable to read file: %w", err)
	}

	ew := &textutil.ErrWriter{Writer: out}
	w := textutil.PrefixWriter(name+": ", ew)
	defer w.Close()

	ft := filetypeOverride
	if ft == "" {
		ft = filetypeFromExt(name)
	}

	if ft == "markdown" {
		err = lintMarkdown(src, tabWidth, w)
	} else {
		err = lintSource(ft, mdfence.Lines(string(src)), tabWidth, w)
	}
	if err != nil {
		return err
	}
	return ew.Err
}

func lintMarkdown(src []byte, tabWidth uint8, w *textutil.Prefixer) error {
	if err := lintSource("markdown", mdfence.Lines(string(src)), tabWidth, w); err != nil {
		return err
	}
	for _, fence := range mdfence.Find(src) {
		ft, ok := mdfence.Filetype(fence.Info)
		if !ok {
			log.Printf("skipping fence at line %d: unrecognized or unsupported info %q", fence.Line+1, fence.Info)
			continue
		}
		fmt.Fprintf(w, "-- fenced %v block at line %d --\n", ft, fence.Line+1)
		if err := lintSource(ft, mdfence.Lines(fence.Literal), tabWidth, w); err != nil {
			return err
		}
	}
	return nil
}

func lintSource(filetype string, lines []string, tabWidth uint8, w *textutil.Prefixer) error {
	buf, ok := structmatch.Parse(filetype, tabWidth, lines)
	if !ok {
		return fmt.Errorf("unsupported file type %q", filetype)
	}
	report(buf, w)
	return nil
}

// report writes one line per unmatched delimiter found in buf, in reading
// order: the cursor-relative query surface exists for editor integrations,
// but a plain linear scan over every line's matches suffices to find every
// unmatched delimiter in a parsed buffer.
func report(buf *structmatch.ParsedBuffer, w *textutil.Prefixer) {
	found := false
	for line := 0; line < buf.LineCount(); line++ {
		ms, ok := buf.LineMatches(line)
		if !ok {
			continue
		}
		for _, m := range ms {
			if m.Token.Kind != structmatch.TokenDelimiter {
				continue
			}
			if _, matched := m.StackHeight(); matched {
				continue
			}
			kind := "opening"
			if m.Kind == structmatch.Closing {
				kind = "closing"
			}
			fmt.Fprintf(w, "%d:%d: unmatched %s %v\n", line+1, m.Col+1, kind, m.Token)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(w, "ok")
	}
}

// filetypeByExt maps a recognized source extension to its structmatch file
// type, covering the obvious extension for each of spec.md's 42 supported
// file types except latex, whose .tex extension maps to tex instead.
var filetypeByExt = map[string]string{
	".c":    "c",
	".h":    "c",
	".cc":   "cpp",
	".cpp":  "cpp",
	".hpp":  "cpp",
	".cs":   "csharp",
	".clj":  "clojure",
	".dart": "dart",
	".ex":   "elixir",
	".exs":  "elixir",
	".erl":  "erlang",
	".fs":   "fsharp",
	".go":   "go",
	".hs":   "haskell",
	".hx":   "haxe",
	".java": "java",
	".js":   "javascript",
	".jsx":  "javascriptreact",
	".ts":   "typescript",
	".tsx":  "typescriptreact",
	".json": "json",
	".kt":   "kotlin",
	".tex":  "tex",
	".bib":  "bib",
	".lean": "lean",
	".lua":  "lua",
	".md":   "markdown",
	".markdown": "markdown",
	".nix":      "nix",
	".m":        "objc",
	".ml":       "ocaml",
	".pl":       "perl",
	".php":      "php",
	".py":       "python",
	".r":        "r",
	".rb":       "ruby",
	".rs":       "rust",
	".scala":    "scala",
	".scm":      "scheme",
	".sh":       "shell",
	".bash":     "shell",
	".sql":      "sql",
	".swift":    "swift",
	".toml":     "toml",
	".typ":      "typst",
	".vim":      "vim",
	".zig":      "zig",
}

func filetypeFromExt(name string) string {
	return filetypeByExt[filepath.Ext(name)]
}
