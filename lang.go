package structmatch

// DelimiterPair is one declared open/close bracket pair, e.g. ("(", ")").
type DelimiterPair struct {
	Open  string
	Close string
}

// SpanPair is one declared block-comment open/close pair, e.g. ("/*", "*/").
type SpanPair struct {
	Open  string
	Close string
}

// Descriptor is a language's opaque lexical table: the ordered delimiter
// pairs it recognizes, its line-comment prefixes, its block-comment
// open/close pairs, and its (symmetric, inline-only) string quote marks.
// Order matters within every list: it is the tie-break of last resort in
// tokenizeLine's rule 3.
type Descriptor struct {
	Delimiters   []DelimiterPair
	LineComment  []string
	BlockComment []SpanPair
	String       []string
}

var (
	bracketsOnly  = []DelimiterPair{{"(", ")"}, {"[", "]"}, {"{", "}"}}
	cLikeComments = []SpanPair{{"/*", "*/"}}
	cLikeStrings  = []string{"\"", "'"}
)

func cLike(lineComment ...string) *Descriptor {
	return &Descriptor{
		Delimiters:   bracketsOnly,
		LineComment:  lineComment,
		BlockComment: cLikeComments,
		String:       cLikeStrings,
	}
}

// descriptors maps every canonical language name this package knows about
// to its Descriptor. Several file types documented as distinct share one
// descriptor, matching the original plugin's own dispatch table: the four
// JavaScript/TypeScript variants share one table, as do latex/tex/bib.
var descriptors = map[string]*Descriptor{
	"c":          cLike("//"),
	"cpp":        cLike("//"),
	"csharp":     cLike("//"),
	"java":       cLike("//"),
	"javascript": cLike("//"),
	"go": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"//"},
		BlockComment: cLikeComments,
		String:       []string{"\"", "`", "'"},
	},
	"rust": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"//"},
		BlockComment: cLikeComments,
		String:       []string{"\""},
	},
	"swift":  cLike("//"),
	"kotlin": cLike("//"),
	"scala":  cLike("//"),
	"dart":   cLike("//"),
	"haxe":   cLike("//"),
	"zig":    cLike("//"),
	"typst": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"//"},
		BlockComment: cLikeComments,
		String:       []string{"\""},
	},
	"json": {
		Delimiters: []DelimiterPair{{"[", "]"}, {"{", "}"}},
		String:     []string{"\""},
	},
	"python": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"#"},
		String:      []string{"\"\"\"", "'''", "\"", "'"},
	},
	"ruby": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"#"},
		BlockComment: []SpanPair{{"=begin", "=end"}},
		String:       []string{"\"", "'"},
	},
	"php": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"//", "#"},
		BlockComment: cLikeComments,
		String:       []string{"\"", "'"},
	},
	"perl": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"#"},
		String:      []string{"\"", "'"},
	},
	"shell": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"#"},
		String:      []string{"\"", "'"},
	},
	"r": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"#"},
		String:      []string{"\"", "'"},
	},
	"elixir": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"#"},
		String:      []string{"\"\"\"", "\"", "'"},
	},
	"nix": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"#"},
		BlockComment: cLikeComments,
		String:       []string{"\""},
	},
	"toml": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"#"},
		String:      []string{"\"\"\"", "'''", "\"", "'"},
	},
	"erlang": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"%"},
		String:      []string{"\""},
	},
	"latex": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"%"},
		String:      []string{"\""},
	},
	"lua": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"--"},
		BlockComment: []SpanPair{{"--[[", "]]"}},
		String:       []string{"\"", "'"},
	},
	"haskell": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"--"},
		BlockComment: []SpanPair{{"{-", "-}"}},
		String:       []string{"\""},
	},
	"lean": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"--"},
		BlockComment: []SpanPair{{"/-", "-/"}},
		String:       []string{"\""},
	},
	"sql": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"--"},
		BlockComment: cLikeComments,
		String:       []string{"'", "\""},
	},
	"clojure": {
		Delimiters:  bracketsOnly,
		LineComment: []string{";"},
		String:      []string{"\""},
	},
	"scheme": {
		Delimiters:  bracketsOnly,
		LineComment: []string{";"},
		String:      []string{"\""},
	},
	"fsharp": {
		Delimiters:   bracketsOnly,
		LineComment:  []string{"//"},
		BlockComment: []SpanPair{{"(*", "*)"}},
		String:       []string{"\""},
	},
	"ocaml": {
		Delimiters:   bracketsOnly,
		BlockComment: []SpanPair{{"(*", "*)"}},
		String:       []string{"\""},
	},
	"objc": cLike("//"),
	"markdown": {
		Delimiters:   bracketsOnly,
		BlockComment: []SpanPair{{"<!--", "-->"}},
	},
	"vim": {
		Delimiters:  bracketsOnly,
		LineComment: []string{"\""},
		String:      []string{"'"},
	},
}

func init() {
	for _, alias := range []string{"typescript", "typescriptreact", "javascriptreact"} {
		descriptors[alias] = descriptors["javascript"]
	}
	for _, alias := range []string{"tex", "bib"} {
		descriptors[alias] = descriptors["latex"]
	}
}

// SupportsFiletype reports whether filetype has a registered Descriptor.
func SupportsFiletype(filetype string) bool {
	_, ok := descriptors[filetype]
	return ok
}

func lookupDescriptor(filetype string) (*Descriptor, bool) {
	d, ok := descriptors[filetype]
	return d, ok
}
