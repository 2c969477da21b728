package structmatch

// TokenKind distinguishes the four kinds of lexical item tokenizeLine can
// produce on a line.
type TokenKind int

const (
	// TokenDelimiter is a single bracket-like character: one of the
	// open/close pairs declared in a Descriptor's Delimiters list.
	TokenDelimiter TokenKind = iota
	// TokenInlineSpan is a span that must open and close on the same line
	// (a string literal, in every descriptor in this package).
	TokenInlineSpan
	// TokenBlockSpan is a span that may carry open across line boundaries
	// (a block comment, in every descriptor in this package).
	TokenBlockSpan
	// TokenLineComment marks the rest of the line as a non-pairing comment.
	TokenLineComment
)

// Token identifies what was matched: its kind, the lexeme(s) that open and
// close it, and — for spans — a name describing what kind of span it is
// ("string" or "comment"). Two tokens compare equal with == when they
// represent the same declared delimiter or span, which is how matching
// looks up a closer for a given opener.
type Token struct {
	Kind  TokenKind
	Name  string
	Open  string
	Close string
}

// MatchKind says whether a Match opens, closes, or never pairs at all.
type MatchKind int

const (
	// Opening is an opening delimiter or span marker.
	Opening MatchKind = iota
	// Closing is a closing delimiter or span marker.
	Closing
	// NonPair is a line comment marker: it never participates in nesting.
	NonPair
)

// Match is one lexical item found on a line: a delimiter, a span opener or
// closer, or a line comment marker. Height is the nesting depth assigned by
// the stack-height pass, or -1 if the match is unmatched (for a NonPair
// match, Height is always -1 and carries no meaning).
type Match struct {
	Token  Token
	Kind   MatchKind
	Col    int
	Length int
	Height int
}

// StackHeight reports the nesting depth assigned to m, if any.
func (m Match) StackHeight() (int, bool) {
	if m.Height < 0 {
		return 0, false
	}
	return m.Height, true
}

// MatchWithLine pairs a Match with the line it was found on, the shape
// returned by every query that searches across lines.
type MatchWithLine struct {
	Match
	Line int
}

// stateKind is the carry-state a line leaves for the next one.
type stateKind int

const (
	stateNormal stateKind = iota
	stateInInlineSpan
	stateInBlockSpan
)

// State is the carry-state threaded between tokenizeLine calls: either
// Normal, or inside a span (identified by its name and its open/close
// marks, needed to find the matching closer on a later line).
type State struct {
	kind  stateKind
	Name  string
	Open  string
	Close string
}

// InSpan reports whether the state is inside a span, and if so its name.
func (s State) InSpan() (string, bool) {
	if s.kind == stateNormal {
		return "", false
	}
	return s.Name, true
}
