package structmatch

import (
	"fmt"
	"io"
)

// Format writes a type string representing the receiver kind.
func (k TokenKind) Format(f fmt.State, _ rune) {
	switch k {
	case TokenDelimiter:
		io.WriteString(f, "Delimiter")
	case TokenInlineSpan:
		io.WriteString(f, "InlineSpan")
	case TokenBlockSpan:
		io.WriteString(f, "BlockSpan")
	case TokenLineComment:
		io.WriteString(f, "LineComment")
	default:
		fmt.Fprintf(f, "InvalidTokenKind%v", int(k))
	}
}

// Format writes a type string representing the receiver kind.
func (k MatchKind) Format(f fmt.State, _ rune) {
	switch k {
	case Opening:
		io.WriteString(f, "Opening")
	case Closing:
		io.WriteString(f, "Closing")
	case NonPair:
		io.WriteString(f, "NonPair")
	default:
		fmt.Fprintf(f, "InvalidMatchKind%v", int(k))
	}
}

// Format writes a textual representation of the receiver, providing
// improved fmt.Printf display. Produces a verbose "Kind open=..
// close=.." form when formatted with "%+v", a terse "open..close" form
// otherwise (just the name, for a named span).
func (t Token) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		fmt.Fprintf(f, "%+v open=%q close=%q", t.Kind, t.Open, t.Close)
		if t.Name != "" {
			fmt.Fprintf(f, " name=%v", t.Name)
		}
		return
	}
	if t.Name != "" {
		fmt.Fprintf(f, "%v", t.Name)
		return
	}
	fmt.Fprintf(f, "%v..%v", t.Open, t.Close)
}

// Format writes a textual representation of the receiver, providing
// improved fmt.Printf display: "@col Kind token" normally, with stack
// height appended when formatted with "%+v".
func (m Match) Format(f fmt.State, _ rune) {
	fmt.Fprintf(f, "@%v %+v %v", m.Col, m.Kind, m.Token)
	if f.Flag('+') {
		if h, ok := m.StackHeight(); ok {
			fmt.Fprintf(f, " height=%v", h)
		} else {
			io.WriteString(f, " height=none")
		}
	}
}

// Format writes a textual representation of the receiver's matches as one
// line per buffer line, in the style of scandown.BlockStack.Format.
func (pb *ParsedBuffer) Format(f fmt.State, _ rune) {
	if pb == nil || len(pb.matchesByLine) == 0 {
		io.WriteString(f, "-- empty --")
		return
	}
	for i, ms := range pb.matchesByLine {
		if i > 0 {
			io.WriteString(f, "\n")
		}
		fmt.Fprintf(f, "%v:", i)
		for _, m := range ms {
			if f.Flag('+') {
				fmt.Fprintf(f, " <%+v>", m)
			} else {
				fmt.Fprintf(f, " %v", m)
			}
		}
	}
}
