package structmatch

import "strings"

// candKind identifies which descriptor list a candidate mark came from.
type candKind int

const (
	candDelimOpen candKind = iota
	candDelimClose
	candLineComment
	candBlockComment
	candString
)

// candidate is a possible next lexical item found at or after some column;
// earliestCandidate picks the winner among several.
type candidate struct {
	kind      candKind
	col       int
	mark      string
	closeMark string // set for delimiter/span openers and string quotes
	openMark  string // set for delimiter closers, the matching opener text
	order     int    // descriptor declaration order, used to break exact ties
}

func indexFrom(line string, pos int, mark string) int {
	if pos >= len(line) || mark == "" {
		return -1
	}
	if i := strings.Index(line[pos:], mark); i >= 0 {
		return pos + i
	}
	return -1
}

// earliestCandidate scans every mark a Descriptor declares and returns the
// one that starts earliest at or after pos. Ties are broken first by
// longer lexeme, then by the descriptor's declaration order (delimiters,
// then line comments, then block comments, then strings, each in list
// order) — this is rule 3 of the tokenizer.
func earliestCandidate(desc *Descriptor, line string, pos int) (candidate, bool) {
	var best candidate
	found := false
	consider := func(c candidate) {
		if !found {
			best, found = c, true
			return
		}
		switch {
		case c.col < best.col:
			best = c
		case c.col == best.col && len(c.mark) > len(best.mark):
			best = c
		case c.col == best.col && len(c.mark) == len(best.mark) && c.order < best.order:
			best = c
		}
	}

	order := 0
	for _, d := range desc.Delimiters {
		if idx := indexFrom(line, pos, d.Open); idx >= 0 {
			consider(candidate{kind: candDelimOpen, col: idx, mark: d.Open, closeMark: d.Close, order: order})
		}
		order++
	}
	for _, d := range desc.Delimiters {
		if idx := indexFrom(line, pos, d.Close); idx >= 0 {
			consider(candidate{kind: candDelimClose, col: idx, mark: d.Close, openMark: d.Open, order: order})
		}
		order++
	}
	for _, m := range desc.LineComment {
		if idx := indexFrom(line, pos, m); idx >= 0 {
			consider(candidate{kind: candLineComment, col: idx, mark: m, order: order})
		}
		order++
	}
	for _, b := range desc.BlockComment {
		if idx := indexFrom(line, pos, b.Open); idx >= 0 {
			consider(candidate{kind: candBlockComment, col: idx, mark: b.Open, closeMark: b.Close, order: order})
		}
		order++
	}
	for _, s := range desc.String {
		if idx := indexFrom(line, pos, s); idx >= 0 {
			consider(candidate{kind: candString, col: idx, mark: s, closeMark: s, order: order})
		}
		order++
	}

	return best, found
}

// tokenizeLine scans one line under carry, the state left by the previous
// line, and returns the matches found plus the state to carry into the
// next line.
//
// Rule 1: a line that begins inside a block span searches for that span's
// closer before doing anything else; if found, scanning resumes in Normal
// mode right after it, otherwise the whole line stays inside the span.
//
// Rule 2: an inline span must close on the same line it opens; if no
// closer is found before end of line, the span is abandoned (no closing
// match is emitted) and the carry state reverts to Normal.
//
// Rule 3: in Normal mode, the earliest of a line-comment marker, a string
// opener, a block-comment opener, a delimiter opener, or a delimiter
// closer wins; see earliestCandidate for the tie-break.
//
// Rule 4: a line-comment marker consumes the rest of the line as a single
// NonPair match.
//
// Rule 5: a span opener emits an Opening match and switches scanning into
// that span (rules 1/2 above) from the very next byte.
func tokenizeLine(desc *Descriptor, carry State, line string) ([]Match, State) {
	var matches []Match
	pos := 0
	n := len(line)
	cur := carry

	for pos < n {
		if cur.kind != stateNormal {
			idx := indexFrom(line, pos, cur.Close)
			if idx < 0 {
				if cur.kind == stateInBlockSpan {
					return matches, cur
				}
				return matches, State{kind: stateNormal}
			}
			matches = append(matches, Match{
				Token:  Token{Kind: spanTokenKind(cur.kind), Name: cur.Name, Open: cur.Open, Close: cur.Close},
				Kind:   Closing,
				Col:    idx,
				Length: len(cur.Close),
				Height: -1,
			})
			pos = idx + len(cur.Close)
			cur = State{kind: stateNormal}
			continue
		}

		cand, ok := earliestCandidate(desc, line, pos)
		if !ok {
			break
		}

		switch cand.kind {
		case candLineComment:
			matches = append(matches, Match{
				Token:  Token{Kind: TokenLineComment, Open: cand.mark},
				Kind:   NonPair,
				Col:    cand.col,
				Length: n - cand.col,
				Height: -1,
			})
			pos = n

		case candString, candBlockComment:
			name := "string"
			kind := stateInInlineSpan
			if cand.kind == candBlockComment {
				name = "comment"
				kind = stateInBlockSpan
			}
			matches = append(matches, Match{
				Token:  Token{Kind: spanTokenKind(kind), Name: name, Open: cand.mark, Close: cand.closeMark},
				Kind:   Opening,
				Col:    cand.col,
				Length: len(cand.mark),
				Height: -1,
			})
			pos = cand.col + len(cand.mark)
			cur = State{kind: kind, Name: name, Open: cand.mark, Close: cand.closeMark}

		case candDelimOpen:
			matches = append(matches, Match{
				Token:  Token{Kind: TokenDelimiter, Open: cand.mark, Close: cand.closeMark},
				Kind:   Opening,
				Col:    cand.col,
				Length: len(cand.mark),
				Height: -1,
			})
			pos = cand.col + len(cand.mark)

		case candDelimClose:
			matches = append(matches, Match{
				Token:  Token{Kind: TokenDelimiter, Open: cand.openMark, Close: cand.mark},
				Kind:   Closing,
				Col:    cand.col,
				Length: len(cand.mark),
				Height: -1,
			})
			pos = cand.col + len(cand.mark)
		}
	}

	if cur.kind == stateInInlineSpan {
		return matches, State{kind: stateNormal}
	}
	return matches, cur
}

func spanTokenKind(k stateKind) TokenKind {
	if k == stateInBlockSpan {
		return TokenBlockSpan
	}
	return TokenInlineSpan
}
