package structmatch

// iterFrom returns every match at (line, col) or later, in reading order.
func (pb *ParsedBuffer) iterFrom(line, col int) []MatchWithLine {
	if line < 0 {
		line = 0
	}
	var out []MatchWithLine
	for l := line; l < len(pb.matchesByLine); l++ {
		for _, m := range pb.matchesByLine[l] {
			if l != line || m.Col >= col {
				out = append(out, MatchWithLine{m, l})
			}
		}
	}
	return out
}

// iterTo returns every match strictly before (line, col), in reverse
// reading order (nearest to the cursor first).
func (pb *ParsedBuffer) iterTo(line, col int) []MatchWithLine {
	end := line + 1
	if end > len(pb.matchesByLine) {
		end = len(pb.matchesByLine)
	}
	var out []MatchWithLine
	for l := end - 1; l >= 0; l-- {
		ms := pb.matchesByLine[l]
		for i := len(ms) - 1; i >= 0; i-- {
			m := ms[i]
			if l != line || m.Col < col {
				out = append(out, MatchWithLine{m, l})
			}
		}
	}
	return out
}

// MatchAt returns the match covering col on line, if any.
func (pb *ParsedBuffer) MatchAt(line, col int) (Match, bool) {
	if m := pb.matchAtMut(line, col); m != nil {
		return *m, true
	}
	return Match{}, false
}

// LineMatches returns a copy of every match found on line.
func (pb *ParsedBuffer) LineMatches(line int) ([]Match, bool) {
	if line < 0 || line >= len(pb.matchesByLine) {
		return nil, false
	}
	ms := pb.matchesByLine[line]
	out := make([]Match, len(ms))
	copy(out, ms)
	return out, true
}

// GetIndentLevels returns the expanded indent column of every line in
// [start, end), clamped to the buffer's bounds.
func (pb *ParsedBuffer) GetIndentLevels(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(pb.indentLevels) {
		end = len(pb.indentLevels)
	}
	if start >= end {
		return nil
	}
	out := make([]byte, end-start)
	copy(out, pb.indentLevels[start:end])
	return out
}

func (pb *ParsedBuffer) roundedIndentLevel(line int) byte {
	if line < 0 || line >= len(pb.indentLevels) {
		return 0
	}
	v := pb.indentLevels[line]
	w := pb.tabWidth
	if w == 0 {
		return v
	}
	return (v / w) * w
}

// MatchPair returns the opening and closing Match of the pair containing
// the match at (line, col). An unmatched Delimiter match has no pair.
func (pb *ParsedBuffer) MatchPair(line, col int) (open, close MatchWithLine, ok bool) {
	m, found := pb.MatchAt(line, col)
	if !found {
		return
	}
	if m.Token.Kind == TokenDelimiter && m.Height < 0 {
		return
	}

	switch m.Kind {
	case Opening:
		for _, cand := range pb.iterFrom(line, col+1) {
			if cand.Token == m.Token && cand.Height == m.Height {
				return MatchWithLine{m, line}, cand, true
			}
		}
	case Closing:
		for _, cand := range pb.iterTo(line, col) {
			if cand.Token == m.Token && cand.Height == m.Height {
				return cand, MatchWithLine{m, line}, true
			}
		}
	}
	return
}

// SurroundingMatchPair returns the pair immediately enclosing (line, col):
// the match at the cursor itself if there is one, otherwise the nearest
// preceding opening whose pair extends past the cursor.
func (pb *ParsedBuffer) SurroundingMatchPair(line, col int) (open, close MatchWithLine, ok bool) {
	var before MatchWithLine
	found := false

	if m, mok := pb.MatchAt(line, col); mok {
		before = MatchWithLine{m, line}
		found = true
	} else {
		for _, cand := range pb.iterTo(line, col) {
			if cand.Kind != Opening {
				continue
			}
			_, c, pok := pb.MatchPair(cand.Line, cand.Col)
			if !pok {
				continue
			}
			if c.Line > line || (c.Line == line && c.Col > col) {
				before = cand
				found = true
				break
			}
		}
	}

	if !found {
		return
	}
	return pb.MatchPair(before.Line, before.Col)
}

// SpanAt returns the name of the string or comment span containing
// (line, col), if the cursor sits inside one.
func (pb *ParsedBuffer) SpanAt(line, col int) (string, bool) {
	if line < 0 || line >= len(pb.matchesByLine) {
		return "", false
	}
	ms := pb.matchesByLine[line]
	for i := len(ms) - 1; i >= 0; i-- {
		opening := ms[i]
		if opening.Kind != Opening || opening.Col > col {
			continue
		}
		if opening.Token.Kind != TokenInlineSpan && opening.Token.Kind != TokenBlockSpan {
			continue
		}
		var closing *Match
		for j := range ms {
			c := ms[j]
			if c.Kind == Closing && c.Col > opening.Col && c.Token == opening.Token {
				closing = &ms[j]
				break
			}
		}
		if closing != nil && closing.Col < col {
			continue
		}
		return opening.Token.Name, true
	}

	if name, ok := pb.stateByLine[line].InSpan(); ok {
		return name, true
	}
	return "", false
}

func (pb *ParsedBuffer) stackHeightForward(line, col int) (int, bool) {
	unmatchedOpen := 0
	for _, m := range pb.iterFrom(line, col) {
		if h, ok := m.StackHeight(); ok {
			v := h
			if m.Kind == Closing {
				v++
			}
			v -= unmatchedOpen
			if v < 0 {
				v = 0
			}
			return v, true
		}
		if m.Token.Kind == TokenDelimiter {
			switch m.Kind {
			case Opening:
				unmatchedOpen++
			case Closing:
				if unmatchedOpen > 0 {
					unmatchedOpen--
				}
			}
		}
	}
	return 0, false
}

func (pb *ParsedBuffer) stackHeightBackward(line, col int) (int, bool) {
	unmatchedClose := 0
	for _, m := range pb.iterTo(line, col) {
		if h, ok := m.StackHeight(); ok {
			v := h
			if m.Kind == Opening {
				v++
			}
			v -= unmatchedClose
			if v < 0 {
				v = 0
			}
			return v, true
		}
		if m.Token.Kind == TokenDelimiter {
			switch m.Kind {
			case Closing:
				unmatchedClose++
			case Opening:
				if unmatchedClose > 0 {
					unmatchedClose--
				}
			}
		}
	}
	return 0, false
}

// StackHeightAt returns the nesting depth at (line, col): the depth
// implied by the nearest match with a stack height at or after the cursor
// (adjusted for unmatched delimiters passed on the way), falling back to
// the nearest such match before it, and defaulting to 0 if no match in
// either direction has a stack height.
func (pb *ParsedBuffer) StackHeightAt(line, col int) int {
	if h, ok := pb.stackHeightForward(line, col); ok {
		return h
	}
	if h, ok := pb.stackHeightBackward(line, col); ok {
		return h
	}
	return 0
}

// UnmatchedOpeningBefore searches backward from (line, col) for an
// unmatched opening delimiter of the given open/close pair that sits at
// the cursor's nesting depth, or at the depth of a shallower matched
// opening of the same pair passed on the way. It stops early, finding
// nothing, if it passes any other matched delimiter shallower than that
// depth.
func (pb *ParsedBuffer) UnmatchedOpeningBefore(open, close string, line, col int) (MatchWithLine, bool) {
	cursor := pb.StackHeightAt(line, col)
	lowest := cursor
	current := cursor

	for _, m := range pb.iterTo(line, col) {
		if m.Token.Kind != TokenDelimiter {
			continue
		}
		if h, ok := m.StackHeight(); ok {
			if h < lowest {
				if m.Kind == Opening && m.Token.Open == open && m.Token.Close == close {
					lowest = h
				} else {
					return MatchWithLine{}, false
				}
			}
			current = h
			if m.Kind == Closing {
				current++
			}
		}
		if m.Kind == Opening && m.Token.Open == open && m.Token.Close == close && m.Height < 0 && current == lowest {
			return m, true
		}
	}
	return MatchWithLine{}, false
}

// UnmatchedClosingAfter searches forward from (line, col) for an unmatched
// closing delimiter of the given open/close pair that sits at the cursor's
// nesting depth, or at the depth of a shallower matched closing of the
// same pair passed on the way. It stops early, finding nothing, if it
// passes any other matched delimiter shallower than that depth.
func (pb *ParsedBuffer) UnmatchedClosingAfter(open, close string, line, col int) (MatchWithLine, bool) {
	cursor := pb.StackHeightAt(line, col)
	lowest := cursor
	current := cursor

	for _, m := range pb.iterFrom(line, col) {
		if m.Token.Kind != TokenDelimiter {
			continue
		}
		if h, ok := m.StackHeight(); ok {
			if h < lowest {
				if m.Kind == Closing && m.Token.Open == open && m.Token.Close == close {
					lowest = h
				} else {
					return MatchWithLine{}, false
				}
			}
			current = h
			if m.Kind == Opening {
				current++
			}
		}
		if m.Kind == Closing && m.Token.Open == open && m.Token.Close == close && m.Height < 0 && current == lowest {
			return m, true
		}
	}
	return MatchWithLine{}, false
}
