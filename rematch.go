package structmatch

// rematchByIndent re-examines a single unmatched opening delimiter at
// (line, col) against the indentation of candidate closers further down
// the buffer. If it finds a later closing of the same token whose line is
// indented like the unmatched opening's line but unlike its own naive
// opener, it demotes that naive opener to unmatched and promotes (line,
// col) plus the found closer to a pair instead — then recurses on the
// newly-demoted opener, since it may itself now be rematchable.
//
// This only ever looks at descendants reachable without crossing a match
// whose stack height is at or below the depth at (line, col) itself, so it
// never reassigns pairs outside the malformed region.
func rematchByIndent(pb *ParsedBuffer, line, col int) {
	m, ok := pb.MatchAt(line, col)
	if !ok || m.Kind != Opening {
		return
	}
	indentLevel := pb.roundedIndentLevel(line)
	tok := m.Token
	height := pb.StackHeightAt(line, col)

	var foundOpen, foundClose MatchWithLine
	found := false

	for _, cand := range pb.iterFrom(line, col+1) {
		if h, ok := cand.StackHeight(); ok {
			if h < height+1 {
				break
			}
		}
		if cand.Token != tok {
			continue
		}
		open, close, pok := pb.MatchPair(cand.Line, cand.Col)
		if !pok {
			continue
		}
		closeIndent := pb.roundedIndentLevel(close.Line)
		openIndent := pb.roundedIndentLevel(open.Line)
		if closeIndent == indentLevel && closeIndent != openIndent {
			foundOpen, foundClose, found = open, close, true
			break
		}
	}

	if !found {
		return
	}

	pb.setHeight(foundOpen.Line, foundOpen.Col, -1)
	pb.setHeight(line, col, height)
	pb.setHeight(foundClose.Line, foundClose.Col, height)

	decrementAfter(pb, foundClose.Line, foundClose.Col, height)

	rematchByIndent(pb, foundOpen.Line, foundOpen.Col)
}

// decrementAfter drops the stack height of every match after (afterLine,
// afterCol) by one, stopping at (and not touching) the first closing match
// already at the target height — the boundary of the region that used to
// sit one level deeper, under the opening rematchByIndent just demoted.
func decrementAfter(pb *ParsedBuffer, afterLine, afterCol, target int) {
	for l := afterLine; l < len(pb.matchesByLine); l++ {
		ms := pb.matchesByLine[l]
		for i := range ms {
			if l == afterLine && ms[i].Col <= afterCol {
				continue
			}
			m := &ms[i]
			if m.Height == target && m.Kind == Closing {
				return
			}
			if m.Height > 0 {
				m.Height--
			}
		}
	}
}

func (pb *ParsedBuffer) setHeight(line, col, height int) {
	if m := pb.matchAtMut(line, col); m != nil {
		m.Height = height
	}
}
