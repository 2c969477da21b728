package structmatch

// ReparseRange replaces the lines in [start, oldEnd) with lines, re-seeds
// the tokenizer with the carry-state left by the line before start, and
// re-runs nesting resolution over the whole buffer. newEnd is accepted but
// unused: it names the end of the edited range in the caller's own
// coordinate space before splicing, kept only so callers that already have
// it to hand don't need to compute oldEnd separately; this package derives
// everything it needs from len(lines) and oldEnd.
//
// It reports false if filetype has no registered Descriptor, in which case
// the buffer is left unchanged.
func (pb *ParsedBuffer) ReparseRange(filetype string, tabWidth uint8, lines []string, start, oldEnd, newEnd int) bool {
	desc, ok := lookupDescriptor(filetype)
	if !ok {
		return false
	}

	max := len(pb.matchesByLine)
	if start < 0 {
		start = 0
	}
	if start > max {
		start = max
	}
	if oldEnd < 0 || oldEnd > max {
		oldEnd = max
	}
	if oldEnd < start {
		oldEnd = start
	}

	initial := State{kind: stateNormal}
	if start > 0 {
		initial = pb.stateByLine[start-1]
	}

	newMatches := make([][]Match, 0, len(lines))
	newStates := make([]State, 0, len(lines))
	newIndents := make([]byte, 0, len(lines))

	state := initial
	for _, line := range lines {
		matches, next := tokenizeLine(desc, state, line)
		newMatches = append(newMatches, matches)
		newStates = append(newStates, next)
		newIndents = append(newIndents, clampIndent(indentOf(line, int(tabWidth))))
		state = next
	}

	pb.matchesByLine = spliceMatchLines(pb.matchesByLine, start, oldEnd, newMatches)
	pb.stateByLine = spliceStates(pb.stateByLine, start, oldEnd, newStates)

	indentOldEnd := oldEnd
	if indentOldEnd > len(pb.indentLevels) {
		indentOldEnd = len(pb.indentLevels)
	}
	indentStart := start
	if indentStart > len(pb.indentLevels) {
		indentStart = len(pb.indentLevels)
	}
	pb.indentLevels = spliceIndents(pb.indentLevels, indentStart, indentOldEnd, newIndents)

	pb.tabWidth = tabWidth
	pb.filetype = filetype

	assignStackHeights(pb)
	return true
}

func spliceMatchLines(dst [][]Match, start, end int, repl [][]Match) [][]Match {
	out := make([][]Match, 0, len(dst)-(end-start)+len(repl))
	out = append(out, dst[:start]...)
	out = append(out, repl...)
	out = append(out, dst[end:]...)
	return out
}

func spliceStates(dst []State, start, end int, repl []State) []State {
	out := make([]State, 0, len(dst)-(end-start)+len(repl))
	out = append(out, dst[:start]...)
	out = append(out, repl...)
	out = append(out, dst[end:]...)
	return out
}

func spliceIndents(dst []byte, start, end int, repl []byte) []byte {
	out := make([]byte, 0, len(dst)-(end-start)+len(repl))
	out = append(out, dst[:start]...)
	out = append(out, repl...)
	out = append(out, dst[end:]...)
	return out
}
