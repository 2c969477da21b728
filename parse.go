package structmatch

// ParsedBuffer is the result of tokenizing and nesting-resolving a whole
// buffer. It owns all of its data: no field aliases the lines slice passed
// to Parse, and no method call blocks on I/O.
type ParsedBuffer struct {
	matchesByLine [][]Match
	stateByLine   []State
	indentLevels  []byte
	tabWidth      uint8
	filetype      string
}

// Parse tokenizes every line under filetype's Descriptor, expanding tabs to
// tabWidth columns, then resolves nesting across the whole buffer. It
// reports false if filetype has no registered Descriptor.
func Parse(filetype string, tabWidth uint8, lines []string) (*ParsedBuffer, bool) {
	desc, ok := lookupDescriptor(filetype)
	if !ok {
		return nil, false
	}

	pb := &ParsedBuffer{
		tabWidth: tabWidth,
		filetype: filetype,
	}

	state := State{kind: stateNormal}
	for _, line := range lines {
		matches, next := tokenizeLine(desc, state, line)
		pb.matchesByLine = append(pb.matchesByLine, matches)
		pb.stateByLine = append(pb.stateByLine, next)
		pb.indentLevels = append(pb.indentLevels, clampIndent(indentOf(line, int(tabWidth))))
		state = next
	}

	assignStackHeights(pb)
	return pb, true
}

// Filetype returns the file type the buffer was parsed under.
func (pb *ParsedBuffer) Filetype() string { return pb.filetype }

// LineCount returns the number of lines in the buffer.
func (pb *ParsedBuffer) LineCount() int { return len(pb.matchesByLine) }
