package structmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/structmatch"
)

func TestParse_unsupportedFiletype(t *testing.T) {
	_, ok := structmatch.Parse("cobol", 4, []string{"x"})
	assert.False(t, ok)
}

func TestParse_lineCount(t *testing.T) {
	buf, ok := structmatch.Parse("go", 4, []string{"package main", "", "func main() {}"})
	assert.True(t, ok)
	assert.Equal(t, 3, buf.LineCount())
	assert.Equal(t, "go", buf.Filetype())
}

// S1/S2/S3 from the concrete scenarios: single-line delimiter buffers and
// the unmatched opening/closing queries over them.
func TestScenarios_singleLine(t *testing.T) {
	t.Run("S1", func(t *testing.T) {
		buf, ok := structmatch.Parse("rust", 4, []string{"("})
		assert.True(t, ok)

		ms, mok := buf.LineMatches(0)
		assert.True(t, mok)
		if assert.Len(t, ms, 1) {
			assert.Equal(t, structmatch.Opening, ms[0].Kind)
			_, matched := ms[0].StackHeight()
			assert.False(t, matched)
		}

		m, found := buf.UnmatchedOpeningBefore("(", ")", 0, 1)
		if assert.True(t, found) {
			assert.Equal(t, 0, m.Col)
		}
		_, found = buf.UnmatchedOpeningBefore("(", ")", 0, 0)
		assert.False(t, found)
	})

	t.Run("S2", func(t *testing.T) {
		buf, ok := structmatch.Parse("rust", 4, []string{")"})
		assert.True(t, ok)

		m, found := buf.UnmatchedClosingAfter("(", ")", 0, 0)
		if assert.True(t, found) {
			assert.Equal(t, 0, m.Col)
		}
		_, found = buf.UnmatchedClosingAfter("(", ")", 0, 1)
		assert.False(t, found)
	})

	t.Run("S3", func(t *testing.T) {
		buf, ok := structmatch.Parse("rust", 4, []string{"( ] )"})
		assert.True(t, ok)

		m, found := buf.UnmatchedClosingAfter("[", "]", 0, 1)
		if assert.True(t, found) {
			assert.Equal(t, 2, m.Col)
		}
		_, found = buf.UnmatchedClosingAfter("[", "]", 0, 0)
		assert.False(t, found, "the enclosing ( is a different delimiter, so no [ ] closer helps at the cursor")
	})
}

func height(m structmatch.Match) interface{} {
	if h, ok := m.StackHeight(); ok {
		return h
	}
	return nil
}

// S4/S5/S6 exercise the indent rematcher directly.
func TestScenarios_indentRematch(t *testing.T) {
	t.Run("S4_outer_pair_promoted", func(t *testing.T) {
		buf, ok := structmatch.Parse("rust", 4, []string{"{", "\t{", "\t", "}"})
		assert.True(t, ok)

		l0, _ := buf.LineMatches(0)
		l1, _ := buf.LineMatches(1)
		l2, _ := buf.LineMatches(2)
		l3, _ := buf.LineMatches(3)

		assert.Equal(t, 0, height(l0[0]))
		assert.Nil(t, height(l1[0]))
		assert.Empty(t, l2)
		assert.Equal(t, 0, height(l3[0]))
	})

	t.Run("S5_inner_pair_preserved", func(t *testing.T) {
		buf, ok := structmatch.Parse("rust", 4, []string{"{", "\t{", "\t}"})
		assert.True(t, ok)

		l0, _ := buf.LineMatches(0)
		l1, _ := buf.LineMatches(1)
		l2, _ := buf.LineMatches(2)

		assert.Nil(t, height(l0[0]))
		assert.Equal(t, 1, height(l1[0]))
		assert.Equal(t, 1, height(l2[0]))
	})

	t.Run("S6_three_levels", func(t *testing.T) {
		buf, ok := structmatch.Parse("rust", 4, []string{
			"{", "\t{", "\t\t{", "\t\t}", "\t{", "}",
		})
		assert.True(t, ok)

		l0, _ := buf.LineMatches(0)
		l1, _ := buf.LineMatches(1)
		l2, _ := buf.LineMatches(2)
		l3, _ := buf.LineMatches(3)
		l4, _ := buf.LineMatches(4)
		l5, _ := buf.LineMatches(5)

		assert.Equal(t, 0, height(l0[0]))
		assert.Equal(t, 0, height(l5[0]))
		assert.Equal(t, 2, height(l2[0]))
		assert.Equal(t, 2, height(l3[0]))
		assert.Nil(t, height(l1[0]))
		assert.Nil(t, height(l4[0]))
	})
}

func TestMatchPair_selfInverse(t *testing.T) {
	buf, ok := structmatch.Parse("go", 4, []string{"func f(a, b) { return a + b }"})
	assert.True(t, ok)

	open, close, found := buf.MatchPair(0, 6)
	assert.True(t, found)

	open2, close2, found2 := buf.MatchPair(close.Line, close.Col)
	assert.True(t, found2)
	assert.Equal(t, open, open2)
	assert.Equal(t, close, close2)
}

func TestSpanAt(t *testing.T) {
	buf, ok := structmatch.Parse("go", 4, []string{`s := "hello"`})
	assert.True(t, ok)

	name, found := buf.SpanAt(0, 8)
	assert.True(t, found)
	assert.Equal(t, "string", name)

	_, found = buf.SpanAt(0, 0)
	assert.False(t, found)
}

func TestSpanAt_blockCommentCarriesAcrossLines(t *testing.T) {
	buf, ok := structmatch.Parse("go", 4, []string{"/* start", "middle", "end */"})
	assert.True(t, ok)

	name, found := buf.SpanAt(1, 2)
	assert.True(t, found)
	assert.Equal(t, "comment", name)
}

func TestReparseRange_matchesFreshParse(t *testing.T) {
	lines := []string{"func f() {", "\treturn 1", "}"}
	fresh, ok := structmatch.Parse("go", 4, lines)
	assert.True(t, ok)

	buf, ok := structmatch.Parse("go", 4, []string{"func f() {", "\treturn 0", "}"})
	assert.True(t, ok)

	changed := buf.ReparseRange("go", 4, []string{"\treturn 1"}, 1, 2, 2)
	assert.True(t, changed)

	for i := 0; i < fresh.LineCount(); i++ {
		want, _ := fresh.LineMatches(i)
		got, _ := buf.LineMatches(i)
		assert.Equal(t, want, got, "line %d", i)
	}
}

func TestUnmatchedOpeningBefore_stopsAtEnclosingDelimiter(t *testing.T) {
	buf, ok := structmatch.Parse("rust", 4, []string{"( ] )"})
	assert.True(t, ok)
	_, found := buf.UnmatchedOpeningBefore("[", "]", 0, 3)
	assert.False(t, found)
}

func TestSupportsFiletype(t *testing.T) {
	assert.True(t, structmatch.SupportsFiletype("typescript"))
	assert.True(t, structmatch.SupportsFiletype("bib"))
	assert.False(t, structmatch.SupportsFiletype("brainfuck"))
}
