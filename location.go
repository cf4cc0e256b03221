// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%s-%d", loc.First, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// lineColAt reports the line and column of offset pos in src.
func lineColAt(src mem.RO, pos int) LineCol {
	pos = min(pos, src.Len())
	lc := LineCol{Line: 1}
	for {
		i := mem.IndexByte(src.SliceTo(pos), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		src = src.SliceFrom(i + 1)
		pos -= i + 1
	}
	lc.Column = pos
	return lc
}

func locationOf(src mem.RO, span Span) Location {
	return Location{
		Span:  span,
		First: lineColAt(src, span.Pos),
		Last:  lineColAt(src, span.End),
	}
}
