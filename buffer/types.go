package buffer

// Pos points into the document by (col, line) in grapheme clusters.
// Col and Line are 0-based. Line may equal Document.Len(), the position where
// a new line would be appended.
type Pos struct {
	Col  int
	Line int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into the editable area of d.
//
// The returned Pos always satisfies:
// - 0 <= Line <= d.Len()
// - 0 <= Col <= length of the row at Line (0 past the last row)
func ClampPos(p Pos, d *Document) Pos {
	lines := 0
	if d != nil {
		lines = d.Len()
	}
	line := clampInt(p.Line, 0, lines)
	return Pos{Col: clampInt(p.Col, 0, d.lineLen(line)), Line: line}
}
