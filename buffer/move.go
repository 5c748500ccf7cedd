package buffer

type Dir int

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
	DirPageUp
	DirPageDown
	DirHome // line start
	DirEnd  // line end
)

func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirPageUp:
		return "pgup"
	case DirPageDown:
		return "pgdown"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Move returns the cursor position reached from p by one step in dir.
//
// page is the number of lines PageUp/PageDown jump. The cursor may rest one
// line past the last row, where typing appends a new row. After the step the
// column is clamped to the length of the target row; the original column is
// not remembered.
func Move(d *Document, p Pos, dir Dir, page int) Pos {
	p = ClampPos(p, d)
	col, line := p.Col, p.Line
	lines := d.Len()
	if page < 0 {
		page = 0
	}

	switch dir {
	case DirUp:
		line = maxInt(line-1, 0)
	case DirDown:
		line = minInt(line+1, lines)
	case DirLeft:
		if col > 0 {
			col--
		} else if line > 0 {
			line--
			col = d.lineLen(line)
		}
	case DirRight:
		if col < d.lineLen(line) {
			col++
		} else if line < lines {
			line++
			col = 0
		}
	case DirPageUp:
		line = maxInt(line-page, 0)
	case DirPageDown:
		line = minInt(line+page, lines)
	case DirHome:
		col = 0
	case DirEnd:
		col = d.lineLen(line)
	}

	return Pos{Col: minInt(col, d.lineLen(line)), Line: line}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
