package buffer

import "testing"

func TestMove_LeftRightCrossLines(t *testing.T) {
	d := FromLines([]string{"ab", "çd"})

	if got := Move(d, Pos{Col: 0, Line: 0}, DirLeft, 0); got != (Pos{Col: 0, Line: 0}) {
		t.Fatalf("left at origin=%v, want (0,0)", got)
	}
	if got := Move(d, Pos{Col: 0, Line: 0}, DirRight, 0); got != (Pos{Col: 1, Line: 0}) {
		t.Fatalf("right=%v, want (1,0)", got)
	}
	if got := Move(d, Pos{Col: 2, Line: 0}, DirRight, 0); got != (Pos{Col: 0, Line: 1}) {
		t.Fatalf("right at eol=%v, want (0,1)", got)
	}
	if got := Move(d, Pos{Col: 0, Line: 1}, DirLeft, 0); got != (Pos{Col: 2, Line: 0}) {
		t.Fatalf("left at bol=%v, want (2,0)", got)
	}
}

func TestMove_RightReachesLinePastEnd(t *testing.T) {
	d := FromLines([]string{"ab"})

	got := Move(d, Pos{Col: 2, Line: 0}, DirRight, 0)
	if got != (Pos{Col: 0, Line: 1}) {
		t.Fatalf("right at end of last row=%v, want (0,1)", got)
	}
	if again := Move(d, got, DirRight, 0); again != got {
		t.Fatalf("right past end=%v, want %v", again, got)
	}
	if left := Move(d, got, DirLeft, 0); left != (Pos{Col: 2, Line: 0}) {
		t.Fatalf("left from past-end line=%v, want (2,0)", left)
	}
}

func TestMove_UpDownBounds(t *testing.T) {
	d := FromLines([]string{"a", "b"})

	if got := Move(d, Pos{Col: 0, Line: 0}, DirUp, 0); got != (Pos{Col: 0, Line: 0}) {
		t.Fatalf("up at top=%v, want (0,0)", got)
	}
	if got := Move(d, Pos{Col: 1, Line: 1}, DirDown, 0); got != (Pos{Col: 0, Line: 2}) {
		t.Fatalf("down from last row=%v, want (0,2)", got)
	}
	if got := Move(d, Pos{Col: 0, Line: 2}, DirDown, 0); got != (Pos{Col: 0, Line: 2}) {
		t.Fatalf("down past end=%v, want (0,2)", got)
	}
}

func TestMove_VerticalClampIsLossy(t *testing.T) {
	d := FromLines([]string{"hello", "w", "world!"})

	p := Pos{Col: 4, Line: 0}
	p = Move(d, p, DirDown, 0)
	if p != (Pos{Col: 1, Line: 1}) {
		t.Fatalf("down into short row=%v, want (1,1)", p)
	}
	p = Move(d, p, DirUp, 0)
	if p != (Pos{Col: 1, Line: 0}) {
		t.Fatalf("back up=%v, want (1,0)", p)
	}

	p = Move(d, Pos{Col: 4, Line: 0}, DirDown, 0)
	p = Move(d, p, DirDown, 0)
	if p != (Pos{Col: 1, Line: 2}) {
		t.Fatalf("down twice=%v, want (1,2)", p)
	}
}

func TestMove_ColumnSurvivesLongerRow(t *testing.T) {
	d := FromLines([]string{"hello", "worlds"})

	p := Move(d, Pos{Col: 4, Line: 0}, DirDown, 0)
	p = Move(d, p, DirUp, 0)
	if p != (Pos{Col: 4, Line: 0}) {
		t.Fatalf("down/up=%v, want (4,0)", p)
	}
}

func TestMove_PageUpDown(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	d := FromLines(lines)

	cases := []struct {
		from Pos
		dir  Dir
		want Pos
	}{
		{from: Pos{Col: 2, Line: 0}, dir: DirPageDown, want: Pos{Col: 2, Line: 10}},
		{from: Pos{Col: 2, Line: 25}, dir: DirPageDown, want: Pos{Col: 0, Line: 30}},
		{from: Pos{Col: 2, Line: 25}, dir: DirPageUp, want: Pos{Col: 2, Line: 15}},
		{from: Pos{Col: 2, Line: 4}, dir: DirPageUp, want: Pos{Col: 2, Line: 0}},
	}
	for _, tc := range cases {
		if got := Move(d, tc.from, tc.dir, 10); got != tc.want {
			t.Fatalf("%s from %v=%v, want %v", tc.dir, tc.from, got, tc.want)
		}
	}
}

func TestMove_HomeEnd(t *testing.T) {
	d := FromLines([]string{"a" + eAcute + "c"})

	if got := Move(d, Pos{Col: 1, Line: 0}, DirEnd, 0); got != (Pos{Col: 3, Line: 0}) {
		t.Fatalf("end=%v, want (3,0)", got)
	}
	if got := Move(d, Pos{Col: 3, Line: 0}, DirHome, 0); got != (Pos{Col: 0, Line: 0}) {
		t.Fatalf("home=%v, want (0,0)", got)
	}
	if got := Move(d, Pos{Col: 0, Line: 1}, DirEnd, 0); got != (Pos{Col: 0, Line: 1}) {
		t.Fatalf("end past last row=%v, want (0,1)", got)
	}
}

func TestMove_EmptyDocument(t *testing.T) {
	d := New()
	for _, dir := range []Dir{DirLeft, DirRight, DirUp, DirDown, DirPageUp, DirPageDown, DirHome, DirEnd} {
		if got := Move(d, Pos{}, dir, 5); got != (Pos{}) {
			t.Fatalf("%s on empty document=%v, want (0,0)", dir, got)
		}
	}
}

func TestMove_VerticalNeverLeavesColumnPastRow(t *testing.T) {
	d := FromLines([]string{"long line here", "", "mid", "x" + family, "last one"})
	for line := 0; line <= d.Len(); line++ {
		for col := 0; col <= 20; col++ {
			for _, dir := range []Dir{DirUp, DirDown, DirPageUp, DirPageDown} {
				got := Move(d, Pos{Col: col, Line: line}, dir, 2)
				if got.Col > d.lineLen(got.Line) {
					t.Fatalf("%s from (%d,%d)=%v exceeds row length %d", dir, col, line, got, d.lineLen(got.Line))
				}
			}
		}
	}
}

func TestClampPos(t *testing.T) {
	d := FromLines([]string{"abc", "d"})
	cases := []struct {
		in, want Pos
	}{
		{in: Pos{Col: 9, Line: 0}, want: Pos{Col: 3, Line: 0}},
		{in: Pos{Col: -1, Line: -1}, want: Pos{Col: 0, Line: 0}},
		{in: Pos{Col: 5, Line: 9}, want: Pos{Col: 0, Line: 2}},
		{in: Pos{Col: 1, Line: 1}, want: Pos{Col: 1, Line: 1}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, d); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
