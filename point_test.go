package ppht

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("Add = %v, want (4, -2)", got)
	}
	if got := p.Sub(q); got != Pt(2, -6) {
		t.Errorf("Sub = %v, want (2, -6)", got)
	}
	if got := p.Mul(q); got != Pt(3, -8) {
		t.Errorf("Mul = %v, want (3, -8)", got)
	}
	if got := Pt(6, -8).Div(Pt(2, 4)); got != Pt(3, -2) {
		t.Errorf("Div = %v, want (3, -2)", got)
	}
	if got := p.Scale(2); got != Pt(6, -8) {
		t.Errorf("Scale = %v, want (6, -8)", got)
	}
	if got := Pt(6, -8).Shrink(2); got != Pt(3, -4) {
		t.Errorf("Shrink = %v, want (3, -4)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %d, want -5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %d, want 25", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %g, want 5", got)
	}
}

func TestPointOrder(t *testing.T) {
	cases := []struct {
		p, q Point
		less bool
	}{
		{Pt(0, 0), Pt(0, 0), false},
		{Pt(0, 1), Pt(1, 0), true},
		{Pt(1, 0), Pt(0, 1), false},
		{Pt(2, 3), Pt(2, 4), true},
		{Pt(2, 4), Pt(2, 3), false},
	}

	for _, c := range cases {
		if got := c.p.Less(c.q); got != c.less {
			t.Errorf("%v.Less(%v) = %v, want %v", c.p, c.q, got, c.less)
		}
	}
}

func TestSegmentEqual(t *testing.T) {
	s := Seg(Pt(1, 2), Pt(3, 4))

	if !s.Equal(Seg(Pt(1, 2), Pt(3, 4))) {
		t.Error("segment not equal to itself")
	}
	if !s.Equal(Seg(Pt(3, 4), Pt(1, 2))) {
		t.Error("segment equality must ignore endpoint order")
	}
	if s.Equal(Seg(Pt(1, 2), Pt(3, 5))) {
		t.Error("distinct segments compare equal")
	}
}

func TestAxisHelpers(t *testing.T) {
	p := Pt(7, 9)

	if comp(p, axisX) != 7 || comp(p, axisY) != 9 {
		t.Fatalf("comp mismatch on %v", p)
	}
	if axisX.other() != axisY || axisY.other() != axisX {
		t.Fatal("axis.other is not an involution")
	}

	addComp(&p, axisX, -2)
	addComp(&p, axisY, +2)
	if p != Pt(5, 11) {
		t.Errorf("addComp = %v, want (5, 11)", p)
	}

	setComp(&p, axisY, 0)
	if p != Pt(5, 0) {
		t.Errorf("setComp = %v, want (5, 0)", p)
	}
}
