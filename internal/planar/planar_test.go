package planar

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxPt(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestDistanceAndAngle(t *testing.T) {
	a, b := Pt(1, 1), Pt(4, 5)
	if d := Distance(a, b); math.Abs(d-5) > eps {
		t.Errorf("Distance = %v, want 5", d)
	}
	if got := Angle(Pt(0, 0), Pt(0, 2)); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Angle = %v, want π/2", got)
	}
	if got := Angle(Pt(0, 0), Pt(-1, 0)); math.Abs(got-math.Pi) > eps {
		t.Errorf("Angle = %v, want π", got)
	}
}

func TestRotateAbout(t *testing.T) {
	got := RotateAbout(Pt(2, 1), Pt(1, 1), math.Pi/2)
	if !approxPt(got, Pt(1, 2), eps) {
		t.Errorf("RotateAbout = %v, want (1,2)", got)
	}
	got = RotateAbout(Pt(5, 5), Pt(5, 5), 1.3)
	if !approxPt(got, Pt(5, 5), eps) {
		t.Errorf("rotating the centre moved it: %v", got)
	}
}

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           Point
		ok             bool
	}{
		{"crossing", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0), Pt(1, 1), true},
		{"beyond segments", Pt(0, 0), Pt(1, 0), Pt(5, 1), Pt(5, 2), Pt(5, 0), true},
		{"parallel", Pt(0, 0), Pt(1, 1), Pt(0, 1), Pt(1, 2), Point{}, false},
		{"collinear", Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineIntersection(tt.p1, tt.p2, tt.p3, tt.p4)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !approxPt(got, tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleIntersectionNoSolution(t *testing.T) {
	tests := []struct {
		name string
		c1   Point
		r1   float64
		c2   Point
		r2   float64
	}{
		{"identical centres", Pt(3, 3), 5, Pt(3, 3), 5},
		{"concentric different radii", Pt(0, 0), 5, Pt(0, 0), 2},
		{"contained", Pt(0, 0), 10, Pt(1, 0), 2},
		{"too far apart", Pt(0, 0), 1, Pt(5, 0), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := CircleIntersection(tt.c1, tt.r1, tt.c2, tt.r2); ok {
				t.Error("expected no intersection")
			}
		})
	}
}

func TestCircleIntersectionTangent(t *testing.T) {
	pts, ok := CircleIntersection(Pt(0, 0), 1, Pt(2, 0), 1)
	if !ok {
		t.Fatal("externally tangent circles should intersect")
	}
	for i, p := range pts {
		if !approxPt(p, Pt(1, 0), 1e-9) {
			t.Errorf("pts[%d] = %v, want (1,0)", i, p)
		}
	}
}

func TestCircleIntersectionTwoPoints(t *testing.T) {
	c1, c2 := Pt(0, 0), Pt(6, 0)
	pts, ok := CircleIntersection(c1, 5, c2, 5)
	if !ok {
		t.Fatal("expected intersection")
	}
	// Left of the directed line c1→c2 first.
	if !approxPt(pts[0], Pt(3, 4), 1e-9) || !approxPt(pts[1], Pt(3, -4), 1e-9) {
		t.Errorf("got %v", pts)
	}
	for _, p := range pts {
		if math.Abs(Distance(p, c1)-5) > 1e-9 || math.Abs(Distance(p, c2)-5) > 1e-9 {
			t.Errorf("%v is not on both circles", p)
		}
	}

	// Swapping the circles swaps the order.
	swapped, _ := CircleIntersection(c2, 5, c1, 5)
	if !approxPt(swapped[0], pts[1], 1e-9) {
		t.Errorf("swapped[0] = %v, want %v", swapped[0], pts[1])
	}
}

func TestSprocketRadius(t *testing.T) {
	got := SprocketRadius(32)
	want := 32 * 12.7 / (2 * math.Pi)
	if math.Abs(got-want) > eps {
		t.Errorf("SprocketRadius(32) = %v, want %v", got, want)
	}
	if SprocketRadius(0) != 0 {
		t.Error("zero teeth should have zero radius")
	}
}

func TestChainLength(t *testing.T) {
	// Equal radii: two spans plus one full circumference.
	got := ChainLength(Pt(0, 0), Pt(400, 0), 50, 50)
	want := 800 + 2*math.Pi*50
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("equal radii: got %v, want %v", got, want)
	}

	// Unequal radii grows with distance.
	near := ChainLength(Pt(0, 0), Pt(400, 0), 64, 40)
	far := ChainLength(Pt(0, 0), Pt(410, 0), 64, 40)
	if far <= near {
		t.Errorf("chain should lengthen with centre distance: %v <= %v", far, near)
	}

	// Nested circles degrade to the centre distance.
	if got := ChainLength(Pt(0, 0), Pt(3, 4), 20, 5); got != 5 {
		t.Errorf("nested: got %v, want 5", got)
	}
}

func TestTangentPoints(t *testing.T) {
	tests := []struct {
		name string
		c1   Point
		r1   float64
		c2   Point
		r2   float64
	}{
		{"equal radii", Pt(0, 0), 10, Pt(100, 0), 10},
		{"chainring to cog", Pt(0, 330), 64.7, Pt(-430, 375), 48.5},
		{"cog to chainring", Pt(-430, 375), 48.5, Pt(0, 330), 64.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t1, t2 := TangentPoints(tt.c1, tt.r1, tt.c2, tt.r2)
			if math.Abs(Distance(t1, tt.c1)-tt.r1) > 1e-9 || math.Abs(Distance(t2, tt.c2)-tt.r2) > 1e-9 {
				t.Fatalf("tangent points not on circles: %v %v", t1, t2)
			}
			// The radius to each touch point is perpendicular to the tangent line.
			line := t2.Sub(t1)
			for _, pair := range [][2]Point{{t1, tt.c1}, {t2, tt.c2}} {
				r := pair[0].Sub(pair[1])
				if dot := r.X*line.X + r.Y*line.Y; math.Abs(dot) > 1e-6 {
					t.Errorf("radius not perpendicular to tangent: dot=%v", dot)
				}
			}
			// Upper tangent: touch points sit above their centres.
			if t1.Y < tt.c1.Y || t2.Y < tt.c2.Y {
				t.Errorf("expected the upper tangent, got %v %v", t1, t2)
			}
		})
	}
	if tp, _ := TangentPoints(Pt(0, 0), 1, Pt(0, 0), 1); tp.Y != 1 {
		t.Error("coincident centres should resolve to the top of the circle")
	}
}

func TestTangentPointsClampsOverlap(t *testing.T) {
	// Radius difference larger than the centre distance: asin argument > 1.
	t1, t2 := TangentPoints(Pt(0, 0), 50, Pt(5, 0), 5)
	if !t1.IsFinite() || !t2.IsFinite() {
		t.Errorf("expected finite points, got %v %v", t1, t2)
	}
}

func TestTransformByReferenceLine(t *testing.T) {
	p0, a0 := Pt(0, 0), Pt(10, 0)
	i0 := Pt(5, 2)

	// Pure translation.
	got := TransformByReferenceLine(p0, a0, i0, Pt(1, 1), Pt(11, 1))
	if !approxPt(got, Pt(6, 3), 1e-9) {
		t.Errorf("translation: got %v", got)
	}

	// Quarter turn, and a longer segment does not scale the offset.
	got = TransformByReferenceLine(p0, a0, i0, Pt(0, 0), Pt(0, 30))
	if !approxPt(got, Pt(-2, 5), 1e-9) {
		t.Errorf("rotation: got %v", got)
	}
}

func TestClampedInverseTrig(t *testing.T) {
	if Asin(2) != math.Pi/2 || Asin(-3) != -math.Pi/2 {
		t.Error("Asin should clamp")
	}
	if Acos(1.5) != 0 || Acos(-1.5) != math.Pi {
		t.Error("Acos should clamp")
	}
	if Asin(math.NaN()) != 0 {
		t.Error("Asin(NaN) should be 0")
	}
}

func TestLineHelpers(t *testing.T) {
	if d := PointLineDistance(Pt(0, 3), Pt(-1, 0), Pt(1, 0)); math.Abs(d-3) > eps {
		t.Errorf("PointLineDistance = %v, want 3", d)
	}
	if d := PointLineDistance(Pt(0, -3), Pt(-1, 0), Pt(1, 0)); math.Abs(d+3) > eps {
		t.Errorf("PointLineDistance = %v, want -3", d)
	}
	y, ok := YAtX(Pt(0, 0), Pt(2, 4), 3)
	if !ok || math.Abs(y-6) > eps {
		t.Errorf("YAtX = %v,%v", y, ok)
	}
	if _, ok := YAtX(Pt(1, 0), Pt(1, 5), 2); ok {
		t.Error("vertical line should not report a y")
	}
}
