package render_test

import (
	"math"
	"testing"

	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/render/rendertest"
	"github.com/OpticalFlyer/skyfall/shapes"
)

const epsilon = 1e-9

func approxPoint(a, b shapes.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          render.Color
		r, g, b, a uint32
	}{
		{"white", render.White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"black", render.Black, 0, 0, 0, 0xffff},
		{"half alpha premultiplies", render.Color{1, 0, 0, 0.5}, 0x7fff, 0, 0, 0x7fff},
		{"out of range clamps", render.Color{2, -1, 0, 1}, 0xffff, 0, 0, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestCameraConversions(t *testing.T) {
	cam := render.NewCamera()
	cam.SetPosition(shapes.Pt(-100, 50))

	world := shapes.Pt(120, 10)
	screen := cam.WorldToScreen(world)
	if screen != shapes.Pt(20, 60) {
		t.Errorf("WorldToScreen = %v, want (20, 60)", screen)
	}
	if back := cam.ScreenToWorld(screen); back != world {
		t.Errorf("ScreenToWorld(WorldToScreen(p)) = %v, want %v", back, world)
	}

	g := cam.GeoM()
	x, y := g.Apply(world.X, world.Y)
	if math.Abs(x-20) > epsilon || math.Abs(y-60) > epsilon {
		t.Errorf("GeoM().Apply = (%f, %f), want (20, 60)", x, y)
	}
}

func TestRectangleWorldPositionFollowsParent(t *testing.T) {
	parent := render.NewRectangleShape().WithPosition(shapes.Pt(400, 0))
	child := render.NewRectangleShape().WithPosition(shapes.Pt(0, -74))
	child.SetParent(parent)

	if got := child.WorldPosition(); got != shapes.Pt(400, -74) {
		t.Errorf("WorldPosition = %v, want (400, -74)", got)
	}

	parent.SetPosition(shapes.Pt(10, 10))
	if got := child.WorldPosition(); got != shapes.Pt(10, -64) {
		t.Errorf("WorldPosition after parent move = %v, want (10, -64)", got)
	}
}

func TestRectangleCorners(t *testing.T) {
	r := render.NewRectangleShape().
		WithSize(shapes.Sz(20, 10)).
		WithOrigin(shapes.Pt(10, 5)).
		WithPosition(shapes.Pt(100, 100))

	want := []shapes.Point{{90, 95}, {110, 95}, {110, 105}, {90, 105}}
	got := r.Corners()
	for i := range want {
		if !approxPoint(got[i], want[i]) {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}

	if b := r.Bounds(); b != shapes.R(90, 95, 20, 10) {
		t.Errorf("Bounds = %v, want (90,95 20x10)", b)
	}
}

func TestRectangleRotationAndFlip(t *testing.T) {
	r := render.NewRectangleShape().WithSize(shapes.Sz(10, 2))
	r.SetRotation(90)

	// The far end of the box (10, 0) rotates onto the +y axis.
	g := r.Transform()
	x, y := g.Apply(10, 0)
	if !approxPoint(shapes.Pt(x, y), shapes.Pt(0, 10)) {
		t.Errorf("rotated (10,0) = (%f, %f), want (0, 10)", x, y)
	}

	r.SetRotation(0)
	r.SetFlipH(true)
	g = r.Transform()
	x, y = g.Apply(10, 0)
	if !approxPoint(shapes.Pt(x, y), shapes.Pt(-10, 0)) {
		t.Errorf("flipped (10,0) = (%f, %f), want (-10, 0)", x, y)
	}
}

func TestRectangleDrawFillAndOutline(t *testing.T) {
	fill := render.Color{0.2, 0.4, 0.6, 1}
	r := render.NewRectangleShape().WithSize(shapes.Sz(4, 4)).WithFill(fill)

	rec := rendertest.New(shapes.Sz(800, 600))
	r.Draw(rec)
	if ops := rec.Ops(); len(ops) != 1 || ops[0] != rendertest.OpFillPolygon {
		t.Fatalf("ops = %v, want [fill-polygon]", ops)
	}
	if rec.Calls[0].Color != fill {
		t.Errorf("fill color = %v, want %v", rec.Calls[0].Color, fill)
	}

	rec.Reset()
	r.SetOutline(true)
	r.Draw(rec)
	want := []rendertest.Op{rendertest.OpFillPolygon, rendertest.OpStrokePolygon}
	ops := rec.Ops()
	if len(ops) != len(want) || ops[0] != want[0] || ops[1] != want[1] {
		t.Errorf("ops with outline = %v, want %v", ops, want)
	}
}

func TestTriangulateSquare(t *testing.T) {
	square := []shapes.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	indices, err := render.Triangulate(square, nil)
	if err != nil {
		t.Fatalf("Triangulate() failed: %v", err)
	}
	if len(indices) != 6 {
		t.Fatalf("len(indices) = %d, want 6 (two triangles)", len(indices))
	}
	for _, i := range indices {
		if int(i) >= len(square) {
			t.Errorf("index %d out of range", i)
		}
	}
}

func TestTriangulateRejectsTooFewPoints(t *testing.T) {
	if _, err := render.Triangulate([]shapes.Point{{0, 0}, {1, 1}}, nil); err == nil {
		t.Error("Triangulate() with 2 points should fail")
	}
}

func TestCircleShape(t *testing.T) {
	c := render.NewCircleShape(10).WithPosition(shapes.Pt(50, 50)).WithPointCount(12)

	pts := c.Points()
	if len(pts) != 12 {
		t.Fatalf("len(Points) = %d, want 12", len(pts))
	}
	for i, p := range pts {
		d := math.Hypot(p.X-50, p.Y-50)
		if math.Abs(d-10) > 1e-6 {
			t.Errorf("point %d at distance %f, want 10", i, d)
		}
	}

	if !c.Contains(shapes.Pt(55, 55)) {
		t.Error("Contains(55,55) = false, want true")
	}
	if c.Contains(shapes.Pt(58, 58)) {
		t.Error("Contains(58,58) = true, want false")
	}

	rec := rendertest.New(shapes.Sz(100, 100))
	c.Draw(rec)
	if len(rec.Filter(rendertest.OpFillPolygon)) != 1 {
		t.Errorf("ops = %v, want one fill-polygon", rec.Ops())
	}
}

func TestZeroRadiusCircleDrawsNothing(t *testing.T) {
	rec := rendertest.New(shapes.Sz(100, 100))
	render.NewCircleShape(0).Draw(rec)
	if len(rec.Calls) != 0 {
		t.Errorf("ops = %v, want none", rec.Ops())
	}
}

func TestPolygonShapeBounds(t *testing.T) {
	pts := []shapes.Point{{0, 0}, {30, 0}, {30, 20}, {0, 20}, {10, 5}, {20, 5}, {20, 15}, {10, 15}}
	p, err := render.NewPolygonShape(pts, []int{4}, render.White)
	if err != nil {
		t.Fatalf("NewPolygonShape() failed: %v", err)
	}
	if b := p.Bounds(); b != shapes.R(0, 0, 30, 20) {
		t.Errorf("Bounds = %v, want (0,0 30x20)", b)
	}
	if len(p.Indices())%3 != 0 || len(p.Indices()) == 0 {
		t.Errorf("len(Indices) = %d, want a positive multiple of 3", len(p.Indices()))
	}
}
