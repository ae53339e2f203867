package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/skyfall/shapes"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var _ Target = (*Window)(nil)
var _ Context = (*Window)(nil)

// Window wraps the Ebitengine screen for one frame. Begin must be called at
// the top of every Draw with the screen image Ebitengine passes in.
type Window struct {
	screen *ebiten.Image
	fonts  *Fonts
	camera *Camera
	geoM   ebiten.GeoM

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewWindow creates a window drawing world objects through camera. A nil
// camera draws everything untransformed.
func NewWindow(fonts *Fonts, camera *Camera) *Window {
	return &Window{
		fonts:  fonts,
		camera: camera,
	}
}

// Begin targets the screen image for the current frame.
func (w *Window) Begin(screen *ebiten.Image) {
	w.screen = screen
	w.geoM.Reset()
}

// Clear fills the whole frame with clr.
func (w *Window) Clear(clr color.Color) {
	w.screen.Fill(clr)
}

// Draw draws d in world space, through the camera.
func (w *Window) Draw(d Drawable) {
	w.geoM.Reset()
	if w.camera != nil {
		w.geoM = w.camera.GeoM()
	}
	d.Draw(w)
}

// DrawOverlay draws d in screen space, ignoring the camera.
func (w *Window) DrawOverlay(d Drawable) {
	w.geoM.Reset()
	d.Draw(w)
}

// Size returns the current frame size.
func (w *Window) Size() shapes.Size {
	if w.screen == nil {
		return shapes.Size{}
	}
	b := w.screen.Bounds()
	return shapes.Sz(float64(b.Dx()), float64(b.Dy()))
}

// DebugPrint writes s in the top-left corner with the built-in debug font.
func (w *Window) DebugPrint(s string) {
	ebitenutil.DebugPrint(w.screen, s)
}

func (w *Window) GeoM() ebiten.GeoM {
	return w.geoM
}

func (w *Window) FillRect(r shapes.Rect, clr color.Color) {
	corners := r.Corners()
	w.FillPolygon(corners[:], quadIndices, clr)
}

func (w *Window) FillPolygon(points []shapes.Point, indices []uint16, clr color.Color) {
	if len(points) == 0 || len(indices) == 0 {
		return
	}
	cr, cg, cb, ca := premultiplied(clr)
	w.vertices = w.vertices[:0]
	for _, p := range points {
		x, y := w.geoM.Apply(p.X, p.Y)
		w.vertices = append(w.vertices, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	w.drawTriangles(w.vertices, indices)
}

func (w *Window) StrokePolygon(points []shapes.Point, width float32, clr color.Color) {
	if len(points) < 2 {
		return
	}
	var path vector.Path
	for i, p := range points {
		x, y := w.geoM.Apply(p.X, p.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	w.vertices, w.indices = path.AppendVerticesAndIndicesForStroke(w.vertices[:0], w.indices[:0], &vector.StrokeOptions{
		Width: width,
	})
	cr, cg, cb, ca := premultiplied(clr)
	for i := range w.vertices {
		w.vertices[i].SrcX = 1
		w.vertices[i].SrcY = 1
		w.vertices[i].ColorR = cr
		w.vertices[i].ColorG = cg
		w.vertices[i].ColorB = cb
		w.vertices[i].ColorA = ca
	}
	w.drawTriangles(w.vertices, w.indices)
}

func (w *Window) DrawText(s string, size float64, pos, origin shapes.Point, clr color.Color) {
	if s == "" || w.fonts == nil {
		return
	}
	face := w.fonts.Face(size)
	tw, th := text.Measure(s, face, size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X-tw*origin.X, pos.Y-th*origin.Y)
	op.GeoM.Concat(w.geoM)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size
	text.Draw(w.screen, s, face, op)
}

func (w *Window) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	var o ebiten.DrawImageOptions
	if op != nil {
		o = *op
	}
	o.GeoM.Concat(w.geoM)
	w.screen.DrawImage(img, &o)
}

func (w *Window) drawTriangles(vs []ebiten.Vertex, is []uint16) {
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	w.screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func premultiplied(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
