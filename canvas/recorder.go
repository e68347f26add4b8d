package canvas

import (
	"image/color"
	"unicode/utf8"

	"gonum.org/v1/plot/vg"
)

// Recorder is a Context which records what is drawn instead of drawing.
// Text is measured with a fixed advance of CharWidth * font size per rune.
type Recorder struct {
	// CharWidth is the advance of one rune in units of the font size.
	// Zero means 0.5.
	CharWidth float64

	Ops []Op

	state state
	stack []state
	path  []Segment
	pen   [2]float64

	// MaxDepth is the deepest the state stack has been.
	MaxDepth int
}

// Op is one recorded drawing operation. Only FillText, FillRect and
// Stroke are recorded together with the state they were drawn in;
// coordinates are device coordinates, i.e. after applying the current
// transformation.
type Op struct {
	Name string

	X, Y     float64 // anchor of FillText, origin of FillRect
	W, H     float64 // size of FillRect
	Text     string
	Angle    float64 // rotation in effect for FillText
	Path     []Segment
	Font     Font
	Fill     color.Color
	Stroke   color.Color
	Width    float64
	Dash     []float64
	Align    TextAlign
	Baseline TextBaseline
}

// Segment is a straight line in device coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{state: state{m: identity, fill: color.Black}}
}

func (r *Recorder) op(name string) { r.Ops = append(r.Ops, Op{Name: name}) }

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
	if len(r.stack) > r.MaxDepth {
		r.MaxDepth = len(r.stack)
	}
	r.op("Save")
}

func (r *Recorder) Restore() {
	r.op("Restore")
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Depth returns the current depth of the state stack.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) Translate(x, y float64) { r.state.m = r.state.m.translate(x, y) }
func (r *Recorder) Rotate(angle float64)   { r.state.m = r.state.m.rotate(angle) }
func (r *Recorder) SetFont(f Font)         { r.state.font = f }

func (r *Recorder) SetFillColor(c color.Color)     { r.state.fill = c }
func (r *Recorder) SetStrokeColor(c color.Color)   { r.state.line.Color = c }
func (r *Recorder) SetTextAlign(a TextAlign)       { r.state.align = a }
func (r *Recorder) SetTextBaseline(b TextBaseline) { r.state.baseline = b }

func (r *Recorder) SetLineWidth(w float64) { r.state.line.Width = vg.Length(w) }

func (r *Recorder) SetLineDash(dash []float64, offset float64) {
	dashes := make([]vg.Length, len(dash))
	for i, d := range dash {
		dashes[i] = vg.Length(d)
	}
	r.state.line.Dashes = dashes
	r.state.line.DashOffs = vg.Length(offset)
}

func (r *Recorder) BeginPath() { r.path = nil }

func (r *Recorder) MoveTo(x, y float64) {
	r.pen[0], r.pen[1] = r.state.m.apply(x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	dx, dy := r.state.m.apply(x, y)
	r.path = append(r.path, Segment{r.pen[0], r.pen[1], dx, dy})
	r.pen[0], r.pen[1] = dx, dy
}

func (r *Recorder) Stroke() {
	dash := make([]float64, len(r.state.line.Dashes))
	for i, d := range r.state.line.Dashes {
		dash[i] = float64(d)
	}
	r.Ops = append(r.Ops, Op{
		Name:   "Stroke",
		Path:   append([]Segment(nil), r.path...),
		Stroke: r.state.line.Color,
		Width:  float64(r.state.line.Width),
		Dash:   dash,
	})
}

func (r *Recorder) FillText(text string, x, y float64) {
	dx, dy := r.state.m.apply(x, y)
	r.Ops = append(r.Ops, Op{
		Name:     "FillText",
		X:        dx,
		Y:        dy,
		Text:     text,
		Angle:    r.state.m.angle(),
		Font:     r.state.font,
		Fill:     r.state.fill,
		Align:    r.state.align,
		Baseline: r.state.baseline,
	})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	dx, dy := r.state.m.apply(x, y)
	r.Ops = append(r.Ops, Op{Name: "FillRect", X: dx, Y: dy, W: w, H: h, Fill: r.state.fill})
}

func (r *Recorder) MeasureText(f Font, text string) float64 {
	cw := r.CharWidth
	if cw == 0 {
		cw = 0.5
	}
	return cw * f.Size * float64(utf8.RuneCountInString(text))
}

// Named returns all recorded operations with the given name.
func (r *Recorder) Named(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns the strings drawn by FillText in drawing order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Named("FillText") {
		texts = append(texts, op.Text)
	}
	return texts
}

// Reset discards all recorded operations and state.
func (r *Recorder) Reset() {
	cw := r.CharWidth
	*r = *NewRecorder()
	r.CharWidth = cw
}
