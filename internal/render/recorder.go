package render

import (
	"image/color"

	"fernpond/internal/core"
)

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpCurve
	OpLine
	OpEllipse
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpCurve:
		return "curve"
	case OpLine:
		return "line"
	case OpEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind   OpKind
	Points []core.Point
	Rect   core.Rect
	Fill   color.NRGBA
	Stroke Stroke
}

// Recorder is a backend whose surfaces keep every call in order instead of
// painting. Only published surfaces become visible through Published.
type Recorder struct {
	// FailAcquire, when set, is returned by Acquire.
	FailAcquire error
	// FailPublish, when set, is returned by Publish.
	FailPublish error

	published [][]Op
}

// NewRecorder returns an empty recording backend.
func NewRecorder() *Recorder { return &Recorder{} }

// Acquire returns a fresh recording surface.
func (r *Recorder) Acquire(size core.Size) (Surface, error) {
	if r.FailAcquire != nil {
		return nil, r.FailAcquire
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &recording{size: size, owner: r}, nil
}

// Published returns the op lists of every published surface, oldest first.
func (r *Recorder) Published() [][]Op { return r.published }

// Last returns the ops of the most recent published surface.
func (r *Recorder) Last() []Op {
	if len(r.published) == 0 {
		return nil
	}
	return r.published[len(r.published)-1]
}

// Count returns how many ops of kind k the most recent surface holds.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Last() {
		if op.Kind == k {
			n++
		}
	}
	return n
}

type recording struct {
	size      core.Size
	ops       []Op
	owner     *Recorder
	published bool
}

func (s *recording) Size() core.Size { return s.size }

func (s *recording) FillRect(r core.Rect, c color.NRGBA) {
	if r.Empty() {
		return
	}
	s.ops = append(s.ops, Op{Kind: OpFill, Rect: r, Fill: c})
}

func (s *recording) Curve(p0, p1, p2 core.Point, st Stroke) {
	s.ops = append(s.ops, Op{Kind: OpCurve, Points: []core.Point{p0, p1, p2}, Stroke: st})
}

func (s *recording) Line(a, b core.Point, st Stroke) {
	s.ops = append(s.ops, Op{Kind: OpLine, Points: []core.Point{a, b}, Stroke: st})
}

func (s *recording) Ellipse(bounds core.Rect, st Stroke) {
	if bounds.Empty() {
		return
	}
	s.ops = append(s.ops, Op{Kind: OpEllipse, Rect: bounds, Stroke: st})
}

func (s *recording) Publish() error {
	if s.published {
		return errPublished
	}
	if s.owner.FailPublish != nil {
		return s.owner.FailPublish
	}
	s.published = true
	s.owner.published = append(s.owner.published, s.ops)
	return nil
}
