package entities

import (
	"github.com/zooyer/geodxf/core"
)

// LWPolyline 对应 LWPOLYLINE 轻量多段线，顶点只有 XY，高度由 Elevation 统一给出
type LWPolyline struct {
	BaseEntity
	Vertices  []core.Point2D
	Closed    bool
	Elevation float64
}

func init() {
	Register("LWPOLYLINE", func() Entity { return NewLWPolyline(nil, false) })
}

func NewLWPolyline(vertices []core.Point2D, closed bool) *LWPolyline {
	return &LWPolyline{
		BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"},
		Vertices:   vertices,
		Closed:     closed,
	}
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	var x float64
	for {
		t := s.LastTag
		if !l.parseCommon(t) {
			switch t.Code {
			case 10:
				x = t.AsFloat()
			case 20:
				l.Vertices = append(l.Vertices, core.Point2D{X: x, Y: t.AsFloat()})
			case 38:
				l.Elevation = t.AsFloat()
			case 70:
				l.Closed = t.AsInt()&1 != 0
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

func (l *LWPolyline) Write(w *core.Writer) {
	l.writeCommon(w, "AcDbPolyline")
	w.Int(90, len(l.Vertices))
	flags := 0
	if l.Closed {
		flags |= 1
	}
	w.Int(70, flags)
	if l.Elevation != 0 {
		w.Float(38, l.Elevation)
	}
	for _, v := range l.Vertices {
		w.Point2D(10, v)
	}
}

func (l *LWPolyline) BBox() core.BBox {
	if len(l.Vertices) == 0 {
		return core.BBox{}
	}
	points := make([]core.Point, len(l.Vertices))
	for i, v := range l.Vertices {
		points[i] = core.Point{X: v.X, Y: v.Y, Z: l.Elevation}
	}
	return core.BBoxOf(points...)
}
