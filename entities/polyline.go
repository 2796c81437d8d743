package entities

import (
	"github.com/zooyer/geodxf/core"
)

// POLYLINE 组码 70 的标志位
const (
	PolylineClosed = 1
	Polyline3D     = 8
)

// 3D 多段线顶点的组码 70 标志
const vertex3D = 32

// Polyline 对应旧式 POLYLINE 实体（后跟 VERTEX ... SEQEND）。
// 带 Polyline3D 标志时为简单三维多段线，否则为二维多段线，此时 Elevation 为统一高度。
type Polyline struct {
	BaseEntity
	Flags      int
	Elevation  float64
	StartWidth float64
	EndWidth   float64
	Vertices   []core.Point
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
}

// NewPolyline3D 创建简单三维多段线
func NewPolyline3D(vertices []core.Point, closed bool) *Polyline {
	return newPolyline(Polyline3D, vertices, closed)
}

// NewPolyline2D 创建二维多段线，高度、线宽保持默认值 0
func NewPolyline2D(vertices []core.Point, closed bool) *Polyline {
	return newPolyline(0, vertices, closed)
}

func newPolyline(flags int, vertices []core.Point, closed bool) *Polyline {
	if closed {
		flags |= PolylineClosed
	}
	return &Polyline{
		BaseEntity: BaseEntity{TypeName: "POLYLINE"},
		Flags:      flags,
		Vertices:   vertices,
	}
}

func (p *Polyline) Closed() bool { return p.Flags&PolylineClosed != 0 }

func (p *Polyline) Is3D() bool { return p.Flags&Polyline3D != 0 }

func (p *Polyline) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		if !p.parseCommon(t) {
			switch t.Code {
			case 30:
				p.Elevation = t.AsFloat()
			case 40:
				p.StartWidth = t.AsFloat()
			case 41:
				p.EndWidth = t.AsFloat()
			case 70:
				p.Flags = t.AsInt()
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}

	// 顶点以独立的 VERTEX 实体跟随，直到 SEQEND
	for s.Err() == nil {
		tag := s.LastTag
		if tag.IsMarker("SEQEND") {
			for s.Next() && s.LastTag.Code != 0 {
			}
			break
		}
		if !tag.IsMarker("VERTEX") {
			break
		}
		var v core.Point
		for s.Next() && s.LastTag.Code != 0 {
			switch t := s.LastTag; t.Code {
			case 10:
				v.X = t.AsFloat()
			case 20:
				v.Y = t.AsFloat()
			case 30:
				v.Z = t.AsFloat()
			}
		}
		p.Vertices = append(p.Vertices, v)
		if s.LastTag.Code != 0 {
			break
		}
	}
	return s.Err()
}

func (p *Polyline) Write(w *core.Writer) {
	subclass, vertexClass, vertexFlags := "AcDb2dPolyline", "AcDb2dVertex", 0
	if p.Is3D() {
		subclass, vertexClass, vertexFlags = "AcDb3dPolyline", "AcDb3dPolylineVertex", vertex3D
	}

	p.writeCommon(w, subclass)
	w.Int(66, 1)
	w.Point(10, core.Point{Z: p.Elevation})
	w.Int(70, p.Flags)
	if p.StartWidth != 0 {
		w.Float(40, p.StartWidth)
	}
	if p.EndWidth != 0 {
		w.Float(41, p.EndWidth)
	}

	for _, v := range p.Vertices {
		w.String(0, "VERTEX")
		w.String(100, "AcDbEntity")
		w.String(8, p.Layer())
		w.String(100, "AcDbVertex")
		w.String(100, vertexClass)
		w.Point(10, v)
		w.Int(70, vertexFlags)
	}

	w.String(0, "SEQEND")
	w.String(100, "AcDbEntity")
	w.String(8, p.Layer())
}

func (p *Polyline) BBox() core.BBox {
	return core.BBoxOf(p.Vertices...)
}
