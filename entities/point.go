package entities

import "github.com/zooyer/geodxf/core"

// Point 对应 POINT 实体
type Point struct {
	BaseEntity
	Location core.Point
}

func init() {
	Register("POINT", func() Entity { return NewPoint(core.Point{}) })
}

func NewPoint(location core.Point) *Point {
	return &Point{BaseEntity: BaseEntity{TypeName: "POINT"}, Location: location}
}

func (p *Point) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		if !p.parseCommon(t) {
			switch t.Code {
			case 10:
				p.Location.X = t.AsFloat()
			case 20:
				p.Location.Y = t.AsFloat()
			case 30:
				p.Location.Z = t.AsFloat()
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

func (p *Point) Write(w *core.Writer) {
	p.writeCommon(w, "AcDbPoint")
	w.Point(10, p.Location)
}

func (p *Point) BBox() core.BBox {
	return core.BBox{Min: p.Location, Max: p.Location}
}
