package entities

import (
	"github.com/zooyer/geodxf/core"
)

type Line struct {
	BaseEntity
	Start, End core.Point
}

func init() {
	Register("LINE", func() Entity { return NewLine(core.Point{}, core.Point{}) })
}

func NewLine(start, end core.Point) *Line {
	return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}, Start: start, End: end}
}

func (l *Line) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		if !l.parseCommon(t) {
			switch t.Code {
			case 10:
				l.Start.X = t.AsFloat()
			case 20:
				l.Start.Y = t.AsFloat()
			case 30:
				l.Start.Z = t.AsFloat()
			case 11:
				l.End.X = t.AsFloat()
			case 21:
				l.End.Y = t.AsFloat()
			case 31:
				l.End.Z = t.AsFloat()
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

func (l *Line) Write(w *core.Writer) {
	l.writeCommon(w, "AcDbLine")
	w.Point(10, l.Start)
	w.Point(11, l.End)
}

func (l *Line) BBox() core.BBox {
	return core.BBoxOf(l.Start, l.End)
}
