package convert

import "github.com/twpayne/go-geom"

// LineSegment 由两个坐标组成的直线段，go-geom 没有对应类型
type LineSegment struct {
	Layout geom.Layout
	P0, P1 geom.Coord
}

func NewLineSegment(layout geom.Layout, p0, p1 geom.Coord) LineSegment {
	return LineSegment{Layout: layout, P0: p0, P1: p1}
}

// Segments 把折线拆成相邻顶点组成的线段，少于两个顶点时返回 nil
func Segments(ls *geom.LineString) []LineSegment {
	n := ls.NumCoords()
	if n < 2 {
		return nil
	}
	segments := make([]LineSegment, 0, n-1)
	for i := 0; i < n-1; i++ {
		segments = append(segments, NewLineSegment(ls.Layout(), ls.Coord(i), ls.Coord(i+1)))
	}
	return segments
}
