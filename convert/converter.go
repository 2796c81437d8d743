// Package convert 把 go-geom 几何对象转换为 DXF 实体。
//
// 转换只复制坐标并按精度模型舍入，不做任何几何运算。生成的实体都是新建的、
// 尚未加入图纸的值，由调用方通过 dxf.Document.Add 提交。
package convert

import (
	"math"

	"github.com/twpayne/go-geom"

	"github.com/zooyer/geodxf/core"
	"github.com/zooyer/geodxf/entities"
)

// Converter 持有不可变的精度模型，可被多个 goroutine 同时使用
type Converter struct {
	factory GeometryFactory
}

// NewConverter 使用 factory 的精度模型，factory 为 nil 时使用 DefaultFactory
func NewConverter(factory *GeometryFactory) *Converter {
	if factory == nil {
		factory = DefaultFactory
	}
	return &Converter{factory: *factory}
}

func (c *Converter) PrecisionModel() PrecisionModel {
	return c.factory.PrecisionModel
}

func (c *Converter) SRID() int {
	return c.factory.SRID
}

func (c *Converter) precise(v float64) float64 {
	return c.factory.PrecisionModel.MakePrecise(v)
}

// ToPoint3D 转换为三维点。Z 未定义（布局无 Z 或值为 NaN）时输出 0
func (c *Converter) ToPoint3D(layout geom.Layout, coord geom.Coord) core.Point {
	p := core.Point{X: c.precise(coord.X()), Y: c.precise(coord.Y())}
	if z := zOf(layout, coord); !math.IsNaN(z) {
		p.Z = c.precise(z)
	}
	return p
}

// ToPoint2D 转换为二维点，丢弃 Z
func (c *Converter) ToPoint2D(coord geom.Coord) core.Point2D {
	return core.Point2D{X: c.precise(coord.X()), Y: c.precise(coord.Y())}
}

// PointToPoint3D 空点返回原点
func (c *Converter) PointToPoint3D(p *geom.Point) core.Point {
	if isEmptyPoint(p) {
		return core.Point{}
	}
	return c.ToPoint3D(p.Layout(), p.Coords())
}

// PointToPoint2D 空点返回原点
func (c *Converter) PointToPoint2D(p *geom.Point) core.Point2D {
	if isEmptyPoint(p) {
		return core.Point2D{}
	}
	return c.ToPoint2D(p.Coords())
}

// ToPointEntity 空点生成位于原点的 POINT，需要区分时先检查 FlatCoords 或使用 Convert
func (c *Converter) ToPointEntity(p *geom.Point) *entities.Point {
	return entities.NewPoint(c.PointToPoint3D(p))
}

// ToLWPolyline 转换折线。注意：顶点直接取原始 XY，不经过精度模型，
// 与 RingToLWPolyline 的行为不同，两者保持现状。首尾坐标完全相同时闭合
func (c *Converter) ToLWPolyline(ls *geom.LineString) *entities.LWPolyline {
	coords := ls.Coords()
	vertices := make([]core.Point2D, len(coords))
	for i, coord := range coords {
		vertices[i] = core.Point2D{X: coord.X(), Y: coord.Y()}
	}
	return entities.NewLWPolyline(vertices, endpointsEqual(coords))
}

// RingToLWPolyline 转换线环，顶点经过精度模型，结果总是闭合
func (c *Converter) RingToLWPolyline(r *geom.LinearRing) *entities.LWPolyline {
	coords := r.Coords()
	vertices := make([]core.Point2D, len(coords))
	for i, coord := range coords {
		vertices[i] = c.ToPoint2D(coord)
	}
	return entities.NewLWPolyline(vertices, true)
}

// ToLWPolylineSet 多边形外环在前，内环按原顺序在后
func (c *Converter) ToLWPolylineSet(p *geom.Polygon) []*entities.LWPolyline {
	n := p.NumLinearRings()
	polylines := make([]*entities.LWPolyline, 0, n)
	for i := 0; i < n; i++ {
		polylines = append(polylines, c.RingToLWPolyline(p.LinearRing(i)))
	}
	return polylines
}

// ToPolyline3D 转换为简单三维多段线
func (c *Converter) ToPolyline3D(ls *geom.LineString) *entities.Polyline {
	coords := ls.Coords()
	return entities.NewPolyline3D(c.points3D(ls.Layout(), coords), endpointsEqual(coords))
}

func (c *Converter) RingToPolyline3D(r *geom.LinearRing) *entities.Polyline {
	return entities.NewPolyline3D(c.points3D(r.Layout(), r.Coords()), true)
}

// ToPolyline2D 转换为旧式二维多段线，高度与线宽保持 0
func (c *Converter) ToPolyline2D(ls *geom.LineString) *entities.Polyline {
	coords := ls.Coords()
	return entities.NewPolyline2D(c.points3D(ls.Layout(), coords), endpointsEqual(coords))
}

func (c *Converter) RingToPolyline2D(r *geom.LinearRing) *entities.Polyline {
	return entities.NewPolyline2D(c.points3D(r.Layout(), r.Coords()), true)
}

func (c *Converter) ToLine(s LineSegment) *entities.Line {
	return entities.NewLine(c.ToPoint3D(s.Layout, s.P0), c.ToPoint3D(s.Layout, s.P1))
}

func (c *Converter) points3D(layout geom.Layout, coords []geom.Coord) []core.Point {
	points := make([]core.Point, len(coords))
	for i, coord := range coords {
		points[i] = c.ToPoint3D(layout, coord)
	}
	return points
}

func isEmptyPoint(p *geom.Point) bool {
	return len(p.FlatCoords()) < p.Layout().Stride()
}

func zOf(layout geom.Layout, coord geom.Coord) float64 {
	if i := layout.ZIndex(); i >= 0 && i < len(coord) {
		return coord[i]
	}
	return math.NaN()
}

// endpointsEqual 只比较 XY，Z 不参与
func endpointsEqual(coords []geom.Coord) bool {
	if len(coords) == 0 {
		return false
	}
	first, last := coords[0], coords[len(coords)-1]
	return first.X() == last.X() && first.Y() == last.Y()
}
