package convert

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/zooyer/geodxf/entities"
)

// TargetKind 是按目标实体类型分派时可选的类别
type TargetKind int

const (
	TargetLine TargetKind = iota + 1
	TargetPolyline
	TargetLWPolyline
	TargetPoint
	TargetBlockReference
)

var targetNames = map[TargetKind]string{
	TargetLine:           "Line",
	TargetPolyline:       "Polyline",
	TargetLWPolyline:     "LWPolyline",
	TargetPoint:          "Point",
	TargetBlockReference: "BlockReference",
}

// 目标类型标识（不区分大小写），同时接受 CAD 类名和 DXF 实体名
var targetKinds = map[string]TargetKind{
	"line":           TargetLine,
	"polyline":       TargetPolyline,
	"polyline2d":     TargetPolyline,
	"polyline3d":     TargetPolyline,
	"lwpolyline":     TargetLWPolyline,
	"point":          TargetPoint,
	"dbpoint":        TargetPoint,
	"blockreference": TargetBlockReference,
	"insert":         TargetBlockReference,
}

func (k TargetKind) String() string {
	if name, ok := targetNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TargetKind(%d)", int(k))
}

// IsLineLike 线类目标，几何按折线处理
func (k TargetKind) IsLineLike() bool {
	return k == TargetLine || k == TargetPolyline || k == TargetLWPolyline
}

// IsPointLike 点类目标，几何按点处理
func (k TargetKind) IsPointLike() bool {
	return k == TargetPoint || k == TargetBlockReference
}

// ParseTargetKind 解析目标类型标识，未知标识返回 false
func ParseTargetKind(name string) (TargetKind, bool) {
	kind, ok := targetKinds[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// Convert 按目标类别转换：线类生成 LWPOLYLINE，点类生成 POINT
func (c *Converter) Convert(kind TargetKind, g geom.T) (entities.Entity, error) {
	switch {
	case kind.IsLineLike():
		switch g := g.(type) {
		case *geom.LineString:
			return c.ToLWPolyline(g), nil
		case *geom.LinearRing:
			// 线环按普通折线处理（原始坐标，首尾相同因而闭合）
			return c.ToLWPolyline(geom.NewLineStringFlat(g.Layout(), g.FlatCoords())), nil
		}
		return nil, errors.WithStack(&GeometryTypeError{Expected: "LineString", Actual: GeometryTypeName(g)})
	case kind.IsPointLike():
		p, ok := g.(*geom.Point)
		if !ok {
			return nil, errors.WithStack(&GeometryTypeError{Expected: "Point", Actual: GeometryTypeName(g)})
		}
		if isEmptyPoint(p) {
			return nil, errors.Wrap(ErrEmptyGeometry, kind.String())
		}
		return c.ToPointEntity(p), nil
	}
	return nil, errors.WithStack(&UnsupportedConversionError{TypeName: kind.String(), GeometryType: GeometryTypeName(g)})
}

// ConvertByTypeName 按目标类型标识转换，标识未知时返回 UnsupportedConversionError
func (c *Converter) ConvertByTypeName(typeName string, g geom.T) (entities.Entity, error) {
	kind, ok := ParseTargetKind(typeName)
	if !ok {
		return nil, errors.WithStack(&UnsupportedConversionError{TypeName: typeName, GeometryType: GeometryTypeName(g)})
	}
	return c.Convert(kind, g)
}

// PolylineStyle 决定 ConvertGeometry 输出折线时使用的实体
type PolylineStyle int

const (
	StyleLW    PolylineStyle = iota // LWPOLYLINE
	Style3D                         // 三维 POLYLINE
	Style2D                         // 二维 POLYLINE
	StyleLines                      // 拆分为 LINE
)

var styleNames = map[string]PolylineStyle{
	"lw":    StyleLW,
	"3d":    Style3D,
	"2d":    Style2D,
	"lines": StyleLines,
}

// ParsePolylineStyle 解析 lw / 3d / 2d / lines
func ParsePolylineStyle(name string) (PolylineStyle, error) {
	style, ok := styleNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.Errorf("未知的折线样式 %q", name)
	}
	return style, nil
}

// ConvertGeometry 按几何对象自身类型转换，集合类几何展开为多个实体，空几何被跳过
func (c *Converter) ConvertGeometry(g geom.T, style PolylineStyle) ([]entities.Entity, error) {
	var ents []entities.Entity

	switch g := g.(type) {
	case *geom.Point:
		if !isEmptyPoint(g) {
			ents = append(ents, c.ToPointEntity(g))
		}
	case *geom.LineString:
		if g.NumCoords() > 0 {
			ents = append(ents, c.lineString(g, style)...)
		}
	case *geom.LinearRing:
		if g.NumCoords() > 0 {
			ents = append(ents, c.ring(g, style)...)
		}
	case *geom.Polygon:
		for i := 0; i < g.NumLinearRings(); i++ {
			ents = append(ents, c.ring(g.LinearRing(i), style)...)
		}
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			if p := g.Point(i); !isEmptyPoint(p) {
				ents = append(ents, c.ToPointEntity(p))
			}
		}
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			if ls := g.LineString(i); ls.NumCoords() > 0 {
				ents = append(ents, c.lineString(ls, style)...)
			}
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			p := g.Polygon(i)
			for j := 0; j < p.NumLinearRings(); j++ {
				ents = append(ents, c.ring(p.LinearRing(j), style)...)
			}
		}
	case *geom.GeometryCollection:
		for i, sub := range g.Geoms() {
			subEnts, err := c.ConvertGeometry(sub, style)
			if err != nil {
				return nil, errors.Wrapf(err, "第 %d 个子几何", i+1)
			}
			ents = append(ents, subEnts...)
		}
	default:
		return nil, errors.WithStack(&GeometryTypeError{Expected: "Point/LineString/LinearRing/Polygon", Actual: GeometryTypeName(g)})
	}

	return ents, nil
}

func (c *Converter) lineString(ls *geom.LineString, style PolylineStyle) []entities.Entity {
	switch style {
	case Style3D:
		return []entities.Entity{c.ToPolyline3D(ls)}
	case Style2D:
		return []entities.Entity{c.ToPolyline2D(ls)}
	case StyleLines:
		return c.lines(ls)
	}
	return []entities.Entity{c.ToLWPolyline(ls)}
}

func (c *Converter) ring(r *geom.LinearRing, style PolylineStyle) []entities.Entity {
	switch style {
	case Style3D:
		return []entities.Entity{c.RingToPolyline3D(r)}
	case Style2D:
		return []entities.Entity{c.RingToPolyline2D(r)}
	case StyleLines:
		return c.lines(geom.NewLineStringFlat(r.Layout(), r.FlatCoords()))
	}
	return []entities.Entity{c.RingToLWPolyline(r)}
}

func (c *Converter) lines(ls *geom.LineString) []entities.Entity {
	segments := Segments(ls)
	ents := make([]entities.Entity, len(segments))
	for i, s := range segments {
		ents[i] = c.ToLine(s)
	}
	return ents
}
