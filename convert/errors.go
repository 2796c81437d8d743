package convert

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// ErrEmptyGeometry 表示几何对象没有坐标，无法生成实体
var ErrEmptyGeometry = errors.New("几何对象为空")

// UnsupportedConversionError 目标实体类型没有对应的转换规则
type UnsupportedConversionError struct {
	TypeName     string // 请求的目标类型标识
	GeometryType string // 几何对象自身的类型名
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("不支持的转换: %s -> %q", e.GeometryType, e.TypeName)
}

// GeometryTypeError 几何对象的类型与转换要求不符
type GeometryTypeError struct {
	Expected string
	Actual   string
}

func (e *GeometryTypeError) Error() string {
	return fmt.Sprintf("几何类型不符: 需要 %s, 得到 %s", e.Expected, e.Actual)
}

// GeometryTypeName 返回几何对象的类型名，如 LineString
func GeometryTypeName(g geom.T) string {
	switch g.(type) {
	case nil:
		return "nil"
	case *geom.Point:
		return "Point"
	case *geom.LineString:
		return "LineString"
	case *geom.LinearRing:
		return "LinearRing"
	case *geom.Polygon:
		return "Polygon"
	case *geom.MultiPoint:
		return "MultiPoint"
	case *geom.MultiLineString:
		return "MultiLineString"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	case *geom.GeometryCollection:
		return "GeometryCollection"
	}
	return fmt.Sprintf("%T", g)
}
