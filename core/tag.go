package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// IsMarker 判断是否为 0 组码的段落/实体标记，如 SECTION、SEQEND
func (t Tag) IsMarker(name string) bool {
	return t.Code == 0 && strings.EqualFold(strings.TrimSpace(t.Value), name)
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// XY 丢弃 Z 坐标
func (p Point) XY() Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

// Point2D 代表平面上的一个点（LWPOLYLINE 顶点）
type Point2D struct {
	X, Y float64
}

// XYZ 以 Z=0 扩展为三维点
func (p Point2D) XYZ() Point {
	return Point{X: p.X, Y: p.Y}
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// Extend 返回同时包含 b 和 o 的包围盒
func (b BBox) Extend(o BBox) BBox {
	return BBox{
		Min: Point{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y), Z: min(b.Min.Z, o.Min.Z)},
		Max: Point{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y), Z: max(b.Max.Z, o.Max.Z)},
	}
}

// BBoxOf 计算一组点的包围盒，空集合返回零值
func BBoxOf(points ...Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	box := BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(BBox{Min: p, Max: p})
	}
	return box
}
