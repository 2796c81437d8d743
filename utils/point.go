package utils

import (
	"math"

	"github.com/zooyer/geodxf/core"
	"github.com/zooyer/geodxf/entities"
)

// transform 是块参照的 缩放 -> 绕 Z 旋转 -> 平移 变换
type transform struct {
	cos, sin float64
	scale    core.Point
	origin   core.Point
}

func newTransform(ins *entities.Insert) transform {
	rad := ins.Rotation * math.Pi / 180.0
	return transform{
		cos:    math.Cos(rad),
		sin:    math.Sin(rad),
		scale:  ins.Scale,
		origin: ins.InsertionPoint,
	}
}

func (t transform) apply(p core.Point) core.Point {
	x, y := p.X*t.scale.X, p.Y*t.scale.Y
	return core.Point{
		X: x*t.cos - y*t.sin + t.origin.X,
		Y: x*t.sin + y*t.cos + t.origin.Y,
		Z: p.Z*t.scale.Z + t.origin.Z,
	}
}

// TransformPoint 将局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	return newTransform(ins).apply(p)
}
