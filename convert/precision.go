package convert

import (
	"fmt"
	"math"
)

// PrecisionType 精度模型的种类
type PrecisionType int

const (
	// Floating 保留完整的双精度，不做舍入
	Floating PrecisionType = iota
	// FloatingSingle 舍入到单精度
	FloatingSingle
	// Fixed 按比例尺舍入到固定网格
	Fixed
)

func (t PrecisionType) String() string {
	switch t {
	case Floating:
		return "Floating"
	case FloatingSingle:
		return "FloatingSingle"
	case Fixed:
		return "Fixed"
	}
	return fmt.Sprintf("PrecisionType(%d)", int(t))
}

// PrecisionModel 坐标精度策略。零值等价于 Floating
type PrecisionModel struct {
	typ   PrecisionType
	scale float64
}

func NewFloating() PrecisionModel {
	return PrecisionModel{typ: Floating}
}

func NewFloatingSingle() PrecisionModel {
	return PrecisionModel{typ: FloatingSingle}
}

// NewFixed 按比例尺舍入，scale=100 表示保留两位小数，scale=0.1 表示取整到 10
func NewFixed(scale float64) PrecisionModel {
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return NewFloating()
	}
	return PrecisionModel{typ: Fixed, scale: math.Abs(scale)}
}

// NewFixedDecimals 保留 n 位小数
func NewFixedDecimals(n int) PrecisionModel {
	return NewFixed(math.Pow(10, float64(n)))
}

func (pm PrecisionModel) Type() PrecisionType { return pm.typ }

// Scale 固定精度时的比例尺，其它类型返回 0
func (pm PrecisionModel) Scale() float64 { return pm.scale }

func (pm PrecisionModel) IsFloating() bool { return pm.typ != Fixed }

// MakePrecise 把单个坐标分量舍入到该模型可表示的值，NaN 原样返回。
// 固定精度使用 floor(v*scale+0.5)/scale，即 .5 总是向正方向进位
func (pm PrecisionModel) MakePrecise(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}

	switch pm.typ {
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		if pm.scale < 1 {
			grid := 1 / pm.scale
			return math.Floor(v/grid+0.5) * grid
		}
		return math.Floor(v*pm.scale+0.5) / pm.scale
	}
	return v
}

func (pm PrecisionModel) String() string {
	if pm.typ == Fixed {
		return fmt.Sprintf("Fixed(scale=%g)", pm.scale)
	}
	return pm.typ.String()
}

// GeometryFactory 携带几何对象的精度模型与坐标系
type GeometryFactory struct {
	PrecisionModel PrecisionModel
	SRID           int
}

// DefaultFactory 完整双精度、无坐标系，未显式指定工厂时使用
var DefaultFactory = &GeometryFactory{PrecisionModel: NewFloating()}

func NewGeometryFactory(pm PrecisionModel, srid int) *GeometryFactory {
	return &GeometryFactory{PrecisionModel: pm, SRID: srid}
}
