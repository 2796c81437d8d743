package entities

import (
	"github.com/zooyer/geodxf/core"
)

// DefaultLayer 是未指定图层时实体所在的图层
const DefaultLayer = "0"

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(scanner *core.Scanner) error
	Write(writer *core.Writer)
	Type() string
	Layer() string
	SetLayer(name string)
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Handle）
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string {
	if b.LayerName == "" {
		return DefaultLayer
	}
	return b.LayerName
}

func (b *BaseEntity) SetLayer(name string) { b.LayerName = name }

// parseCommon 处理所有实体共有的组码，已处理返回 true
func (b *BaseEntity) parseCommon(tag core.Tag) bool {
	switch tag.Code {
	case 5:
		b.Handle = tag.AsString()
	case 8:
		b.LayerName = tag.AsString()
	default:
		return false
	}
	return true
}

// writeCommon 输出实体头：类型、句柄、图层、子类标记
func (b *BaseEntity) writeCommon(w *core.Writer, subclass string) {
	writeHeader(w, b.TypeName, b.Handle, b.Layer(), subclass)
}

func writeHeader(w *core.Writer, typeName, handle, layer, subclass string) {
	w.String(0, typeName)
	if handle != "" {
		w.String(5, handle)
	}
	w.String(100, "AcDbEntity")
	w.String(8, layer)
	if subclass != "" {
		w.String(100, subclass)
	}
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}
