package utils

import (
	"github.com/zooyer/geodxf/core"
	"github.com/zooyer/geodxf/entities"
)

// CombineInserts 合并嵌套块的变换，child 位于 parent 所引用的块内
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	combined := entities.NewInsert(child.BlockName, TransformPoint(child.InsertionPoint, parent))
	combined.Rotation = parent.Rotation + child.Rotation
	combined.Scale = core.Point{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}
	combined.LayerName = child.LayerName
	return combined
}
