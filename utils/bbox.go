package utils

import (
	"strings"

	dxf "github.com/zooyer/geodxf"
	"github.com/zooyer/geodxf/core"
	"github.com/zooyer/geodxf/entities"
)

// 块嵌套的最大深度，防止自引用的块无限递归
const maxBlockDepth = 16

// TransformBBox 执行矩阵变换：将局部坐标变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	t := newTransform(ins)
	for i, p := range corners {
		corners[i] = t.apply(p)
	}

	return core.BBoxOf(corners...)
}

// GetEntityBBoxWCS 计算实体在世界坐标系下的包围盒，块参照会展开块内实体
func GetEntityBBoxWCS(d *dxf.Document, entity entities.Entity) core.BBox {
	return entityBBox(d, entity, nil, 0)
}

// Extents 计算整张图纸在世界坐标系下的范围，没有实体时 ok 为 false
func Extents(d *dxf.Document) (box core.BBox, ok bool) {
	for _, ent := range d.Entities {
		b := entityBBox(d, ent, nil, 0)
		if !ok {
			box, ok = b, true
			continue
		}
		box = box.Extend(b)
	}
	return
}

func entityBBox(d *dxf.Document, entity entities.Entity, parent *entities.Insert, depth int) core.BBox {
	insert, isInsert := entity.(*entities.Insert)
	if !isInsert {
		box := entity.BBox()
		if parent != nil {
			box = TransformBBox(box, parent)
		}
		return box
	}

	if parent != nil {
		insert = CombineInserts(parent, insert)
	}

	block, exists := d.Blocks[strings.ToUpper(insert.BlockName)]
	if !exists || len(block.Entities) == 0 || depth >= maxBlockDepth {
		return core.BBox{Min: insert.InsertionPoint, Max: insert.InsertionPoint}
	}

	// 块内坐标以基点为原点
	local := *insert
	local.InsertionPoint = TransformPoint(core.Point{
		X: -block.BasePoint.X, Y: -block.BasePoint.Y, Z: -block.BasePoint.Z,
	}, insert)

	box := entityBBox(d, block.Entities[0], &local, depth+1)
	for _, sub := range block.Entities[1:] {
		box = box.Extend(entityBBox(d, sub, &local, depth+1))
	}
	return box
}
