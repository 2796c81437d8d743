package entities

import "github.com/zooyer/geodxf/core"

// Insert 是块参照 (INSERT)
type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity { return NewInsert("", core.Point{}) })
}

func NewInsert(blockName string, at core.Point) *Insert {
	return &Insert{
		BaseEntity:     BaseEntity{TypeName: "INSERT"},
		BlockName:      blockName,
		InsertionPoint: at,
		Scale:          core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		Attributes:     []*Attrib{},
	}
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	hasAttributes := false

	for {
		tag := scanner.LastTag
		if !i.parseCommon(tag) {
			switch tag.Code {
			case 2:
				i.BlockName = tag.AsString()
			case 10:
				i.InsertionPoint.X = tag.AsFloat()
			case 20:
				i.InsertionPoint.Y = tag.AsFloat()
			case 30:
				i.InsertionPoint.Z = tag.AsFloat()
			case 41:
				i.Scale.X = tag.AsFloat()
			case 42:
				i.Scale.Y = tag.AsFloat()
			case 43:
				i.Scale.Z = tag.AsFloat()
			case 50:
				i.Rotation = tag.AsFloat()
			case 66:
				hasAttributes = tag.AsInt() == 1
			}
		}

		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}

	// 标记了有属性时，继续在当前流中抓取 ATTRIB 直到 SEQEND
	if hasAttributes {
		for {
			tag := scanner.LastTag
			if tag.Code == 0 {
				if tag.IsMarker("SEQEND") {
					for scanner.Next() && scanner.LastTag.Code != 0 {
					}
					break
				}
				attr, ok := CreateEntity(tag.Value).(*Attrib)
				if !ok {
					break // 缺少 SEQEND，交给上层继续解析
				}
				if err := attr.Parse(scanner); err != nil {
					return err
				}
				i.Attributes = append(i.Attributes, attr)
				continue // Parse 内部已经 Next 了，直接进入下一次判断
			}
			if !scanner.Next() {
				break
			}
		}
	}
	return scanner.Err()
}

func (i *Insert) Write(w *core.Writer) {
	i.writeCommon(w, "AcDbBlockReference")
	if len(i.Attributes) > 0 {
		w.Int(66, 1)
	}
	w.String(2, i.BlockName)
	w.Point(10, i.InsertionPoint)
	w.Float(41, i.Scale.X)
	w.Float(42, i.Scale.Y)
	w.Float(43, i.Scale.Z)
	w.Float(50, i.Rotation)

	if len(i.Attributes) == 0 {
		return
	}
	for _, a := range i.Attributes {
		layer := a.LayerName
		if layer == "" {
			layer = i.Layer()
		}
		a.write(w, layer)
	}
	w.String(0, "SEQEND")
	w.String(100, "AcDbEntity")
	w.String(8, i.Layer())
}

func (i *Insert) BBox() core.BBox {
	// Insert 的包围盒需要结合 Block 定义计算（见 utils.GetEntityBBoxWCS），这里先返回插入点
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
