package entities

import "github.com/zooyer/geodxf/core"

// Attrib 是块参照上的属性值
type Attrib struct {
	BaseEntity
	Location core.Point
	Tag      string // 属性标签，如 "名称"
	Text     string // 属性值
	Height   float64
}

func init() {
	Register("ATTRIB", func() Entity { return NewAttrib("", "", core.Point{}) })
}

func NewAttrib(tag, text string, at core.Point) *Attrib {
	return &Attrib{
		BaseEntity: BaseEntity{TypeName: "ATTRIB"},
		Location:   at,
		Tag:        tag,
		Text:       text,
	}
}

func (a *Attrib) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		if !a.parseCommon(tag) {
			switch tag.Code {
			case 10:
				a.Location.X = tag.AsFloat()
			case 20:
				a.Location.Y = tag.AsFloat()
			case 30:
				a.Location.Z = tag.AsFloat()
			case 40:
				a.Height = tag.AsFloat()
			case 1:
				a.Text = tag.AsString()
			case 2:
				a.Tag = tag.AsString()
			}
		}
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return scanner.Err()
}

func (a *Attrib) Write(w *core.Writer) {
	a.write(w, a.Layer())
}

// write 总是以 ATTRIB 输出，layer 由所属的块参照决定
func (a *Attrib) write(w *core.Writer, layer string) {
	writeHeader(w, "ATTRIB", a.Handle, layer, "AcDbText")
	w.Point(10, a.Location)
	w.Float(40, a.Height)
	w.String(1, a.Text)
	w.String(100, "AcDbAttribute")
	w.String(2, a.Tag)
	w.Int(70, 0)
}

func (a *Attrib) BBox() core.BBox {
	// 简化处理：属性文字暂时以位置点作为包围盒
	return core.BBox{Min: a.Location, Max: a.Location}
}
