package dxf

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/zooyer/geodxf/core"
	"github.com/zooyer/geodxf/entities"
)

// 写出文件时使用的版本号 (R2000)，LWPOLYLINE 需要 R14 以上
const acadVersion = "AC1015"

type Layer struct {
	Name  string
	Color int // 对应组码 62，ACI 颜色号
}

type Block struct {
	Name      string
	BasePoint core.Point
	Entities  []entities.Entity
}

type Document struct {
	Layers   map[string]*Layer
	Blocks   map[string]*Block
	Entities []entities.Entity
}

// New 创建只含 0 图层的空图纸
func New() *Document {
	doc := &Document{
		Layers:   make(map[string]*Layer),
		Blocks:   make(map[string]*Block),
		Entities: make([]entities.Entity, 0, 1024),
	}
	doc.AddLayer(entities.DefaultLayer)
	return doc
}

// AddLayer 注册图层，已存在时直接返回原图层
func (d *Document) AddLayer(name string) *Layer {
	if d.Layers == nil {
		d.Layers = make(map[string]*Layer)
	}
	key := strings.ToUpper(name)
	if layer, ok := d.Layers[key]; ok {
		return layer
	}
	layer := &Layer{Name: name, Color: 7}
	d.Layers[key] = layer
	return layer
}

// Add 把实体提交到图纸。layer 非空时覆盖实体原有图层
func (d *Document) Add(layer string, ents ...entities.Entity) {
	for _, ent := range ents {
		if ent == nil {
			continue
		}
		if layer != "" {
			ent.SetLayer(layer)
		}
		d.AddLayer(ent.Layer())
		d.Entities = append(d.Entities, ent)
	}
}

// Extents 返回模型空间实体的包围盒（块参照只计插入点）
func (d *Document) Extents() (box core.BBox, ok bool) {
	for _, ent := range d.Entities {
		if !ok {
			box, ok = ent.BBox(), true
			continue
		}
		box = box.Extend(ent.BBox())
	}
	return
}

func (d *Document) parseBlocks(scanner *core.Scanner) {
	var currentBlock *Block
	scanner.Next()
	for {
		tag := scanner.LastTag
		if tag.IsMarker("ENDSEC") {
			break
		}
		switch {
		case tag.IsMarker("BLOCK"):
			currentBlock = &Block{Entities: []entities.Entity{}}
			for scanner.Next() && scanner.LastTag.Code != 0 {
				switch t := scanner.LastTag; t.Code {
				case 2:
					currentBlock.Name = strings.ToUpper(t.AsString())
				case 10:
					currentBlock.BasePoint.X = t.AsFloat()
				case 20:
					currentBlock.BasePoint.Y = t.AsFloat()
				case 30:
					currentBlock.BasePoint.Z = t.AsFloat()
				}
			}
			d.Blocks[currentBlock.Name] = currentBlock
			continue
		case tag.IsMarker("ENDBLK"):
			currentBlock = nil
		case currentBlock != nil && tag.Code == 0:
			if ent := entities.CreateEntity(tag.Value); ent != nil {
				_ = ent.Parse(scanner)
				currentBlock.Entities = append(currentBlock.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.IsMarker("ENDSEC") {
			break
		}
		if tag.Code == 0 {
			ent := entities.CreateEntity(tag.Value)
			if ent != nil {
				_ = ent.Parse(scanner)
				d.Entities = append(d.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func (d *Document) parseTables(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.IsMarker("ENDSEC") {
			break
		}
		if tag.IsMarker("TABLE") {
			scanner.Next()
			tableName := strings.ToUpper(scanner.LastTag.Value)
			if tableName == "LAYER" {
				d.parseLayers(scanner)
			}
		}
	}
}

func (d *Document) parseLayers(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.IsMarker("ENDTAB") {
			break
		}

		if tag.IsMarker("LAYER") {
			layer := &Layer{Color: 7}
			for scanner.Next() {
				t := scanner.LastTag
				if t.Code == 0 {
					break
				}
				switch t.Code {
				case 2: // 图层名称
					layer.Name = t.AsString()
				case 62: // 颜色，负数表示图层关闭
					layer.Color = t.AsInt()
				}
			}

			if layer.Name != "" {
				d.Layers[strings.ToUpper(layer.Name)] = layer
			}
			continue
		}

		if !scanner.Next() {
			break
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Layers:   make(map[string]*Layer),
			Blocks:   make(map[string]*Block),
			Entities: make([]entities.Entity, 0, 1024),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.IsMarker("SECTION") {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "TABLES":
				document.parseTables(scanner)
			case "BLOCKS":
				document.parseBlocks(scanner)
			case "ENTITIES":
				document.parseEntities(scanner)
			}
		}
	}

	return document, scanner.Err()
}

// Create 把图纸写入 filename，已存在的文件会被覆盖
func Create(filename string, doc *Document) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return doc.Save(file)
}

// Save 以 ASCII DXF 格式输出 HEADER、TABLES、BLOCKS、ENTITIES 四个段
func (d *Document) Save(writer io.Writer) error {
	w := core.NewWriter(writer)

	d.writeHeader(w)
	d.writeTables(w)
	d.writeBlocks(w)

	w.String(0, "SECTION")
	w.String(2, "ENTITIES")
	for _, ent := range d.Entities {
		ent.Write(w)
	}
	w.String(0, "ENDSEC")
	w.String(0, "EOF")

	return errors.Wrap(w.Flush(), "写入 DXF")
}

func (d *Document) writeHeader(w *core.Writer) {
	w.String(0, "SECTION")
	w.String(2, "HEADER")
	w.String(9, "$ACADVER")
	w.String(1, acadVersion)
	if box, ok := d.Extents(); ok {
		w.String(9, "$EXTMIN")
		w.Point(10, box.Min)
		w.String(9, "$EXTMAX")
		w.Point(10, box.Max)
	}
	w.String(0, "ENDSEC")
}

func (d *Document) writeTables(w *core.Writer) {
	names := make([]string, 0, len(d.Layers))
	for key := range d.Layers {
		names = append(names, key)
	}
	sort.Strings(names)

	w.String(0, "SECTION")
	w.String(2, "TABLES")
	w.String(0, "TABLE")
	w.String(2, "LAYER")
	w.Int(70, len(names))
	for _, key := range names {
		layer := d.Layers[key]
		w.String(0, "LAYER")
		w.String(100, "AcDbSymbolTableRecord")
		w.String(100, "AcDbLayerTableRecord")
		w.String(2, layer.Name)
		w.Int(70, 0)
		w.Int(62, layer.Color)
		w.String(6, "CONTINUOUS")
	}
	w.String(0, "ENDTAB")
	w.String(0, "ENDSEC")
}

func (d *Document) writeBlocks(w *core.Writer) {
	names := make([]string, 0, len(d.Blocks))
	for name := range d.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	w.String(0, "SECTION")
	w.String(2, "BLOCKS")
	for _, name := range names {
		block := d.Blocks[name]
		w.String(0, "BLOCK")
		w.String(8, entities.DefaultLayer)
		w.String(2, block.Name)
		w.Int(70, 0)
		w.Point(10, block.BasePoint)
		w.String(3, block.Name)
		for _, ent := range block.Entities {
			ent.Write(w)
		}
		w.String(0, "ENDBLK")
		w.String(8, entities.DefaultLayer)
	}
	w.String(0, "ENDSEC")
}
