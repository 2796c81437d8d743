package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/geodxf"
	"github.com/zooyer/geodxf/convert"
	"github.com/zooyer/geodxf/entities"
	"github.com/zooyer/geodxf/source"
)

type convertOptions struct {
	output    string
	precision int
	target    string
	style     string
	layer     string
}

var convertOpts convertOptions

var convertCmd = &cobra.Command{
	Use:   "convert [input]",
	Short: "把 WKT/GeoJSON 文件转换为 DXF",
	Long: `把输入文件中的几何对象转换为 DXF 实体。

默认按几何类型转换：点 -> POINT，折线/线环/多边形 -> 折线（样式由 --style 决定），
集合类几何展开为多个实体。指定 --target 时所有几何都按目标类型转换：
Line/Polyline/LWPolyline 生成 LWPOLYLINE，Point/DBPoint/BlockReference/Insert 生成 POINT。

未给出输入文件时弹出文件选择框，结束前等待按键。`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input string
		if len(args) > 0 {
			input = args[0]
		} else {
			// 双击启动：选择文件，结束后暂停以便查看输出
			defer xos.PauseExit()

			var err error
			if input, err = selectInput(); err != nil {
				return err
			}
		}
		return runConvert(input, convertOpts)
	},
}

func init() {
	flags := convertCmd.Flags()
	flags.StringVarP(&convertOpts.output, "output", "o", "", "输出 DXF 文件，默认与输入同名")
	flags.IntVarP(&convertOpts.precision, "precision", "p", -1, "保留的小数位数，负数表示不舍入")
	flags.StringVarP(&convertOpts.target, "target", "t", "", "目标实体类型，如 Polyline、DBPoint、BlockReference")
	flags.StringVarP(&convertOpts.style, "style", "s", "lw", "折线样式: lw | 3d | 2d | lines")
	flags.StringVarP(&convertOpts.layer, "layer", "l", "", "统一写入的图层，覆盖 GeoJSON 的 layer 属性")
	rootCmd.AddCommand(convertCmd)
}

func selectInput() (string, error) {
	name, err := zenity.SelectFile(
		zenity.Title("选择要转换的几何文件"),
		zenity.FileFilters{
			{Name: "几何文件", Patterns: []string{"*.wkt", "*.txt", "*.geojson", "*.json"}},
		},
	)
	if err == zenity.ErrCanceled {
		return "", errors.New("未选择文件")
	}
	return name, errors.Wrap(err, "选择文件")
}

func newConverter(precision int) *convert.Converter {
	if precision < 0 {
		return convert.NewConverter(nil)
	}
	return convert.NewConverter(convert.NewGeometryFactory(convert.NewFixedDecimals(precision), 0))
}

func runConvert(input string, opts convertOptions) error {
	style, err := convert.ParsePolylineStyle(opts.style)
	if err != nil {
		return err
	}

	if opts.target != "" {
		if _, ok := convert.ParseTargetKind(opts.target); !ok {
			return errors.WithStack(&convert.UnsupportedConversionError{TypeName: opts.target, GeometryType: "*"})
		}
	}

	features, err := source.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "读取 %s", input)
	}

	var (
		converter = newConverter(opts.precision)
		doc       = dxf.New()
	)

	fmt.Printf("开始处理: %d 个几何对象，精度 %s\n", len(features), converter.PrecisionModel())

	for i, f := range features {
		var ents []entities.Entity
		if opts.target != "" {
			ent, err := converter.ConvertByTypeName(opts.target, f.Geometry)
			if err != nil {
				return errors.Wrapf(err, "第 %d 个几何对象", i+1)
			}
			ents = []entities.Entity{ent}
		} else {
			if ents, err = converter.ConvertGeometry(f.Geometry, style); err != nil {
				return errors.Wrapf(err, "第 %d 个几何对象", i+1)
			}
		}

		layer := f.Layer
		if opts.layer != "" {
			layer = opts.layer
		}
		doc.Add(layer, ents...)

		if verbose {
			for _, ent := range ents {
				fmt.Printf("    [%03d] %s -> %s | 图层 %s\n", i+1, convert.GeometryTypeName(f.Geometry), ent.Type(), ent.Layer())
			}
		}
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".dxf"
	}
	if err = dxf.Create(output, doc); err != nil {
		return errors.Wrapf(err, "写入 %s", output)
	}

	fmt.Printf("写入文件: %s (%d 个实体, %d 个图层)\n", output, len(doc.Entities), len(doc.Layers))
	return nil
}
