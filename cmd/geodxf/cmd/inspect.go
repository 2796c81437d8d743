package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/geodxf"
	"github.com/zooyer/geodxf/core"
	"github.com/zooyer/geodxf/entities"
	"github.com/zooyer/geodxf/utils"
)

var (
	inspectEpsilon float64
	inspectCSV     string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.dxf>",
	Short: "统计 DXF 图纸中的图层、实体和范围",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := dxf.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "打开 %s", args[0])
		}
		report(os.Stdout, doc)
		if inspectCSV != "" {
			return writeCSV(doc, inspectCSV)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().Float64VarP(&inspectEpsilon, "epsilon", "e", 1e-6, "判断折线首尾近似重合的容差")
	inspectCmd.Flags().StringVar(&inspectCSV, "csv", "", "把每个实体的类型、图层、范围写入 CSV")
	rootCmd.AddCommand(inspectCmd)
}

func report(w io.Writer, doc *dxf.Document) {
	layers := make([]string, 0, len(doc.Layers))
	for _, layer := range doc.Layers {
		layers = append(layers, layer.Name)
	}
	sort.Strings(layers)
	fmt.Fprintf(w, "图层 (%d): %s\n", len(layers), strings.Join(layers, ", "))

	counts := make(map[string]int)
	for _, ent := range doc.Entities {
		counts[ent.Type()]++
	}
	types := make([]string, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	sort.Strings(types)
	fmt.Fprintf(w, "实体 (%d):\n", len(doc.Entities))
	for _, typ := range types {
		fmt.Fprintf(w, "    %-12s %d\n", typ, counts[typ])
	}

	if box, ok := utils.Extents(doc); ok {
		fmt.Fprintf(w, "范围: RECTANG %.3f,%.3f %.3f,%.3f\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	}

	for i, ent := range doc.Entities {
		switch e := ent.(type) {
		case *entities.Insert:
			if len(e.Attributes) == 0 {
				continue
			}
			var pairs []string
			for _, tag := range utils.AttrTags(e) {
				pairs = append(pairs, tag+":"+utils.GetAttr(e, tag))
			}
			fmt.Fprintf(w, "    [%d] INSERT %s | %s\n", i+1, e.BlockName, strings.Join(pairs, " "))
		case *entities.LWPolyline:
			if !e.Closed && len(e.Vertices) > 2 && nearlyClosed(e.Vertices[0].XYZ(), e.Vertices[len(e.Vertices)-1].XYZ()) {
				fmt.Fprintf(w, "    [%d] LWPOLYLINE 首尾近似重合但未闭合 | 图层 %s\n", i+1, e.Layer())
			}
		case *entities.Polyline:
			if !e.Closed() && len(e.Vertices) > 2 && nearlyClosed(e.Vertices[0], e.Vertices[len(e.Vertices)-1]) {
				fmt.Fprintf(w, "    [%d] POLYLINE 首尾近似重合但未闭合 | 图层 %s\n", i+1, e.Layer())
			}
		}
	}
}

func nearlyClosed(first, last core.Point) bool {
	return xmath.Equal(first.X, last.X, inspectEpsilon) && xmath.Equal(first.Y, last.Y, inspectEpsilon)
}

func writeCSV(doc *dxf.Document, filename string) error {
	const header = "序号,类型,图层,最小X,最小Y,最大X,最大Y\n"
	if err := os.WriteFile(filename, []byte(header), 0644); err != nil {
		return err
	}

	for i, ent := range doc.Entities {
		box := utils.GetEntityBBoxWCS(doc, ent)
		var line = fmt.Sprintf("%d,%s,%s,%f,%f,%f,%f\n",
			i+1, ent.Type(), ent.Layer(), box.Min.X, box.Min.Y, box.Max.X, box.Max.Y,
		)
		if err := xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return err
		}
	}

	fmt.Println("写入文件:", filename)
	return nil
}
