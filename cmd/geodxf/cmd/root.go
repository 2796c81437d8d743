package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "geodxf",
	Short: "geodxf - 把 WKT/GeoJSON 几何转换为 DXF 图纸",
	Long: `geodxf 读取 WKT（每行一个几何）或 GeoJSON 文件，按精度模型舍入坐标后
生成 DXF 实体（POINT、LWPOLYLINE、POLYLINE、LINE），并写出 DXF 文件。

Examples:
  geodxf convert roads.geojson -o roads.dxf --precision 3
  geodxf convert wells.wkt --target BlockReference --layer 井
  geodxf convert                      # 弹出文件选择框
  geodxf inspect roads.dxf`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出每个几何对象的转换结果")
}
