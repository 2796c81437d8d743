// Package source 从 WKT、GeoJSON 文件读取待转换的几何对象
package source

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// LayerProperty 是 GeoJSON 要素中指定图层名的属性
const LayerProperty = "layer"

// Feature 一个待转换的几何对象及其目标图层，Layer 为空表示使用默认图层
type Feature struct {
	Geometry geom.T
	Layer    string
}

// ReadFile 按扩展名选择读取方式：.wkt 或 .geojson/.json
func ReadFile(filename string) (features []Feature, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wkt", ".txt":
		return ReadWKT(file)
	case ".geojson", ".json":
		return ReadGeoJSON(file)
	default:
		return nil, errors.Errorf("不支持的文件类型 %q", ext)
	}
}

// ReadWKT 每行一个 WKT 几何，忽略空行和 # 开头的注释行
func ReadWKT(r io.Reader) ([]Feature, error) {
	var (
		features []Feature
		scanner  = bufio.NewScanner(r)
		line     int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := wkt.Unmarshal(text)
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 行", line)
		}
		features = append(features, Feature{Geometry: g})
	}

	return features, errors.Wrap(scanner.Err(), "读取 WKT")
}

// ReadGeoJSON 支持 FeatureCollection、Feature 以及裸几何对象
func ReadGeoJSON(r io.Reader) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "读取 GeoJSON")
	}

	var head struct {
		Type string `json:"type"`
	}
	if err = json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "解析 GeoJSON")
	}

	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(err, "解析 FeatureCollection")
		}
		features := make([]Feature, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry == nil {
				continue
			}
			features = append(features, Feature{Geometry: f.Geometry, Layer: layerOf(f.Properties)})
		}
		return features, nil
	case "Feature":
		var f geojson.Feature
		if err = json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "解析 Feature")
		}
		if f.Geometry == nil {
			return nil, nil
		}
		return []Feature{{Geometry: f.Geometry, Layer: layerOf(f.Properties)}}, nil
	default:
		var g geom.T
		if err = geojson.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrapf(err, "解析几何对象 %q", head.Type)
		}
		return []Feature{{Geometry: g}}, nil
	}
}

func layerOf(properties map[string]interface{}) string {
	if name, ok := properties[LayerProperty].(string); ok {
		return strings.TrimSpace(name)
	}
	return ""
}
