package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestReadWKT(t *testing.T) {
	input := `# 测试数据
POINT (1 2)

LINESTRING (0 0, 1 1, 2 0)
POLYGON ((0 0, 4 0, 4 4, 0 0), (1 1, 2 1, 2 2, 1 1))
`
	features, err := ReadWKT(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, features, 3)

	assert.IsType(t, &geom.Point{}, features[0].Geometry)
	ls := features[1].Geometry.(*geom.LineString)
	assert.Equal(t, 3, ls.NumCoords())
	assert.Equal(t, 2, features[2].Geometry.(*geom.Polygon).NumLinearRings())
	assert.Empty(t, features[0].Layer)
}

func TestReadWKT_Error(t *testing.T) {
	_, err := ReadWKT(strings.NewReader("POINT (1 2)\nLINESTRING (0 0,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第 2 行")
}

func TestReadGeoJSON_FeatureCollection(t *testing.T) {
	input := `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"layer": "道路"},
     "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}},
    {"type": "Feature", "properties": {"name": "井"},
     "geometry": {"type": "Point", "coordinates": [5, 6, 7]}},
    {"type": "Feature", "properties": {}, "geometry": null}
  ]
}`
	features, err := ReadGeoJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "道路", features[0].Layer)
	assert.Equal(t, "", features[1].Layer)

	p := features[1].Geometry.(*geom.Point)
	assert.Equal(t, geom.XYZ, p.Layout())
	assert.Equal(t, 7.0, p.Z())
}

func TestReadGeoJSON_FeatureAndGeometry(t *testing.T) {
	features, err := ReadGeoJSON(strings.NewReader(`{"type": "Feature", "properties": {"layer": "L1"},
  "geometry": {"type": "Point", "coordinates": [1, 2]}}`))
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "L1", features[0].Layer)

	features, err = ReadGeoJSON(strings.NewReader(`{"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}`))
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.IsType(t, &geom.Polygon{}, features[0].Geometry)

	_, err = ReadGeoJSON(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	wktFile := filepath.Join(dir, "in.wkt")
	require.NoError(t, os.WriteFile(wktFile, []byte("POINT (1 2)\n"), 0644))
	features, err := ReadFile(wktFile)
	require.NoError(t, err)
	assert.Len(t, features, 1)

	jsonFile := filepath.Join(dir, "in.geojson")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"type": "Point", "coordinates": [1, 2]}`), 0644))
	features, err = ReadFile(jsonFile)
	require.NoError(t, err)
	assert.Len(t, features, 1)

	other := filepath.Join(dir, "in.shp")
	require.NoError(t, os.WriteFile(other, nil, 0644))
	_, err = ReadFile(other)
	assert.Error(t, err)
}
