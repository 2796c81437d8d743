package convert

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/zooyer/geodxf/core"
)

func twoDecimals() *Converter {
	return NewConverter(NewGeometryFactory(NewFixedDecimals(2), 0))
}

func TestNewConverter_Default(t *testing.T) {
	c := NewConverter(nil)
	assert.Equal(t, Floating, c.PrecisionModel().Type())
	assert.Equal(t, 0, c.SRID())

	p := c.ToPoint3D(geom.XY, geom.Coord{1.23456789, 2.3456789})
	assert.Equal(t, core.Point{X: 1.23456789, Y: 2.3456789}, p)
}

func TestNewConverter_CopiesFactory(t *testing.T) {
	factory := NewGeometryFactory(NewFixedDecimals(1), 4326)
	c := NewConverter(factory)
	factory.PrecisionModel = NewFloating()

	assert.Equal(t, Fixed, c.PrecisionModel().Type())
	assert.Equal(t, 4326, c.SRID())
}

func TestToPoint_UndefinedZ(t *testing.T) {
	c := twoDecimals()
	coord := geom.Coord{1.23456, 2.34567, math.NaN()}

	assert.Equal(t, core.Point{X: 1.23, Y: 2.35, Z: 0}, c.ToPoint3D(geom.XYZ, coord))
	assert.Equal(t, core.Point2D{X: 1.23, Y: 2.35}, c.ToPoint2D(coord))
}

func TestToPoint3D_Layouts(t *testing.T) {
	c := twoDecimals()

	cases := []struct {
		name   string
		layout geom.Layout
		coord  geom.Coord
		want   core.Point
	}{
		{"XY", geom.XY, geom.Coord{1.006, -2.004}, core.Point{X: 1.01, Y: -2}},
		{"XYZ", geom.XYZ, geom.Coord{1, 2, 3.456}, core.Point{X: 1, Y: 2, Z: 3.46}},
		{"XYM 的 M 不是 Z", geom.XYM, geom.Coord{1, 2, 99}, core.Point{X: 1, Y: 2}},
		{"XYZM", geom.XYZM, geom.Coord{1, 2, 3, 4}, core.Point{X: 1, Y: 2, Z: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.ToPoint3D(tc.layout, tc.coord)
			assert.InDelta(t, tc.want.X, got.X, 1e-12)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tc.want.Z, got.Z, 1e-12)
			assert.False(t, math.IsNaN(got.Z))
		})
	}
}

func TestPointOverloads(t *testing.T) {
	c := twoDecimals()
	p := geom.NewPoint(geom.XYZ).MustSetCoords(geom.Coord{10.111, 20.222, 30.333})

	assert.Equal(t, core.Point{X: 10.11, Y: 20.22, Z: 30.33}, c.PointToPoint3D(p))
	assert.Equal(t, core.Point2D{X: 10.11, Y: 20.22}, c.PointToPoint2D(p))

	ent := c.ToPointEntity(p)
	assert.Equal(t, "POINT", ent.Type())
	assert.Equal(t, core.Point{X: 10.11, Y: 20.22, Z: 30.33}, ent.Location)
}

func TestToLWPolyline_RawCoordinates(t *testing.T) {
	c := twoDecimals()
	ls := geom.NewLineString(geom.XYZ).MustSetCoords([]geom.Coord{
		{0.123, 0.456, 7}, {1.999, 2.001, 8}, {3, 4, 9},
	})

	pl := c.ToLWPolyline(ls)
	require.Len(t, pl.Vertices, 3)
	// 折线不经过精度模型
	assert.Equal(t, []core.Point2D{{X: 0.123, Y: 0.456}, {X: 1.999, Y: 2.001}, {X: 3, Y: 4}}, pl.Vertices)
	assert.False(t, pl.Closed)
	assert.Equal(t, len(pl.Vertices), cap(pl.Vertices))
}

func TestToLWPolyline_ClosedByEndpoints(t *testing.T) {
	c := NewConverter(nil)

	closed := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	assert.True(t, c.ToLWPolyline(closed).Closed)

	almost := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 1e-12}})
	assert.False(t, c.ToLWPolyline(almost).Closed)

	// Z 不参与首尾比较
	zOnly := geom.NewLineString(geom.XYZ).MustSetCoords([]geom.Coord{{0, 0, 0}, {1, 1, 1}, {0, 0, 5}})
	assert.True(t, c.ToLWPolyline(zOnly).Closed)
}

func TestRingToLWPolyline(t *testing.T) {
	c := twoDecimals()
	ring := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{
		{0.001, 0.004}, {10.126, 0}, {10, 10}, {0.001, 0.004},
	})

	pl := c.RingToLWPolyline(ring)
	assert.True(t, pl.Closed)
	assert.Equal(t, []core.Point2D{{X: 0, Y: 0}, {X: 10.13, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}, pl.Vertices)

	// 线环无论首尾是否相同都视为闭合
	open := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}})
	assert.True(t, c.RingToLWPolyline(open).Closed)
}

func TestToLWPolylineSet(t *testing.T) {
	c := NewConverter(nil)
	shell := []geom.Coord{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole1 := []geom.Coord{{1, 1}, {2, 1}, {2, 2}, {1, 1}}
	hole2 := []geom.Coord{{5, 5}, {6, 5}, {6, 6}, {5, 5}}
	p := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{shell, hole1, hole2})

	set := c.ToLWPolylineSet(p)
	require.Len(t, set, 3)
	for i, ring := range [][]geom.Coord{shell, hole1, hole2} {
		assert.True(t, set[i].Closed)
		require.Len(t, set[i].Vertices, len(ring))
		for j, coord := range ring {
			assert.Equal(t, core.Point2D{X: coord.X(), Y: coord.Y()}, set[i].Vertices[j])
		}
	}

	noHoles := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{shell})
	assert.Len(t, c.ToLWPolylineSet(noHoles), 1)
}

func TestToPolyline3D(t *testing.T) {
	c := twoDecimals()
	ls := geom.NewLineString(geom.XYZ).MustSetCoords([]geom.Coord{
		{0, 0, math.NaN()}, {1.111, 2.222, 3.333}, {0, 0, 1},
	})

	pl := c.ToPolyline3D(ls)
	assert.True(t, pl.Is3D())
	assert.True(t, pl.Closed())
	assert.Equal(t, []core.Point{{}, {X: 1.11, Y: 2.22, Z: 3.33}, {Z: 1}}, pl.Vertices)

	open := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 1}})
	assert.False(t, c.ToPolyline3D(open).Closed())

	ring := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}})
	rp := c.RingToPolyline3D(ring)
	assert.True(t, rp.Is3D())
	assert.True(t, rp.Closed())
	assert.Len(t, rp.Vertices, 3)
}

func TestToPolyline2D(t *testing.T) {
	c := twoDecimals()
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0.004, 0}, {5, 5.556}})

	pl := c.ToPolyline2D(ls)
	assert.False(t, pl.Is3D())
	assert.False(t, pl.Closed())
	assert.Zero(t, pl.Elevation)
	assert.Zero(t, pl.StartWidth)
	assert.Zero(t, pl.EndWidth)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 5, Y: 5.56}}, pl.Vertices)

	ring := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}})
	assert.True(t, c.RingToPolyline2D(ring).Closed())
}

func TestToLine(t *testing.T) {
	c := twoDecimals()
	seg := NewLineSegment(geom.XYZ, geom.Coord{1.234, 5.678, math.NaN()}, geom.Coord{9.876, 5.432, 1.001})

	line := c.ToLine(seg)
	assert.Equal(t, "LINE", line.Type())
	assert.Equal(t, core.Point{X: 1.23, Y: 5.68}, line.Start)
	assert.Equal(t, core.Point{X: 9.88, Y: 5.43, Z: 1}, line.End)
}

func TestSegments(t *testing.T) {
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {1, 1}})
	segs := Segments(ls)
	require.Len(t, segs, 2)
	assert.Equal(t, geom.Coord{1, 0}, segs[0].P1)
	assert.Equal(t, geom.Coord{1, 0}, segs[1].P0)

	single := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}})
	assert.Nil(t, Segments(single))
}

func TestConverter_Concurrent(t *testing.T) {
	c := twoDecimals()
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1.005, 1}, {0, 0}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pl := c.ToPolyline3D(ls)
			assert.True(t, pl.Closed())
			assert.Len(t, pl.Vertices, 3)
		}()
	}
	wg.Wait()
}

func TestEmptyPoint_ZeroLocation(t *testing.T) {
	c := twoDecimals()
	empty := geom.NewPointEmpty(geom.XYZ)

	assert.NotPanics(t, func() {
		assert.Equal(t, core.Point{}, c.PointToPoint3D(empty))
		assert.Equal(t, core.Point2D{}, c.PointToPoint2D(empty))
		assert.Equal(t, core.Point{}, c.ToPointEntity(empty).Location)
	})
}
