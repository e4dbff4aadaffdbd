package curated

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesDistance(t *testing.T) {
	tables := DefaultTables()

	testCases := []struct {
		name   string
		a, b   string
		want   float64
		wantOk bool
	}{
		{name: "forward", a: "Surabaya", b: "Malang", want: 95.0, wantOk: true},
		{name: "reverse", a: "Malang", b: "Surabaya", want: 95.0, wantOk: true},
		{name: "jakarta bandung", a: "Jakarta", b: "Bandung", want: 151.0, wantOk: true},
		{name: "unknown pair", a: "Foo", b: "Bar", wantOk: false},
		{name: "full display name is not a key", a: "Surabaya, East Java", b: "Malang", wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.Distance(tt.a, tt.b)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTablesIntermediates(t *testing.T) {
	tables := DefaultTables()

	forward, ok := tables.Intermediates("Surabaya", "Malang")
	require.True(t, ok)
	names := make([]string, 0, len(forward))
	for _, p := range forward {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Sidoarjo", "Porong", "Pandaan", "Lawang"}, names)

	reversed, ok := tables.Intermediates("Malang", "Surabaya")
	require.True(t, ok)
	require.Len(t, reversed, 4)
	assert.Equal(t, "Lawang", reversed[0].Name)
	assert.Equal(t, "Sidoarjo", reversed[3].Name)

	// caller gets a copy
	forward[0].Name = "changed"
	again, _ := tables.Intermediates("Surabaya", "Malang")
	assert.Equal(t, "Sidoarjo", again[0].Name)

	_, ok = tables.Intermediates("Surabaya", "Gresik")
	assert.False(t, ok)
}

func TestTablesNamedWaypointsAndAreas(t *testing.T) {
	tables := DefaultTables()

	names, ok := tables.NamedWaypoints("Surabaya", "Gresik")
	require.True(t, ok)
	assert.Equal(t, []string{"Tandes", "Benowo"}, names)

	_, ok = tables.NamedWaypoints("Gresik", "Surabaya")
	assert.False(t, ok)

	testCases := []struct {
		name       string
		start, end string
		index      int
		want       string
		wantOk     bool
	}{
		{name: "forward first", start: "Surabaya", end: "Lamongan", index: 0, want: "Gresik", wantOk: true},
		{name: "forward last", start: "Surabaya", end: "Lamongan", index: 2, want: "Duduk Sampeyan", wantOk: true},
		{name: "reverse reads from the back", start: "Lamongan", end: "Surabaya", index: 0, want: "Duduk Sampeyan", wantOk: true},
		{name: "out of range", start: "Surabaya", end: "Lamongan", index: 3, wantOk: false},
		{name: "unknown", start: "Foo", end: "Bar", index: 0, wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tables.AreaName(tt.start, tt.end, tt.index)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTablesRoadsAndTolls(t *testing.T) {
	tables := DefaultTables()

	roads, ok := tables.Roads("Surabaya", RoadKey("Malang", NoTollVariant))
	require.True(t, ok)
	assert.Equal(t, "Jalan Ahmad Yani", roads[0])
	assert.Equal(t, "Jalan Raya Malang", roads[len(roads)-1])

	_, ok = tables.Roads("Malang", "Surabaya")
	assert.False(t, ok)

	tolls, ok := tables.Tolls("Malang", "Surabaya")
	require.True(t, ok)
	require.Len(t, tolls, 1)
	assert.Equal(t, "Surabaya-Malang Toll Road", tolls[0].Name)
	assert.Equal(t, 28000.0, tolls[0].Cost)
	assert.Equal(t, "IDR", tolls[0].Currency)

	assert.Equal(t, "Malang-Scenic", RoadKey("Malang", ScenicVariant))
	assert.Equal(t, "Malang", RoadKey("Malang", ""))
}

func TestBuilderIsolation(t *testing.T) {
	b := NewTablesBuilder().AddSymmetricDistance("A", "B", 10)
	first := b.Build()
	b.AddSymmetricDistance("A", "B", 20).AddCity("A", 1, 2).AddCity("A", 3, 4)
	second := b.Build()

	d, _ := first.Distance("A", "B")
	assert.Equal(t, 10.0, d)
	d, _ = second.Distance("B", "A")
	assert.Equal(t, 20.0, d)

	assert.Empty(t, first.Cities())
	require.Len(t, second.Cities(), 1)
	assert.Equal(t, 3.0, second.Cities()[0].Lat)
}

func TestLoadTables(t *testing.T) {
	t.Run("empty path gives the defaults", func(t *testing.T) {
		tables, err := LoadTables("")
		require.NoError(t, err)
		d, ok := tables.Distance("Surabaya", "Malang")
		require.True(t, ok)
		assert.Equal(t, 95.0, d)
	})

	t.Run("file is merged over the defaults", func(t *testing.T) {
		content := `distances:
  - from: Kediri
    to: Blitar
    km: 44
  - from: Surabaya
    to: Malang
    km: 90
  - from: Madiun
    to: Ngawi
    km: 30
    one_way: true
intermediates:
  - from: Kediri
    to: Blitar
    points:
      - name: Wlingi
        lat: -8.07
        lon: 112.32
roads:
  - from: Kediri
    to: Blitar
    variant: Scenic
    names: ["Jalan Raya Kediri", "Jalan Raya Blitar"]
tolls:
  - from: Kediri
    to: Blitar
    entries:
      - name: Kediri Toll Road
        operator: Jasa Marga
        cost: 9000
cities:
  - name: Kediri
    lat: -7.8480
    lon: 112.0178
`
		path := filepath.Join(t.TempDir(), "curated.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		tables, err := LoadTables(path)
		require.NoError(t, err)

		d, ok := tables.Distance("Blitar", "Kediri")
		require.True(t, ok)
		assert.Equal(t, 44.0, d)

		d, _ = tables.Distance("Malang", "Surabaya")
		assert.Equal(t, 90.0, d)

		_, ok = tables.Distance("Ngawi", "Madiun")
		assert.True(t, ok, "one-way entries are still found in either order")

		pts, ok := tables.Intermediates("Kediri", "Blitar")
		require.True(t, ok)
		assert.Equal(t, "Wlingi", pts[0].Name)

		roads, ok := tables.Roads("Kediri", RoadKey("Blitar", ScenicVariant))
		require.True(t, ok)
		assert.Len(t, roads, 2)

		tolls, ok := tables.Tolls("Kediri", "Blitar")
		require.True(t, ok)
		assert.Equal(t, "IDR", tolls[0].Currency)

		found := false
		for _, c := range tables.Cities() {
			if c.Name == "Kediri" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
