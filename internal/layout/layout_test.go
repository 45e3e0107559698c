package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, ok := ParseMode(" Panoramic ")
	assert.True(t, ok)
	assert.Equal(t, ModePanoramic, m)

	m, ok = ParseMode("grid")
	assert.False(t, ok)
	assert.Equal(t, ModeCatalog, m)

	assert.Equal(t, "list", ModeList.String())
	assert.Equal(t, ModeList, ModePanoramic.Next())
	assert.Equal(t, "unknown", Mode(7).String())
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(100))
	// 2*40 padding, then n*240 + (n-1)*24 must fit.
	assert.Equal(t, 4, Columns(80+4*240+3*24))
	assert.Equal(t, 3, Columns(80+4*240+3*24-1))
}

func TestEqualizeTitleHeights(t *testing.T) {
	in := []float64{28, 48, 28, 68, 28}
	got := EqualizeTitleHeights(in)
	assert.Equal(t, []float64{68, 68, 68, 68, 68}, got)
	assert.Equal(t, []float64{28, 48, 28, 68, 28}, in, "input untouched")

	assert.Empty(t, EqualizeTitleHeights(nil))
}

func TestCatalogTitlesShareTallestHeight(t *testing.T) {
	viewW := float64(80 + 2*240 + 24) // two columns
	g := Generate(Input{
		Mode:         ModeCatalog,
		ViewW:        viewW,
		ViewH:        600,
		Groups:       [][]int{{0, 1, 2}, {}, {3}},
		TitleHeights: []float64{28, 68, 28, 48},
	})
	require.Equal(t, 2, g.Cols)
	require.Len(t, g.Tiles, 4)
	require.Len(t, g.Headings, 2, "empty groups get no heading")

	t0, t1, t2, t3 := g.Tiles[0], g.Tiles[1], g.Tiles[2], g.Tiles[3]
	assert.Equal(t, t0.Rect.Y, t1.Rect.Y)
	for _, tile := range g.Tiles {
		assert.Equal(t, 68.0, tile.Title.H, "item %d", tile.Item)
	}
	assert.Equal(t, float64(Padding+TileW+Gap), t1.Rect.X)

	// Second row starts below the equalized titles.
	assert.Equal(t, t0.Rect.Y+TileH+68+Gap, t2.Rect.Y)
	assert.Equal(t, float64(Padding), t2.Rect.X)

	// Next group: heading after the last row, then its tile.
	h := g.Headings[1]
	assert.Equal(t, 2, h.Group)
	assert.Equal(t, t2.Rect.Y+TileH+68+Gap, h.Rect.Y)
	assert.Equal(t, h.Rect.Y+GroupTitleH, t3.Rect.Y)

	assert.Equal(t, t3.Title.Y+t3.Title.H+Padding, g.Height)
	assert.Equal(t, viewW, g.Width)
}

func TestListMode(t *testing.T) {
	g := Generate(Input{
		Mode:         ModeList,
		ViewW:        1200,
		Groups:       [][]int{{0, 1}},
		TitleHeights: []float64{200, 0},
	})
	require.Len(t, g.Tiles, 2)
	assert.Equal(t, 1, g.Cols)
	first, second := g.Tiles[0], g.Tiles[1]
	assert.Equal(t, first.Rect.Y+200+Gap, second.Rect.Y, "tall title pushes the next row")
	assert.Equal(t, 200.0, second.Title.H)
	assert.Equal(t, float64(Padding+ListThumbW+Gap), first.Title.X)
}

func TestListTitlesEqualizedAcrossGroups(t *testing.T) {
	g := Generate(Input{
		Mode:         ModeList,
		ViewW:        1200,
		Groups:       [][]int{{0}, {1}},
		TitleHeights: []float64{28, 68},
	})
	require.Len(t, g.Tiles, 2)
	require.Len(t, g.Headings, 2)
	assert.Equal(t, 68.0, g.Tiles[0].Title.H)
	assert.Equal(t, 68.0, g.Tiles[1].Title.H)
	assert.Equal(t, g.Tiles[0].Rect.Y+ListThumbH+Gap, g.Headings[1].Rect.Y)
}

func TestGroupSize(t *testing.T) {
	assert.Equal(t, 1, GroupCols(0))
	assert.Equal(t, 1, GroupCols(1))
	assert.Equal(t, 2, GroupCols(4))
	assert.Equal(t, 3, GroupCols(5))

	w, h := GroupSize(4, 28)
	assert.Equal(t, 2*240.0+24, w)
	assert.Equal(t, 44+2*(180.0+28)+24, h)

	w, h = GroupSize(0, 28)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestPanoramaWidth(t *testing.T) {
	widths := []float64{300, 300, 300, 300}
	heights := []float64{200, 250, 200, 200}

	tests := []struct {
		name   string
		availW float64
		aspect float64
		want   float64
	}{
		// Two groups per row, two rows of the tallest group.
		{"two per row", 700, 2, (2*250 + 20) * 2},
		// Narrower than one group still places one per row.
		{"one per row", 100, 2, (4*250 + 3*20) * 2},
		{"all in one row", 2000, 1.5, 250 * 1.5},
		{"no aspect", 700, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PanoramaWidth(widths, heights, tt.availW, 20, tt.aspect), 1e-9)
		})
	}

	assert.Zero(t, PanoramaWidth(nil, nil, 700, 20, 2))
}

func TestPanoramicGroupsFitAspectWidth(t *testing.T) {
	g := Generate(Input{
		Mode:   ModePanoramic,
		ViewW:  1200,
		ViewH:  600,
		Groups: [][]int{{0, 1, 2, 3}, {4}, {5, 6}},
	})
	require.Len(t, g.Tiles, 7)
	require.Len(t, g.Headings, 3)
	assert.Equal(t, 2, g.Cols)

	// Blocks 504, 240 and 504 wide average 416: two per row in 1120, two
	// rows of 484 plus a gap is 992 tall, times the 2:1 view is 1984.
	assert.Equal(t, 1984.0+2*Padding, g.Width)
	assert.Equal(t, 600.0, g.Height)

	// All three blocks fit in 1984 so they share one row.
	for _, h := range g.Headings {
		assert.Equal(t, float64(Padding), h.Rect.Y)
	}
	assert.Equal(t, float64(Padding+504+Gap+240+Gap), g.Headings[2].Rect.X)

	// Group 0 is a 2x2 block under its heading.
	t3 := g.Tiles[3]
	assert.Equal(t, float64(Padding+TileW+Gap), t3.Rect.X)
	assert.Equal(t, float64(Padding+GroupTitleH+TileH+28+Gap), t3.Rect.Y)
	assert.Equal(t, TitleLines(1), t3.Title.H)
}

func TestPanoramicWrapsIntoRows(t *testing.T) {
	groups := make([][]int, 6)
	for i := range groups {
		groups[i] = []int{4 * i, 4*i + 1, 4*i + 2, 4*i + 3}
	}
	g := Generate(Input{Mode: ModePanoramic, ViewW: 1200, ViewH: 600, Groups: groups})
	require.Len(t, g.Headings, 6)

	// Six 504x484 blocks, two per 1120 row, three rows: 1500 tall, 3000 wide.
	for _, h := range g.Headings[:5] {
		assert.Equal(t, float64(Padding), h.Rect.Y)
	}
	last := g.Headings[5]
	assert.Equal(t, float64(Padding), last.Rect.X)
	assert.Equal(t, float64(Padding+484+Gap), last.Rect.Y)

	assert.Equal(t, 3000.0+2*Padding, g.Width)
	assert.Equal(t, float64(Padding+484+Gap+484+Padding), g.Height)
	assert.Greater(t, g.Height, 600.0, "panorama scrolls vertically too")
}

func TestPanoramicEmpty(t *testing.T) {
	g := Generate(Input{Mode: ModePanoramic, ViewW: 800, ViewH: 500, Groups: [][]int{{}}})
	assert.Empty(t, g.Tiles)
	assert.Equal(t, 800.0, g.Width)
	assert.Equal(t, 500.0, g.Height)
}

func TestContainerSizeEmpty(t *testing.T) {
	w, h := ContainerSize(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
