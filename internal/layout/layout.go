// Package layout places gallery tiles for each visualization mode and
// computes the measurements the screens need (title heights, container
// sizes). Coordinates are content coordinates, before scrolling.
package layout

import (
	"math"
	"strings"

	"github.com/depeter/folio/internal/scroll"
)

// Mode is a visualization mode of the gallery.
type Mode int

const (
	ModeList Mode = iota
	ModeCatalog
	ModePanoramic
)

var modeNames = []string{"list", "catalog", "panoramic"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Next cycles list -> catalog -> panoramic -> list.
func (m Mode) Next() Mode { return (m + 1) % Mode(len(modeNames)) }

// ParseMode accepts the config names; unknown names fall back to catalog.
func ParseMode(s string) (Mode, bool) {
	for i, n := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return Mode(i), true
		}
	}
	return ModeCatalog, false
}

// Modes lists every mode in button order.
func Modes() []Mode { return []Mode{ModeList, ModeCatalog, ModePanoramic} }

const (
	HeaderHeight = 64
	Padding      = 40
	Gap          = 24
	GroupTitleH  = 44

	TileW = 240
	TileH = 180

	ListThumbW = 200
	ListThumbH = 140
	ListTitleW = 560

	// TitleLineH is the height of one wrapped title line.
	TitleLineH = 20
)

// Tile is one placed item.
type Tile struct {
	Item  int
	Group int
	Rect  scroll.Rect // image box
	Title scroll.Rect // title box under (or beside) the image
}

// Heading is a placed group title.
type Heading struct {
	Group int
	Rect  scroll.Rect
}

// Input describes what to lay out.
type Input struct {
	Mode         Mode
	ViewW, ViewH float64   // visible area below the header
	Groups       [][]int   // item indexes per group, in order
	TitleHeights []float64 // measured title height per item
}

// Grid is a generated layout.
type Grid struct {
	Mode          Mode
	Cols          int
	Tiles         []Tile
	Headings      []Heading
	Width, Height float64 // content size
}

// Generate lays out all groups for in.Mode.
func Generate(in Input) Grid {
	switch in.Mode {
	case ModeList:
		return generateList(in)
	case ModePanoramic:
		return generatePanoramic(in)
	default:
		return generateCatalog(in)
	}
}

// Columns is how many catalog tiles fit across viewW, at least one.
func Columns(viewW float64) int {
	cols := int((viewW - 2*Padding + Gap) / (TileW + Gap))
	if cols < 1 {
		return 1
	}
	return cols
}

func generateCatalog(in Input) Grid {
	g := Grid{Mode: ModeCatalog, Cols: Columns(in.ViewW)}
	title := tallestTitle(in)
	y := float64(Padding)
	for gi, items := range in.Groups {
		if len(items) == 0 {
			continue
		}
		g.Headings = append(g.Headings, Heading{Group: gi, Rect: scroll.Rect{X: Padding, Y: y, W: in.ViewW - 2*Padding, H: GroupTitleH}})
		y += GroupTitleH

		for i, item := range items {
			col := i % g.Cols
			if col == 0 && i > 0 {
				y += TileH + title + Gap
			}
			x := Padding + float64(col)*(TileW+Gap)
			g.Tiles = append(g.Tiles, Tile{
				Item:  item,
				Group: gi,
				Rect:  scroll.Rect{X: x, Y: y, W: TileW, H: TileH},
				Title: scroll.Rect{X: x, Y: y + TileH, W: TileW, H: title},
			})
		}
		y += TileH + title + Gap
	}
	g.Width, g.Height = ContainerSize(g.Tiles)
	g.Width = maxf(g.Width, in.ViewW)
	g.Height = maxf(g.Height, y+Padding-Gap)
	return g
}

func generateList(in Input) Grid {
	g := Grid{Mode: ModeList, Cols: 1}
	title := tallestTitle(in)
	y := float64(Padding)
	for gi, items := range in.Groups {
		if len(items) == 0 {
			continue
		}
		g.Headings = append(g.Headings, Heading{Group: gi, Rect: scroll.Rect{X: Padding, Y: y, W: in.ViewW - 2*Padding, H: GroupTitleH}})
		y += GroupTitleH
		for _, item := range items {
			g.Tiles = append(g.Tiles, Tile{
				Item:  item,
				Group: gi,
				Rect:  scroll.Rect{X: Padding, Y: y, W: ListThumbW, H: ListThumbH},
				Title: scroll.Rect{X: Padding + ListThumbW + Gap, Y: y, W: ListTitleW, H: title},
			})
			y += maxf(ListThumbH, title) + Gap
		}
	}
	g.Width, g.Height = ContainerSize(g.Tiles)
	g.Width = maxf(g.Width, in.ViewW)
	g.Height = maxf(g.Height, y+Padding-Gap)
	return g
}

// GroupCols is how many tiles wide a group block is in panoramic mode: the
// smallest square that holds n tiles.
func GroupCols(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// GroupSize is the size of a panoramic group block of n tiles with the given
// title height, heading included.
func GroupSize(n int, title float64) (w, h float64) {
	if n <= 0 {
		return 0, 0
	}
	cols := GroupCols(n)
	rows := (n + cols - 1) / cols
	w = float64(cols)*TileW + float64(cols-1)*Gap
	h = GroupTitleH + float64(rows)*(TileH+title) + float64(rows-1)*Gap
	return w, h
}

// PanoramaWidth is the container width that gives the wrapped groups the
// aspect ratio of the view. Groups of average width are packed into rows of
// availW, and the height of those rows times aspect is the width.
func PanoramaWidth(widths, heights []float64, availW, gap, aspect float64) float64 {
	n := len(widths)
	if n == 0 || len(heights) != n || aspect <= 0 {
		return 0
	}
	var total, tallest float64
	for i := range widths {
		total += widths[i]
		tallest = maxf(tallest, heights[i])
	}
	avg := total / float64(n)
	perRow := max(1, int(math.Floor((availW+gap)/(avg+gap))))
	rows := (n + perRow - 1) / perRow
	height := float64(rows)*tallest + float64(max(0, rows-1))*gap
	return height * aspect
}

// generatePanoramic lays each group out as a square-ish block of tiles under
// its heading. The blocks wrap into rows inside a container whose width is
// matched to the view's aspect ratio, so the panorama scrolls both ways.
func generatePanoramic(in Input) Grid {
	g := Grid{Mode: ModePanoramic}
	title := tallestTitle(in)

	type block struct {
		group int
		items []int
		w, h  float64
	}
	var blocks []block
	var widths, heights []float64
	for gi, items := range in.Groups {
		if len(items) == 0 {
			continue
		}
		w, h := GroupSize(len(items), title)
		blocks = append(blocks, block{group: gi, items: items, w: w, h: h})
		widths = append(widths, w)
		heights = append(heights, h)
	}
	if len(blocks) == 0 {
		g.Width, g.Height = in.ViewW, in.ViewH
		return g
	}

	var aspect float64
	if in.ViewH > 0 {
		aspect = in.ViewW / in.ViewH
	}
	width := PanoramaWidth(widths, heights, in.ViewW-2*Padding, Gap, aspect)

	var x, y, rowH float64
	for _, b := range blocks {
		if x > 0 && x+b.w > width {
			x = 0
			y += rowH + Gap
			rowH = 0
		}
		ox, oy := Padding+x, Padding+y
		g.Headings = append(g.Headings, Heading{Group: b.group, Rect: scroll.Rect{X: ox, Y: oy, W: b.w, H: GroupTitleH}})

		cols := GroupCols(len(b.items))
		g.Cols = max(g.Cols, cols)
		for i, item := range b.items {
			tx := ox + float64(i%cols)*(TileW+Gap)
			ty := oy + GroupTitleH + float64(i/cols)*(TileH+title+Gap)
			g.Tiles = append(g.Tiles, Tile{
				Item:  item,
				Group: b.group,
				Rect:  scroll.Rect{X: tx, Y: ty, W: TileW, H: TileH},
				Title: scroll.Rect{X: tx, Y: ty + TileH, W: TileW, H: title},
			})
		}
		x += b.w + Gap
		rowH = maxf(rowH, b.h)
	}

	g.Width, g.Height = ContainerSize(g.Tiles)
	g.Width = maxf(g.Width, width+2*Padding, in.ViewW)
	g.Height = maxf(g.Height, in.ViewH)
	return g
}

// EqualizeTitleHeights gives every title the height of the tallest one, so
// tiles line up across rows and groups.
func EqualizeTitleHeights(heights []float64) []float64 {
	out := make([]float64, len(heights))
	var tallest float64
	for _, h := range heights {
		tallest = maxf(tallest, h)
	}
	for i := range out {
		out[i] = tallest
	}
	return out
}

// ContainerSize is the content size needed to hold tiles plus the outer
// padding on the far edges.
func ContainerSize(tiles []Tile) (w, h float64) {
	for _, t := range tiles {
		w = maxf(w, t.Rect.X+t.Rect.W, t.Title.X+t.Title.W)
		h = maxf(h, t.Rect.Y+t.Rect.H, t.Title.Y+t.Title.H)
	}
	if len(tiles) == 0 {
		return 0, 0
	}
	return w + Padding, h + Padding
}

// TitleLines converts a wrapped line count into a title box height.
func TitleLines(lines int) float64 {
	if lines < 1 {
		lines = 1
	}
	return float64(lines)*TitleLineH + 8
}

// tallestTitle is the single title height every tile in the grid uses.
func tallestTitle(in Input) float64 {
	var heights []float64
	for _, items := range in.Groups {
		for _, item := range items {
			heights = append(heights, titleHeight(in, item))
		}
	}
	if len(heights) == 0 {
		return TitleLines(1)
	}
	return EqualizeTitleHeights(heights)[0]
}

func titleHeight(in Input, item int) float64 {
	if item >= 0 && item < len(in.TitleHeights) && in.TitleHeights[item] > 0 {
		return in.TitleHeights[item]
	}
	return TitleLines(1)
}

func maxf(v float64, rest ...float64) float64 {
	for _, r := range rest {
		if r > v {
			v = r
		}
	}
	return v
}
