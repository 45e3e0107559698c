// Package gallery builds the list of pictures shown by the viewer from a
// directory and its optional manifest.
package gallery

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/depeter/folio/internal/constants"
)

// DefaultGroup holds items the manifest does not place anywhere.
const DefaultGroup = "Gallery"

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Item is one picture.
type Item struct {
	File  string // name relative to the catalog dir
	Path  string // absolute or dir-joined path used for loading
	Title string
	Group string
	Href  string // file name of the item a click navigates to; empty means itself
	Size  int64
}

// Group is a named run of items in display order.
type Group struct {
	Name  string
	Items []int // indexes into Catalog.Items
}

type Catalog struct {
	Dir    string
	Title  string
	Items  []Item
	groups []Group
}

type manifest struct {
	Title  string          `toml:"title"`
	Groups []manifestGroup `toml:"group"`
	Items  []manifestItem  `toml:"item"`
}

type manifestGroup struct {
	Name string `toml:"name"`
}

type manifestItem struct {
	File  string `toml:"file"`
	Title string `toml:"title"`
	Group string `toml:"group"`
	Href  string `toml:"href"`
}

// Load scans dir for images, in file name order, and applies gallery.toml
// if present.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}

	m, err := readManifest(filepath.Join(dir, constants.ManifestName))
	if err != nil {
		return nil, err
	}

	c := &Catalog{Dir: dir, Title: m.Title}
	byFile := make(map[string]int)
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}
		byFile[e.Name()] = len(c.Items)
		c.Items = append(c.Items, Item{
			File:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			Title: titleFromFile(e.Name()),
			Group: DefaultGroup,
			Size:  size,
		})
	}

	for _, mi := range m.Items {
		idx, ok := byFile[mi.File]
		if !ok {
			log.Printf("gallery: manifest lists missing file %q", mi.File)
			continue
		}
		it := &c.Items[idx]
		if mi.Title != "" {
			it.Title = mi.Title
		}
		if mi.Group != "" {
			it.Group = mi.Group
		}
		if mi.Href != "" {
			if _, ok := byFile[mi.Href]; ok {
				it.Href = mi.Href
			} else {
				log.Printf("gallery: %q links to unknown file %q", mi.File, mi.Href)
			}
		}
	}

	c.groups = buildGroups(c.Items, m.Groups)
	return c, nil
}

func readManifest(path string) (*manifest, error) {
	m := &manifest{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// buildGroups orders groups as the manifest declares them, followed by any
// group only named by items, in first-seen order.
func buildGroups(items []Item, declared []manifestGroup) []Group {
	var groups []Group
	index := make(map[string]int)
	add := func(name string) {
		if _, ok := index[name]; !ok {
			index[name] = len(groups)
			groups = append(groups, Group{Name: name})
		}
	}
	for _, g := range declared {
		if g.Name != "" {
			add(g.Name)
		}
	}
	for i, it := range items {
		add(it.Group)
		gi := index[it.Group]
		groups[gi].Items = append(groups[gi].Items, i)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Items) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// New builds a catalog from items already in display order.
func New(title string, items []Item) *Catalog {
	for i := range items {
		if items[i].Group == "" {
			items[i].Group = DefaultGroup
		}
	}
	return &Catalog{Title: title, Items: items, groups: buildGroups(items, nil)}
}

// Groups returns the non-empty groups in display order.
func (c *Catalog) Groups() []Group { return c.groups }

// Find returns the index of the item with the given file name, or -1.
func (c *Catalog) Find(file string) int {
	for i := range c.Items {
		if c.Items[i].File == file {
			return i
		}
	}
	return -1
}

// Target resolves where clicking item i navigates to.
func (c *Catalog) Target(i int) int {
	if i < 0 || i >= len(c.Items) {
		return -1
	}
	if href := c.Items[i].Href; href != "" {
		if j := c.Find(href); j >= 0 {
			return j
		}
	}
	return i
}

// Paths lists every item path in catalog order.
func (c *Catalog) Paths() []string {
	paths := make([]string, len(c.Items))
	for i, it := range c.Items {
		paths[i] = it.Path
	}
	return paths
}

func titleFromFile(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	if base == "" {
		return name
	}
	return strings.ToUpper(base[:1]) + base[1:]
}
