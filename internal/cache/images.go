package cache

import (
	"bufio"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"
)

// ImageCache loads gallery images from disk in the background and keeps
// them in memory.
type ImageCache struct {
	memory  sync.Map // path -> *ebiten.Image
	loading sync.Map // path -> *loadEntry (in-flight dedup with waiters)
	sem     *semaphore.Weighted

	mu       sync.Mutex
	progress Progress
	expected map[string]bool
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

// Progress summarises the loads the splash screen waits for.
type Progress struct {
	Total      int
	Loaded     int
	Failed     int
	Bytes      int64 // bytes decoded so far
	TotalBytes int64 // sum of file sizes when known
	LastErr    string
}

// Done reports whether every expected image has either loaded or failed.
func (p Progress) Done() bool { return p.Loaded+p.Failed >= p.Total }

// Fraction is the share of finished loads in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Loaded+p.Failed) / float64(p.Total)
}

// NewImageCache creates a cache that decodes at most workers files at once.
func NewImageCache(workers int) *ImageCache {
	if workers <= 0 {
		workers = 4
	}
	return &ImageCache{
		sem:      semaphore.NewWeighted(int64(workers)),
		expected: make(map[string]bool),
	}
}

// Expect registers paths whose loads count towards Progress. totalBytes is
// the combined size of those files, or 0 if unknown.
func (ic *ImageCache) Expect(paths []string, totalBytes int64) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	for _, p := range paths {
		if !ic.expected[p] {
			ic.expected[p] = true
			ic.progress.Total++
		}
	}
	ic.progress.TotalBytes += totalBytes
}

// Progress returns a snapshot of the expected loads.
func (ic *ImageCache) Progress() Progress {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.progress
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(path string) *ebiten.Image {
	if v, ok := ic.memory.Load(path); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync starts loading an image in the background.
// The callback is called with the image when ready (may be called from a goroutine).
func (ic *ImageCache) LoadAsync(path string, callback func(*ebiten.Image)) {
	if v, ok := ic.memory.Load(path); ok {
		callback(v.(*ebiten.Image))
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(path, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(path)

		if err := ic.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer ic.sem.Release(1)

		img, n, err := DecodeFile(path)
		if err != nil {
			log.Printf("Failed to load image %s: %v", path, err)
			ic.record(path, 0, err)
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		ic.memory.Store(path, eimg)
		ic.record(path, n, nil)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

func (ic *ImageCache) record(path string, n int64, err error) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	if !ic.expected[path] {
		return
	}
	delete(ic.expected, path)
	if err != nil {
		ic.progress.Failed++
		ic.progress.LastErr = err.Error()
		return
	}
	ic.progress.Loaded++
	ic.progress.Bytes += n
}

// DecodeFile decodes the image at path and reports how many bytes were read.
func DecodeFile(path string) (image.Image, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	cr := &countingReader{r: f}
	img, _, err := image.Decode(bufio.NewReader(cr))
	if err != nil {
		return nil, cr.n, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, cr.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Clear drops every decoded image. Loads still in flight store theirs
// when they finish.
func (ic *ImageCache) Clear() {
	ic.memory.Clear()
}
