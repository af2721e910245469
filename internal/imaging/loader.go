package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// cachedImage is one decoded file with the metadata reported by LoadImageInfo.
type cachedImage struct {
	img    *image.NRGBA
	format string
	size   int64
}

// ImageCache keeps decoded images keyed by the exact path they were loaded
// from, so repeated tool calls do not hit the disk.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// Cached images remain in memory until Evict or Clear is called.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*cachedImage
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*cachedImage),
	}
}

// Load returns the image at path, decoding it on first use.
//
// The returned image is always an *image.NRGBA whose bounds start at (0,0).
// Callers must not modify it; use BufferFromImage for a private copy.
func (c *ImageCache) Load(path string) (*image.NRGBA, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

func (c *ImageCache) load(path string) (*cachedImage, error) {
	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	entry := &cachedImage{
		img:    imaging.Clone(img),
		format: format,
		size:   stat.Size(),
	}

	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*cachedImage)
	c.mu.Unlock()
}

// Evict removes the image loaded from path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that read the file: "png", "jpeg" or "gif".
	Format string `json:"format"`

	// OpaquePixels counts pixels with alpha >= 128, the ones that can
	// belong to a region.
	OpaquePixels int `json:"opaque_pixels"`

	// TransparentPixels counts the remaining pixels.
	TransparentPixels int `json:"transparent_pixels"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through cache and reports its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	bounds := entry.img.Bounds()
	opaque := 0
	pix := entry.img.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] >= regions.AlphaThreshold {
			opaque++
		}
	}

	return &ImageInfo{
		Width:             bounds.Dx(),
		Height:            bounds.Dy(),
		Format:            entry.format,
		OpaquePixels:      opaque,
		TransparentPixels: bounds.Dx()*bounds.Dy() - opaque,
		FileSizeBytes:     entry.size,
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of the image at path.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// LoadBuffer loads the image at path and returns a private pixel buffer for
// it, ready for regions.Engine.RestoreRegions.
func LoadBuffer(cache *ImageCache, path string) (*regions.PixelBuffer, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return BufferFromImage(img), nil
}
