package imageload

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"time"

	// Register the decoders for the formats a meme source realistically serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// Fetch limits
const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 16 << 20 // 16 MiB cap on a single bitmap
)

// Loaded is a successfully fetched and decoded card bitmap.
type Loaded struct {
	Image  image.Image
	Width  int // natural width in px
	Height int // natural height in px
}

// Fetcher downloads and decodes card bitmaps. One fetch per card, no
// retries: a failed load marks the card broken and the UI shows its
// alt text fallback.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher creates a fetcher with default timeout and size cap.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: DefaultTimeout},
		maxBytes: DefaultMaxBytes,
	}
}

// NewFetcherWithClient creates a fetcher around an existing client.
// Used by tests to point at a local server.
func NewFetcherWithClient(client *http.Client, maxBytes int64) *Fetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Fetcher{client: client, maxBytes: maxBytes}
}

// Fetch downloads the image at url and decodes it. The natural
// dimensions come straight from the decoded bitmap.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Loaded, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}

	bounds := img.Bounds()
	log.Printf("Image loaded: url=%s format=%s size=%dx%d", url, format, bounds.Dx(), bounds.Dy())

	return &Loaded{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// Preview scales a decoded bitmap down to the card box width,
// preserving aspect ratio. Images narrower than the box are returned
// unchanged; the card box never upscales its bitmap.
func Preview(img image.Image, boxWidth float32) image.Image {
	if img == nil || boxWidth <= 0 {
		return img
	}
	if float32(img.Bounds().Dx()) <= boxWidth {
		return img
	}
	return resize.Resize(uint(boxWidth), 0, img, resize.Lanczos3)
}
