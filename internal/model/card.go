package model

import (
	"strings"
	"time"
)

// Card represents a single generated meme card: one image plus a
// two-line caption overlay sharing a single font size.
type Card struct {
	ID         string
	ImageURL   string
	TopText    string  // upper-cased caption line rendered at the top
	BottomText string  // upper-cased caption line rendered at the bottom
	FontSize   float32 // shared caption size in px, adjusted by the fit engine
	Armed      bool    // delete-confirmation curtain currently visible
	Status     CardStatus

	// Natural bitmap dimensions; zero until the image has loaded.
	NaturalWidth  int
	NaturalHeight int

	CreatedAt time.Time
}

// NormalizeCaption cleans a raw caption line for display: control
// whitespace is collapsed to spaces, the result is trimmed and
// upper-cased. Empty captions are valid and stay empty.
func NormalizeCaption(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.TrimSpace(s)
	return strings.ToUpper(s)
}

// HasCaption returns true if at least one caption line is non-empty.
func (c *Card) HasCaption() bool {
	return c.TopText != "" || c.BottomText != ""
}

// AspectRatio returns width/height of the natural bitmap, or 0 when
// the image has not loaded yet.
func (c *Card) AspectRatio() float32 {
	if c.NaturalWidth <= 0 || c.NaturalHeight <= 0 {
		return 0
	}
	return float32(c.NaturalWidth) / float32(c.NaturalHeight)
}

// GetDisplayTitle returns the top caption, the bottom caption, or the
// image URL in order of preference. Used for notifications and logs.
func (c *Card) GetDisplayTitle() string {
	if c.TopText != "" {
		return c.TopText
	}
	if c.BottomText != "" {
		return c.BottomText
	}
	return c.ImageURL
}
