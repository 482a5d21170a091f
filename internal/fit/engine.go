package fit

import (
	"log"

	"github.com/memegrid/memegrid/internal/model"
)

// Font size bounds in px. The shrink floor is explicit: the historical
// behavior of shrinking without bound left caption overflow undefined,
// so anything below MinFontSize stays at MinFontSize and may overflow.
const (
	MaxFontSize        float32 = 40
	DefaultMinFontSize float32 = 8

	// FontSizeStep is the unit step used by both passes. Growth always
	// overshoots by exactly one step before correcting back down.
	FontSizeStep float32 = 1
)

// Measurer performs the synchronous layout reads the engine needs
// after each font-size write. Implementations wrap the real toolkit
// text measurement; tests substitute an arithmetic model.
type Measurer interface {
	// CaptionHeight returns the summed rendered heights of both caption
	// lines at the given font size. Empty lines contribute nothing.
	CaptionHeight(card *model.Card, size float32) float32

	// CardHeight returns the rendered height of the card's image box.
	CardHeight(card *model.Card) float32
}

// Result describes the outcome of one fit pass over a single card.
type Result struct {
	Size     float32
	FloorHit bool // MinFontSize reached and the caption still overflows
}

// Engine adjusts each card's shared caption font size so that the
// caption's rendered height never exceeds the card's rendered height.
// Fitting is per-card; a pass over the collection runs sequentially.
type Engine struct {
	measurer Measurer
	minSize  float32
	maxSize  float32
}

// NewEngine creates a fit engine with explicit size bounds. Zero or
// inverted bounds fall back to the defaults.
func NewEngine(measurer Measurer, minSize, maxSize float32) *Engine {
	if minSize <= 0 {
		minSize = DefaultMinFontSize
	}
	if maxSize <= 0 || maxSize < minSize {
		maxSize = MaxFontSize
	}
	return &Engine{
		measurer: measurer,
		minSize:  minSize,
		maxSize:  maxSize,
	}
}

// MinSize returns the configured shrink floor.
func (e *Engine) MinSize() float32 {
	return e.minSize
}

// MaxSize returns the configured growth ceiling.
func (e *Engine) MaxSize() float32 {
	return e.maxSize
}

// fits reports whether the caption fits inside the card at size.
func (e *Engine) fits(card *model.Card, size float32) bool {
	return e.measurer.CaptionHeight(card, size) <= e.measurer.CardHeight(card)
}

// clamp pins a starting size into the engine's bounds.
func (e *Engine) clamp(size float32) float32 {
	if size < e.minSize {
		return e.minSize
	}
	if size > e.maxSize {
		return e.maxSize
	}
	return size
}

// Fit shrinks the card's font size from its current value, one step at
// a time, until the caption fits or the floor is reached. Runs once per
// image load and for every card on a width-decreasing resize.
func (e *Engine) Fit(card *model.Card) Result {
	size := e.clamp(card.FontSize)
	for size > e.minSize && !e.fits(card, size) {
		size -= FontSizeStep
	}
	card.FontSize = size

	floorHit := !e.fits(card, size)
	if floorHit {
		log.Printf("Fit floor hit for card %s at %.0fpx, caption may overflow", card.ID, size)
	}
	return Result{Size: size, FloorHit: floorHit}
}

// Grow raises the card's font size one step at a time while the caption
// keeps fitting, up to the ceiling. The first failing step falls back
// to a single shrink pass from the over-grown size. Runs for every card
// on a width-increasing resize.
func (e *Engine) Grow(card *model.Card) Result {
	size := e.clamp(card.FontSize)
	if !e.fits(card, size) {
		// Current size already overflows; growing makes no sense.
		card.FontSize = size
		return e.Fit(card)
	}
	for size < e.maxSize {
		size += FontSizeStep
		card.FontSize = size
		if !e.fits(card, size) {
			return e.Fit(card)
		}
	}
	card.FontSize = size
	return Result{Size: size}
}

// Refit runs one pass over the whole collection, its direction picked
// by how the content width changed. Same-width resizes are a no-op.
func (e *Engine) Refit(cards []*model.Card, oldWidth, newWidth float32) {
	switch {
	case newWidth == oldWidth:
		return
	case newWidth < oldWidth:
		log.Printf("Refit shrink pass: width %.0f -> %.0f over %d cards", oldWidth, newWidth, len(cards))
		for _, card := range cards {
			e.Fit(card)
		}
	default:
		log.Printf("Refit grow pass: width %.0f -> %.0f over %d cards", oldWidth, newWidth, len(cards))
		for _, card := range cards {
			e.Grow(card)
		}
	}
}
