package ui

import (
	"fyne.io/fyne/v2"

	"github.com/memegrid/memegrid/internal/model"
)

// captionStyle is the text style every caption line renders with.
var captionStyle = fyne.TextStyle{Bold: true}

// CanvasMeasurer implements the fit engine's measurement interface on
// top of the toolkit's synchronous text measurement. Every font-size
// write is observable through MeasureText immediately, so a fit loop
// never waits on a frame.
type CanvasMeasurer struct {
	cellWidth func() float32
}

// NewCanvasMeasurer creates a measurer. cellWidth reports the current
// width of one board cell and is consulted on every card-height read.
func NewCanvasMeasurer(cellWidth func() float32) *CanvasMeasurer {
	return &CanvasMeasurer{cellWidth: cellWidth}
}

// CaptionHeight returns the summed rendered heights of both caption
// lines at the given size. Empty lines contribute nothing.
func (m *CanvasMeasurer) CaptionHeight(card *model.Card, size float32) float32 {
	var h float32
	if card.TopText != "" {
		h += fyne.MeasureText(card.TopText, size, captionStyle).Height
	}
	if card.BottomText != "" {
		h += fyne.MeasureText(card.BottomText, size, captionStyle).Height
	}
	return h
}

// CardHeight returns the rendered height of the card's image box: the
// cell width bounded by the natural bitmap width, divided by the aspect
// ratio. Cards whose image has not loaded use the fallback box height.
func (m *CanvasMeasurer) CardHeight(card *model.Card) float32 {
	aspect := card.AspectRatio()
	if aspect == 0 {
		return CardFallbackH
	}

	w := m.cellWidth()
	if w <= 0 {
		w = CardMinWidth
	}
	if natural := float32(card.NaturalWidth); natural < w {
		// The box never renders the bitmap above natural size.
		w = natural
	}
	return w / aspect
}
