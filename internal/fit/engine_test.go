package fit

import (
	"testing"

	"github.com/memegrid/memegrid/internal/model"
)

// fakeMeasurer models rendered heights arithmetically: every non-empty
// caption line is lineFactor*size tall and the card box height is fixed.
type fakeMeasurer struct {
	lineFactor float32
	boxHeight  float32
}

func (m *fakeMeasurer) CaptionHeight(card *model.Card, size float32) float32 {
	var h float32
	if card.TopText != "" {
		h += m.lineFactor * size
	}
	if card.BottomText != "" {
		h += m.lineFactor * size
	}
	return h
}

func (m *fakeMeasurer) CardHeight(card *model.Card) float32 {
	return m.boxHeight
}

func newCard(size float32) *model.Card {
	return &model.Card{
		ID:         "card-test",
		TopText:    "HELLO",
		BottomText: "WORLD",
		FontSize:   size,
	}
}

func TestEngine_FitShrinksToLargestFittingSize(t *testing.T) {
	// Two lines at 2*size each fit iff 4*size <= 100, so 25 is maximal.
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 100}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(40)
	result := engine.Fit(card)

	if result.Size != 25 {
		t.Errorf("Fit() size = %.0f, expected 25", result.Size)
	}
	if result.FloorHit {
		t.Error("Fit() should not report floor hit when a fitting size exists")
	}
	if m.CaptionHeight(card, card.FontSize) > m.CardHeight(card) {
		t.Error("caption should fit inside the card after a fit pass")
	}
}

func TestEngine_FitIsNoOpWhenAlreadyFitting(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 100}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(20)
	result := engine.Fit(card)

	if result.Size != 20 {
		t.Errorf("Fit() size = %.0f, expected 20 (unchanged)", result.Size)
	}
}

func TestEngine_GrowOvershootsThenCorrects(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 100}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(10)
	result := engine.Grow(card)

	// Growth passes 25, fails at 26, and must correct back to 25.
	if result.Size != 25 {
		t.Errorf("Grow() size = %.0f, expected 25", result.Size)
	}
	if card.FontSize != 25 {
		t.Errorf("card font size = %.0f, expected 25", card.FontSize)
	}
}

func TestEngine_GrowNeverExceedsMax(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 100000}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(32)
	result := engine.Grow(card)

	if result.Size != MaxFontSize {
		t.Errorf("Grow() size = %.0f, expected max %.0f", result.Size, MaxFontSize)
	}
}

func TestEngine_GrowFromOverflowingSizeShrinks(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 80} // maximal fit is 20
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(30)
	result := engine.Grow(card)

	if result.Size != 20 {
		t.Errorf("Grow() from overflowing size = %.0f, expected 20", result.Size)
	}
}

func TestEngine_FitReportsFloorHit(t *testing.T) {
	// Fits only at 2.5px, below the floor; the caption must overflow.
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 10}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(40)
	result := engine.Fit(card)

	if result.Size != DefaultMinFontSize {
		t.Errorf("Fit() size = %.0f, expected floor %.0f", result.Size, DefaultMinFontSize)
	}
	if !result.FloorHit {
		t.Error("Fit() should report floor hit when no size fits")
	}
}

func TestEngine_EmptyCaptionFitsTrivially(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 0}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := &model.Card{ID: "card-empty", FontSize: 10}
	result := engine.Grow(card)

	if result.Size != MaxFontSize {
		t.Errorf("Grow() with empty caption = %.0f, expected max %.0f", result.Size, MaxFontSize)
	}
	if result.FloorHit {
		t.Error("empty caption should never hit the floor")
	}
}

func TestEngine_UnloadedCardPinsToFloor(t *testing.T) {
	// Unloaded card renders a zero-height box; a non-empty caption can
	// never fit but the pass must still terminate.
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 0}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	card := newCard(40)
	result := engine.Fit(card)

	if result.Size != DefaultMinFontSize {
		t.Errorf("Fit() size = %.0f, expected floor %.0f", result.Size, DefaultMinFontSize)
	}
	if !result.FloorHit {
		t.Error("zero-height box with caption should report floor hit")
	}
}

func TestEngine_RefitDirections(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 100}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	cards := []*model.Card{newCard(18), newCard(30), newCard(8)}

	// Width shrank: the box got smaller, every size must not increase
	// and the predicate must hold (or the floor be reached).
	m.boxHeight = 60 // maximal fit is 15
	before := []float32{cards[0].FontSize, cards[1].FontSize, cards[2].FontSize}
	engine.Refit(cards, 800, 600)
	for i, card := range cards {
		if card.FontSize > before[i] {
			t.Errorf("card %d grew on a shrink pass: %.0f -> %.0f", i, before[i], card.FontSize)
		}
		if m.CaptionHeight(card, card.FontSize) > m.CardHeight(card) && card.FontSize > engine.MinSize() {
			t.Errorf("card %d overflows after shrink pass at %.0fpx", i, card.FontSize)
		}
	}

	// Width grew: sizes may only increase, capped at the maximal fit.
	m.boxHeight = 100
	engine.Refit(cards, 600, 800)
	for i, card := range cards {
		if card.FontSize != 25 {
			t.Errorf("card %d after grow pass = %.0f, expected 25", i, card.FontSize)
		}
	}
}

func TestEngine_RefitSameWidthIsNoOp(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 2, boxHeight: 10}
	engine := NewEngine(m, DefaultMinFontSize, MaxFontSize)

	cards := []*model.Card{newCard(40)}
	engine.Refit(cards, 800, 800)

	if cards[0].FontSize != 40 {
		t.Errorf("same-width refit changed font size to %.0f", cards[0].FontSize)
	}
}

func TestNewEngine_BoundsFallBackToDefaults(t *testing.T) {
	m := &fakeMeasurer{lineFactor: 1, boxHeight: 100}

	engine := NewEngine(m, 0, 0)
	if engine.MinSize() != DefaultMinFontSize || engine.MaxSize() != MaxFontSize {
		t.Errorf("zero bounds: got [%.0f, %.0f], expected defaults", engine.MinSize(), engine.MaxSize())
	}

	engine = NewEngine(m, 20, 10) // inverted
	if engine.MaxSize() != MaxFontSize {
		t.Errorf("inverted bounds: max = %.0f, expected %.0f", engine.MaxSize(), MaxFontSize)
	}
}
