package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/memegrid/memegrid/internal/model"
)

func newTestCard() *model.Card {
	return &model.Card{
		ID:         "card-1",
		ImageURL:   "https://example.com/cat.png",
		TopText:    "TOP",
		BottomText: "BOTTOM",
		FontSize:   32,
		Status:     model.CardStatusLoading,
	}
}

func fixedBoxHeight(*model.Card) float32 { return 150 }

type cardRecorder struct {
	activated []string
	entered   []string
	left      []string
}

func (r *cardRecorder) wire(cw *MemeCard) {
	cw.SetCallbacks(
		func(id string) { r.activated = append(r.activated, id) },
		func(id string) { r.entered = append(r.entered, id) },
		func(id string) { r.left = append(r.left, id) },
	)
}

func TestMemeCardTapActivates(t *testing.T) {
	test.NewApp()

	cw := NewMemeCard(newTestCard(), false, fixedBoxHeight, "Delete?", "failed")
	rec := &cardRecorder{}
	rec.wire(cw)

	test.Tap(cw)

	if len(rec.activated) != 1 || rec.activated[0] != "card-1" {
		t.Errorf("Expected one activation for card-1, got %v", rec.activated)
	}
}

func TestMemeCardHoverOnCapableDevice(t *testing.T) {
	test.NewApp()

	cw := NewMemeCard(newTestCard(), true, fixedBoxHeight, "Delete?", "failed")
	rec := &cardRecorder{}
	rec.wire(cw)

	cw.MouseIn(&desktop.MouseEvent{})
	cw.MouseOut()

	if len(rec.entered) != 1 || len(rec.left) != 1 {
		t.Errorf("Expected one enter and one leave, got %v / %v", rec.entered, rec.left)
	}
}

func TestMemeCardHoverIgnoredWithoutCapability(t *testing.T) {
	test.NewApp()

	cw := NewMemeCard(newTestCard(), false, fixedBoxHeight, "Delete?", "failed")
	rec := &cardRecorder{}
	rec.wire(cw)

	cw.MouseIn(&desktop.MouseEvent{})
	cw.MouseOut()

	if len(rec.entered) != 0 || len(rec.left) != 0 {
		t.Errorf("Expected hover to be ignored, got %v / %v", rec.entered, rec.left)
	}
}

func TestMemeCardKeyboardActivation(t *testing.T) {
	test.NewApp()

	cw := NewMemeCard(newTestCard(), false, fixedBoxHeight, "Delete?", "failed")
	rec := &cardRecorder{}
	rec.wire(cw)

	cw.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	if len(rec.activated) != 1 {
		t.Fatalf("Expected one activation after Return, got %d", len(rec.activated))
	}

	// Drivers deliver space as both a key event and a rune; only the
	// rune path may activate or the card would fire twice per press.
	cw.TypedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	cw.TypedRune(' ')
	if len(rec.activated) != 2 {
		t.Errorf("Expected exactly two activations after space, got %d", len(rec.activated))
	}
}

func TestMemeCardCurtainFollowsArmedFlag(t *testing.T) {
	test.NewApp()

	card := newTestCard()
	cw := NewMemeCard(card, false, fixedBoxHeight, "Delete?", "failed")
	r := test.WidgetRenderer(cw)

	objects := r.Objects()
	curtain := objects[len(objects)-2]
	label := objects[len(objects)-1]

	if curtain.Visible() || label.Visible() {
		t.Error("Expected curtain hidden on a disarmed card")
	}

	card.Armed = true
	cw.Refresh()
	if !curtain.Visible() || !label.Visible() {
		t.Error("Expected curtain visible on an armed card")
	}

	card.Armed = false
	cw.Refresh()
	if curtain.Visible() {
		t.Error("Expected curtain hidden again after disarm")
	}
}

func TestMemeCardMinSizeIncludesCaptions(t *testing.T) {
	test.NewApp()

	withCaptions := NewMemeCard(newTestCard(), false, fixedBoxHeight, "Delete?", "failed")
	bare := newTestCard()
	bare.TopText = ""
	bare.BottomText = ""
	withoutCaptions := NewMemeCard(bare, false, fixedBoxHeight, "Delete?", "failed")

	h1 := test.WidgetRenderer(withCaptions).MinSize().Height
	h2 := test.WidgetRenderer(withoutCaptions).MinSize().Height
	if h1 <= h2 {
		t.Errorf("Expected captioned card to be taller: %f <= %f", h1, h2)
	}
}
