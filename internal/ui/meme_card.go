package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/memegrid/memegrid/internal/model"
)

// Compile-time interface checks for the interaction surface.
var (
	_ fyne.Tappable     = (*MemeCard)(nil)
	_ fyne.Focusable    = (*MemeCard)(nil)
	_ desktop.Hoverable = (*MemeCard)(nil)
)

// MemeCard renders a single card: the image box with the top and bottom
// caption lines stacked around it, and a delete-confirmation curtain
// laid over everything while the card is armed.
//
// Hover capability is sampled once at creation and never re-checked;
// a card created without hover ignores pointer enter/leave for its
// whole lifetime.
type MemeCard struct {
	widget.BaseWidget

	card        *model.Card
	hoverable   bool
	boxHeight   func(*model.Card) float32
	deleteLabel string
	failedLabel string

	onActivate   func(cardID string)
	onHoverEnter func(cardID string)
	onHoverLeave func(cardID string)

	bitmap image.Image
}

// NewMemeCard creates the widget for one card. boxHeight reports the
// current image box height for the card (shared with the fit engine so
// both see the same geometry).
func NewMemeCard(card *model.Card, hoverable bool, boxHeight func(*model.Card) float32, deleteLabel, failedLabel string) *MemeCard {
	m := &MemeCard{
		card:        card,
		hoverable:   hoverable,
		boxHeight:   boxHeight,
		deleteLabel: deleteLabel,
		failedLabel: failedLabel,
		bitmap:      PlaceholderImage(),
	}
	m.ExtendBaseWidget(m)
	return m
}

// SetCallbacks wires the interaction handlers. Activation covers tap,
// click and keyboard; the hover pair only ever fires on hover-capable
// cards.
func (m *MemeCard) SetCallbacks(onActivate, onHoverEnter, onHoverLeave func(cardID string)) {
	m.onActivate = onActivate
	m.onHoverEnter = onHoverEnter
	m.onHoverLeave = onHoverLeave
}

// Card returns the card this widget renders.
func (m *MemeCard) Card() *model.Card {
	return m.card
}

// SetBitmap swaps in the decoded image once it has loaded. Must be
// called on the UI thread.
func (m *MemeCard) SetBitmap(img image.Image) {
	if img != nil {
		m.bitmap = img
	}
	m.Refresh()
}

// Tapped handles a click or tap on the card.
func (m *MemeCard) Tapped(_ *fyne.PointEvent) {
	m.activate()
}

// MouseIn arms the card on pointer hover, on hover-capable devices only.
func (m *MemeCard) MouseIn(_ *desktop.MouseEvent) {
	if !m.hoverable {
		return
	}
	if m.onHoverEnter != nil {
		m.onHoverEnter(m.card.ID)
	}
}

// MouseMoved is part of the hover interface; movement inside the card
// changes nothing.
func (m *MemeCard) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut disarms the card when the pointer leaves it.
func (m *MemeCard) MouseOut() {
	if !m.hoverable {
		return
	}
	if m.onHoverLeave != nil {
		m.onHoverLeave(m.card.ID)
	}
}

// FocusGained marks the card focused for keyboard activation.
func (m *MemeCard) FocusGained() {
	m.Refresh()
}

// FocusLost clears the focus mark.
func (m *MemeCard) FocusLost() {
	m.Refresh()
}

// TypedRune treats space as an activation. Space arrives here rather
// than in TypedKey; handling it in both would fire twice per press.
func (m *MemeCard) TypedRune(r rune) {
	if r == ' ' {
		m.activate()
	}
}

// TypedKey treats Enter and Return as activations.
func (m *MemeCard) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		m.activate()
	}
}

func (m *MemeCard) activate() {
	if m.onActivate != nil {
		m.onActivate(m.card.ID)
	}
}

// CreateRenderer creates the card's renderer.
func (m *MemeCard) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(m.bitmap)
	img.FillMode = canvas.ImageFillStretch

	topText := canvas.NewText(m.card.TopText, color.White)
	topText.TextStyle = captionStyle
	topText.Alignment = fyne.TextAlignCenter

	bottomText := canvas.NewText(m.card.BottomText, color.White)
	bottomText.TextStyle = captionStyle
	bottomText.Alignment = fyne.TextAlignCenter

	failedText := canvas.NewText(m.failedLabel, color.NRGBA{R: 255, G: 120, B: 120, A: 255})
	failedText.Alignment = fyne.TextAlignCenter
	failedText.Hidden = true

	curtain := canvas.NewRectangle(color.NRGBA{R: 120, G: 20, B: 20, A: CurtainAlpha})
	curtainLabel := canvas.NewText(m.deleteLabel, color.White)
	curtainLabel.TextStyle = fyne.TextStyle{Bold: true}
	curtainLabel.Alignment = fyne.TextAlignCenter
	curtainLabel.TextSize = CurtainLabelSize

	r := &memeCardRenderer{
		widget:       m,
		image:        img,
		topText:      topText,
		bottomText:   bottomText,
		failedText:   failedText,
		curtain:      curtain,
		curtainLabel: curtainLabel,
	}
	r.applyState()
	return r
}

type memeCardRenderer struct {
	widget       *MemeCard
	image        *canvas.Image
	topText      *canvas.Text
	bottomText   *canvas.Text
	failedText   *canvas.Text
	curtain      *canvas.Rectangle
	curtainLabel *canvas.Text
}

func (r *memeCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.image, r.topText, r.bottomText, r.failedText, r.curtain, r.curtainLabel,
	}
}

func (r *memeCardRenderer) Layout(size fyne.Size) {
	topH := r.lineHeight(r.topText)
	botH := r.lineHeight(r.bottomText)

	imgH := size.Height - topH - botH
	if imgH < 0 {
		imgH = 0
	}

	r.topText.Move(fyne.NewPos(0, 0))
	r.topText.Resize(fyne.NewSize(size.Width, topH))

	r.image.Move(fyne.NewPos(0, topH))
	r.image.Resize(fyne.NewSize(size.Width, imgH))

	r.bottomText.Move(fyne.NewPos(0, topH+imgH))
	r.bottomText.Resize(fyne.NewSize(size.Width, botH))

	failedSize := r.failedText.MinSize()
	r.failedText.Resize(failedSize)
	r.failedText.Move(fyne.NewPos((size.Width-failedSize.Width)/2, topH+(imgH-failedSize.Height)/2))

	r.curtain.Move(fyne.NewPos(0, 0))
	r.curtain.Resize(size)

	labelSize := r.curtainLabel.MinSize()
	r.curtainLabel.Resize(labelSize)
	r.curtainLabel.Move(fyne.NewPos((size.Width-labelSize.Width)/2, (size.Height-labelSize.Height)/2))
}

func (r *memeCardRenderer) MinSize() fyne.Size {
	card := r.widget.card
	h := r.widget.boxHeight(card)
	h += r.lineHeight(r.topText)
	h += r.lineHeight(r.bottomText)
	return fyne.NewSize(CardMinWidth, h+CardPadding)
}

func (r *memeCardRenderer) Refresh() {
	r.applyState()

	r.image.Refresh()
	r.topText.Refresh()
	r.bottomText.Refresh()
	r.failedText.Refresh()
	r.curtain.Refresh()
	r.curtainLabel.Refresh()
}

func (r *memeCardRenderer) Destroy() {}

// lineHeight measures one caption line at its current size; empty lines
// take no vertical space at all.
func (r *memeCardRenderer) lineHeight(t *canvas.Text) float32 {
	if t.Text == "" {
		return 0
	}
	return fyne.MeasureText(t.Text, t.TextSize, t.TextStyle).Height
}

// applyState copies the card model into the canvas objects.
func (r *memeCardRenderer) applyState() {
	card := r.widget.card

	r.topText.Text = card.TopText
	r.topText.TextSize = card.FontSize
	r.bottomText.Text = card.BottomText
	r.bottomText.TextSize = card.FontSize

	r.image.Image = r.widget.bitmap
	if card.Status.IsLoaded() {
		r.image.FillMode = canvas.ImageFillContain
	} else {
		r.image.FillMode = canvas.ImageFillStretch
	}
	r.failedText.Hidden = !card.Status.IsBroken()

	r.curtain.Hidden = !card.Armed
	r.curtainLabel.Hidden = !card.Armed
}
