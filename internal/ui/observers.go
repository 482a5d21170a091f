package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// widthWatcher wraps the window content and reports width changes to
// its callback. The toolkit resizes this widget whenever the window
// geometry changes, so overriding Resize is the observation point.
type widthWatcher struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onWidth func(width float32)
}

func newWidthWatcher(content fyne.CanvasObject, onWidth func(width float32)) *widthWatcher {
	w := &widthWatcher{content: content, onWidth: onWidth}
	w.ExtendBaseWidget(w)
	return w
}

// Resize forwards to the base widget and fires the callback only when
// the width actually changed. Height-only resizes never trigger a pass.
func (w *widthWatcher) Resize(size fyne.Size) {
	old := w.Size()
	w.BaseWidget.Resize(size)
	if w.onWidth != nil && size.Width != old.Width {
		w.onWidth(size.Width)
	}
}

func (w *widthWatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.content)
}

var _ fyne.Tappable = (*tapCatcher)(nil)

// tapCatcher sits underneath the main content in a stack and receives
// the taps that land on no interactive widget. Those count as
// activations outside any card and lower the armed curtain.
type tapCatcher struct {
	widget.BaseWidget

	onTap func()
}

func newTapCatcher(onTap func()) *tapCatcher {
	t := &tapCatcher{onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapCatcher) Tapped(_ *fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

func (t *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
