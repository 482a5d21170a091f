package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/memegrid/memegrid/internal/board"
	"github.com/memegrid/memegrid/internal/config"
	"github.com/memegrid/memegrid/internal/fit"
	"github.com/memegrid/memegrid/internal/imageload"
	"github.com/memegrid/memegrid/internal/model"
	"github.com/memegrid/memegrid/internal/selection"
)

// RootUI owns the whole window: the generator form, the notification
// line, the card board, and the wiring between the board service, the
// fit engine and the selection machine.
type RootUI struct {
	app    fyne.App
	window fyne.Window

	localization *Localization
	settings     *config.Settings
	device       *DeviceUI

	boardSvc board.Boarder
	machine  *selection.Machine
	engine   *fit.Engine
	measurer *CanvasMeasurer
	fetcher  *imageload.Fetcher

	urlEntry    *widget.Entry
	topEntry    *widget.Entry
	bottomEntry *widget.Entry
	generateBtn *widget.Button
	notifyLabel *widget.Label
	countLabel  *widget.Label
	grid        *fyne.Container

	cardWidgets map[string]*MemeCard

	contentWidth float32
	columns      int
}

// NewRootUI creates the root UI around the given services.
func NewRootUI(app fyne.App, window fyne.Window, boardSvc board.Boarder, fetcher *imageload.Fetcher, settings *config.Settings) *RootUI {
	r := &RootUI{
		app:          app,
		window:       window,
		localization: NewLocalization(),
		settings:     settings,
		device:       NewDeviceUI(app),
		boardSvc:     boardSvc,
		machine:      selection.NewMachine(),
		fetcher:      fetcher,
		cardWidgets:  make(map[string]*MemeCard),
	}

	r.localization.SetLanguage(settings.GetLanguage())
	r.measurer = NewCanvasMeasurer(r.cellWidth)
	r.engine = fit.NewEngine(r.measurer, settings.GetMinFontSize(), settings.GetMaxFontSize())
	r.columns = settings.GetGridColumns()

	return r
}

// BuildUI constructs the window content and wires all callbacks.
func (r *RootUI) BuildUI() fyne.CanvasObject {
	r.urlEntry = widget.NewEntry()
	r.urlEntry.SetPlaceHolder(r.localization.GetText(KeyEnterImageURL))

	r.topEntry = widget.NewEntry()
	r.topEntry.SetPlaceHolder(r.localization.GetText(KeyTopCaption))

	r.bottomEntry = widget.NewEntry()
	r.bottomEntry.SetPlaceHolder(r.localization.GetText(KeyBottomCaption))

	r.generateBtn = widget.NewButton(r.localization.GetText(KeyGenerate), r.onGenerateClick)
	r.generateBtn.Importance = widget.HighImportance
	r.urlEntry.OnSubmitted = func(string) { r.onGenerateClick() }

	r.notifyLabel = widget.NewLabel("")
	r.countLabel = widget.NewLabel("")
	r.updateCount()

	r.grid = container.New(layout.NewGridLayoutWithColumns(r.columns))

	r.machine.SetCallbacks(r.onArm, r.onDisarm, r.onDelete)
	r.boardSvc.SetUpdateCallback(r.onCardUpdate)

	form := container.NewVBox(
		r.urlEntry,
		container.NewGridWithColumns(2, r.topEntry, r.bottomEntry),
		r.generateBtn,
		r.notifyLabel,
	)

	content := container.NewBorder(
		form,         // top
		r.countLabel, // bottom
		nil, nil,
		container.NewVScroll(r.grid),
	)

	// Taps that reach past every widget land on the catcher and count
	// as activations outside any card.
	catcher := newTapCatcher(r.machine.ActivateOutside)
	stack := container.NewStack(catcher, content)

	r.setupMenu()
	r.window.SetTitle(r.localization.GetText(KeyAppTitle))

	return newWidthWatcher(stack, r.handleWidthChange)
}

// handleWidthChange reacts to a content width change: it flips the
// narrow layout on or off, then runs one directional fit pass over the
// whole board. Height-only resizes never reach here.
func (r *RootUI) handleWidthChange(newWidth float32) {
	old := r.contentWidth
	r.contentWidth = newWidth
	r.settings.SetLastWidth(newWidth)

	cols := r.device.ColumnsFor(newWidth, r.settings.GetGridColumns())
	if cols != r.columns {
		r.columns = cols
		r.grid.Layout = layout.NewGridLayoutWithColumns(cols)
		log.Printf("Board columns changed to %d at width %.0f", cols, newWidth)
	}

	if r.urlEntry != nil {
		if r.device.IsNarrow(newWidth) {
			r.urlEntry.SetPlaceHolder(r.localization.GetText(KeyEnterImageShort))
		} else {
			r.urlEntry.SetPlaceHolder(r.localization.GetText(KeyEnterImageURL))
		}
	}

	r.engine.Refit(r.boardSvc.Cards(), old, newWidth)
	r.grid.Refresh()
}

// cellWidth reports the current width of one board cell. The fit
// engine and the card widgets both read card geometry through this.
func (r *RootUI) cellWidth() float32 {
	cols := r.columns
	if cols < 1 {
		cols = 1
	}
	w := (r.contentWidth - CardPadding*float32(cols+1)) / float32(cols)
	if w < CardMinWidth {
		return CardMinWidth
	}
	return w
}

// onGenerateClick handles the Generate button: it submits the three
// form fields as a new card and starts the image load. The form clears
// on every accepted submit, before the load settles.
func (r *RootUI) onGenerateClick() {
	url := strings.TrimSpace(r.urlEntry.Text)
	if url == "" {
		r.showNotification(r.localization.GetText(KeyPleaseEnterURL))
		return
	}

	card, err := r.boardSvc.Submit(url, r.topEntry.Text, r.bottomEntry.Text)
	if err != nil {
		log.Printf("Submit rejected: %v", err)
		r.showNotification(r.localization.GetText(KeyInvalidURL))
		return
	}

	r.urlEntry.SetText("")
	r.topEntry.SetText("")
	r.bottomEntry.SetText("")

	cw := NewMemeCard(
		card,
		r.device.SupportsHover(),
		r.measurer.CardHeight,
		r.localization.GetText(KeyDeleteConfirm),
		r.localization.GetText(KeyImageFailed),
	)
	cw.SetCallbacks(r.machine.Activate, r.machine.HoverEnter, r.machine.HoverLeave)
	r.cardWidgets[card.ID] = cw
	r.grid.Add(cw)

	r.updateCount()
	r.showNotification(r.localization.GetText(KeyCardAdded))

	go r.loadImage(card, cw)
}

// loadImage fetches and decodes the card's bitmap off the UI thread,
// then applies the outcome back on it. A successful load runs one
// shrink pass, since the box height only becomes known now.
func (r *RootUI) loadImage(card *model.Card, cw *MemeCard) {
	ctx, cancel := context.WithTimeout(context.Background(), imageload.DefaultTimeout)
	defer cancel()

	loaded, err := r.fetcher.Fetch(ctx, card.ImageURL)
	if err != nil {
		log.Printf("Image load failed for card %s: %v", card.ID, err)
		fyne.Do(func() {
			if err := r.boardSvc.MarkBroken(card.ID); err != nil {
				return // card deleted while the fetch was in flight
			}
			cw.Refresh()
		})
		return
	}

	fyne.Do(func() {
		if err := r.boardSvc.MarkLoaded(card.ID, loaded.Width, loaded.Height); err != nil {
			return
		}
		cw.SetBitmap(imageload.Preview(loaded.Image, r.cellWidth()))
		r.engine.Fit(card)
		cw.Refresh()
	})
}

// onArm raises the card's curtain.
func (r *RootUI) onArm(cardID string) {
	r.boardSvc.SetArmed(cardID, true)
}

// onDisarm lowers the card's curtain.
func (r *RootUI) onDisarm(cardID string) {
	r.boardSvc.SetArmed(cardID, false)
}

// onDelete removes the confirmed card from the board and the grid.
func (r *RootUI) onDelete(cardID string) {
	if err := r.boardSvc.Remove(cardID); err != nil {
		log.Printf("Delete failed: %v", err)
		return
	}
	if cw, ok := r.cardWidgets[cardID]; ok {
		r.grid.Remove(cw)
		delete(r.cardWidgets, cardID)
	}
	r.updateCount()
}

// onCardUpdate refreshes the widget of a card whose model changed.
func (r *RootUI) onCardUpdate(card *model.Card) {
	if cw, ok := r.cardWidgets[card.ID]; ok {
		cw.Refresh()
	}
}

// showNotification puts a message on the notification line.
func (r *RootUI) showNotification(message string) {
	r.notifyLabel.SetText(message)
}

// updateCount refreshes the card count line.
func (r *RootUI) updateCount() {
	r.countLabel.SetText(fmt.Sprintf(r.localization.GetText(KeyCardsCountFormat), r.boardSvc.Len()))
}

// setupMenu builds the main menu: settings plus the language switch.
func (r *RootUI) setupMenu() {
	settingsItem := fyne.NewMenuItem(r.localization.GetText(KeySettings), r.showSettingsDialog)

	var langItems []*fyne.MenuItem
	for _, code := range []string{"system", "en", "ru", "pt"} {
		code := code
		name := r.settings.GetLanguageOptions()[code]
		langItems = append(langItems, fyne.NewMenuItem(name, func() {
			r.changeLanguage(code)
		}))
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(r.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(IconLanguage+" "+r.localization.GetText(KeyLanguage), langItems...),
	)
	r.window.SetMainMenu(mainMenu)
}

// changeLanguage persists the choice and re-applies every visible text.
func (r *RootUI) changeLanguage(code string) {
	r.settings.SetLanguage(code)
	r.localization.SetLanguage(code)
	r.updateTexts()
	log.Printf("Language changed to %s", code)
}

// updateTexts re-applies localized strings to everything visible.
// Existing cards keep the curtain label they were created with.
func (r *RootUI) updateTexts() {
	r.window.SetTitle(r.localization.GetText(KeyAppTitle))
	r.generateBtn.SetText(r.localization.GetText(KeyGenerate))
	if r.device.IsNarrow(r.contentWidth) {
		r.urlEntry.SetPlaceHolder(r.localization.GetText(KeyEnterImageShort))
	} else {
		r.urlEntry.SetPlaceHolder(r.localization.GetText(KeyEnterImageURL))
	}
	r.topEntry.SetPlaceHolder(r.localization.GetText(KeyTopCaption))
	r.bottomEntry.SetPlaceHolder(r.localization.GetText(KeyBottomCaption))
	r.updateCount()
	r.setupMenu()
}

// showSettingsDialog opens the settings dialog.
func (r *RootUI) showSettingsDialog() {
	NewSettingsDialog(r.window, r.settings, r.localization, r.applySettings).Show()
}

// applySettings re-reads the stored settings after a save: language,
// fit bounds and column count all take effect immediately.
func (r *RootUI) applySettings() {
	r.localization.SetLanguage(r.settings.GetLanguage())
	r.updateTexts()

	r.engine = fit.NewEngine(r.measurer, r.settings.GetMinFontSize(), r.settings.GetMaxFontSize())

	cols := r.device.ColumnsFor(r.contentWidth, r.settings.GetGridColumns())
	if cols != r.columns {
		r.columns = cols
		r.grid.Layout = layout.NewGridLayoutWithColumns(cols)
	}

	// New bounds or cell geometry may leave captions out of fit.
	for _, card := range r.boardSvc.Cards() {
		r.engine.Grow(card)
	}
	r.grid.Refresh()

	r.showNotification(r.localization.GetText(KeySettingsSaved))
}
