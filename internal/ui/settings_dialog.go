package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/memegrid/memegrid/internal/config"
)

// languageCodes fixes the order the language options show in.
var languageCodes = []string{"system", "en", "ru", "pt"}

// SettingsDialog lets the user adjust language, board columns and the
// caption size bounds.
type SettingsDialog struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	onSaved      func()

	languageSelect *widget.Select
	columnsSelect  *widget.Select
	minFontEntry   *widget.Entry
	maxFontEntry   *widget.Entry
}

// NewSettingsDialog creates a settings dialog. onSaved runs after a
// confirmed save, once the new values are stored.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	return &SettingsDialog{
		window:       window,
		settings:     settings,
		localization: localization,
		onSaved:      onSaved,
	}
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	var langNames []string
	for _, code := range languageCodes {
		langNames = append(langNames, d.settings.GetLanguageOptions()[code])
	}
	d.languageSelect = widget.NewSelect(langNames, nil)

	var columnOptions []string
	for c := config.MinGridColumns; c <= config.MaxGridColumns; c++ {
		columnOptions = append(columnOptions, strconv.Itoa(c))
	}
	d.columnsSelect = widget.NewSelect(columnOptions, nil)

	d.minFontEntry = widget.NewEntry()
	d.maxFontEntry = widget.NewEntry()

	d.loadCurrentSettings()

	form := container.NewVBox(
		widget.NewLabel(d.localization.GetText(KeyLanguage)),
		d.languageSelect,
		widget.NewLabel(d.localization.GetText(KeyGridColumns)),
		d.columnsSelect,
		widget.NewLabel(d.localization.GetText(KeyMinFont)),
		d.minFontEntry,
		widget.NewLabel(d.localization.GetText(KeyMaxFont)),
		d.maxFontEntry,
	)

	dialog.NewCustomConfirm(
		d.localization.GetText(KeySettings),
		d.localization.GetText(KeySave),
		d.localization.GetText(KeyCancel),
		form,
		func(save bool) {
			if save {
				d.onSave()
			}
		},
		d.window,
	).Show()
}

// loadCurrentSettings fills the controls from the stored values.
func (d *SettingsDialog) loadCurrentSettings() {
	current := d.settings.GetLanguage()
	for _, code := range languageCodes {
		if code == current {
			d.languageSelect.SetSelected(d.settings.GetLanguageOptions()[code])
		}
	}

	d.columnsSelect.SetSelected(strconv.Itoa(d.settings.GetGridColumns()))
	d.minFontEntry.SetText(strconv.Itoa(int(d.settings.GetMinFontSize())))
	d.maxFontEntry.SetText(strconv.Itoa(int(d.settings.GetMaxFontSize())))
}

// onSave validates and persists the dialog values. Out-of-range font
// sizes are clamped by the settings layer rather than rejected here.
func (d *SettingsDialog) onSave() {
	for _, code := range languageCodes {
		if d.settings.GetLanguageOptions()[code] == d.languageSelect.Selected {
			d.settings.SetLanguage(code)
			break
		}
	}

	if cols, err := strconv.Atoi(d.columnsSelect.Selected); err == nil {
		d.settings.SetGridColumns(cols)
	}

	if min, err := strconv.Atoi(d.minFontEntry.Text); err == nil {
		d.settings.SetMinFontSize(min)
	} else {
		log.Printf("Ignoring invalid min font size %q", d.minFontEntry.Text)
	}
	if max, err := strconv.Atoi(d.maxFontEntry.Text); err == nil {
		d.settings.SetMaxFontSize(max)
	} else {
		log.Printf("Ignoring invalid max font size %q", d.maxFontEntry.Text)
	}

	if d.onSaved != nil {
		d.onSaved()
	}
}
