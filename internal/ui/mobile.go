package ui

import (
	"fyne.io/fyne/v2"
)

// DeviceUI answers device-capability questions for the board: whether
// the pointer supports hover and whether the screen counts as narrow.
type DeviceUI struct {
	app fyne.App
}

// NewDeviceUI creates a new device capability helper
func NewDeviceUI(app fyne.App) *DeviceUI {
	return &DeviceUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (d *DeviceUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// SupportsHover reports whether the pointing device can hover. Mobile
// touch screens cannot; everything else is assumed to. Each card reads
// this once at creation time and keeps the answer.
func (d *DeviceUI) SupportsHover() bool {
	return !d.IsMobileDevice()
}

// IsNarrow reports whether the given content width should use the
// narrow layout (short placeholders, single column).
func (d *DeviceUI) IsNarrow(width float32) bool {
	return width > 0 && width < NarrowWidthBreakpoint
}

// ColumnsFor returns how many board columns fit the given width.
func (d *DeviceUI) ColumnsFor(width float32, configured int) int {
	if d.IsNarrow(width) {
		return 1
	}
	if configured < 1 {
		configured = 1
	}
	return configured
}
