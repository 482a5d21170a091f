package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDelete   = "🗑"
	IconError    = "❌"
	IconLanguage = "🌐"
	IconClose    = "×"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing (cards / board)
const (
	CardMinWidth     float32 = 200
	CardFallbackH    float32 = 150 // box height while the image has not loaded
	CardPadding      float32 = 6
	CurtainLabelSize float32 = 18

	// Below this content width the URL placeholder swaps to its short
	// variant and the board collapses to a single column.
	NarrowWidthBreakpoint float32 = 520
)

// Curtain overlay alpha (0-255)
const (
	CurtainAlpha uint8 = 200
)
