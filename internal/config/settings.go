package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyGridColumns     = "grid_columns"
	KeyMinFontSize     = "min_font_size"
	KeyMaxFontSize     = "max_font_size"
	KeyDefaultFontSize = "default_font_size"
	KeyLastWidth       = "last_content_width"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultGridColumns     = 3
	DefaultMinFontSize     = 8
	DefaultMaxFontSize     = 40
	DefaultDefaultFontSize = 32

	MinGridColumns = 1
	MaxGridColumns = 6
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetGridColumns returns the number of board columns on wide screens
func (s *Settings) GetGridColumns() int {
	value := s.app.Preferences().Int(KeyGridColumns)
	if value <= 0 {
		s.SetGridColumns(DefaultGridColumns)
		return DefaultGridColumns
	}
	return value
}

// SetGridColumns sets the number of board columns, clamped to a sane range
func (s *Settings) SetGridColumns(count int) {
	if count < MinGridColumns {
		count = MinGridColumns
	}
	if count > MaxGridColumns {
		count = MaxGridColumns
	}
	s.app.Preferences().SetInt(KeyGridColumns, count)
}

// GetMinFontSize returns the caption shrink floor in px
func (s *Settings) GetMinFontSize() float32 {
	value := s.app.Preferences().Int(KeyMinFontSize)
	if value <= 0 {
		s.SetMinFontSize(DefaultMinFontSize)
		return DefaultMinFontSize
	}
	return float32(value)
}

// SetMinFontSize sets the caption shrink floor, kept below the ceiling
func (s *Settings) SetMinFontSize(size int) {
	if size < 1 {
		size = 1
	}
	if max := s.app.Preferences().Int(KeyMaxFontSize); max > 0 && size > max {
		size = max
	}
	s.app.Preferences().SetInt(KeyMinFontSize, size)
}

// GetMaxFontSize returns the caption growth ceiling in px
func (s *Settings) GetMaxFontSize() float32 {
	value := s.app.Preferences().Int(KeyMaxFontSize)
	if value <= 0 {
		s.SetMaxFontSize(DefaultMaxFontSize)
		return DefaultMaxFontSize
	}
	return float32(value)
}

// SetMaxFontSize sets the caption growth ceiling, kept above the floor
func (s *Settings) SetMaxFontSize(size int) {
	if size < 1 {
		size = 1
	}
	if min := s.app.Preferences().Int(KeyMinFontSize); min > 0 && size < min {
		size = min
	}
	s.app.Preferences().SetInt(KeyMaxFontSize, size)
}

// GetDefaultFontSize returns the size new cards start with
func (s *Settings) GetDefaultFontSize() float32 {
	value := s.app.Preferences().Int(KeyDefaultFontSize)
	if value <= 0 {
		s.SetDefaultFontSize(DefaultDefaultFontSize)
		return DefaultDefaultFontSize
	}
	return float32(value)
}

// SetDefaultFontSize sets the size new cards start with, clamped into
// the configured bounds
func (s *Settings) SetDefaultFontSize(size int) {
	if min := s.app.Preferences().Int(KeyMinFontSize); min > 0 && size < min {
		size = min
	}
	if max := s.app.Preferences().Int(KeyMaxFontSize); max > 0 && size > max {
		size = max
	}
	if size < 1 {
		size = 1
	}
	s.app.Preferences().SetInt(KeyDefaultFontSize, size)
}

// GetLastWidth returns the content width recorded on the previous run,
// or 0 when none was recorded
func (s *Settings) GetLastWidth() float32 {
	return float32(s.app.Preferences().Float(KeyLastWidth))
}

// SetLastWidth records the current content width for the next run
func (s *Settings) SetLastWidth(width float32) {
	if width <= 0 {
		return
	}
	s.app.Preferences().SetFloat(KeyLastWidth, float64(width))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ApplyFileOverrides copies non-zero values from the optional config
// file over the stored preferences. Called once at startup.
func (s *Settings) ApplyFileOverrides(cfg *FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Language != "" {
		s.SetLanguage(cfg.Language)
	}
	if cfg.GridColumns > 0 {
		s.SetGridColumns(cfg.GridColumns)
	}
	if cfg.MinFontSize > 0 {
		s.SetMinFontSize(cfg.MinFontSize)
	}
	if cfg.MaxFontSize > 0 {
		s.SetMaxFontSize(cfg.MaxFontSize)
	}
	if cfg.DefaultFontSize > 0 {
		s.SetDefaultFontSize(cfg.DefaultFontSize)
	}
}
