package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyGenerate         = "generate"
	KeyEnterImageURL    = "enter_image_url"
	KeyEnterImageShort  = "enter_image_url_short"
	KeyTopCaption       = "top_caption"
	KeyBottomCaption    = "bottom_caption"
	KeyDeleteConfirm    = "delete_confirm"
	KeyImageFailed      = "image_failed"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyInvalidURL       = "invalid_url"
	KeyCardAdded        = "card_added"
	KeyCardsCountFormat = "cards_count_format"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyGridColumns      = "grid_columns"
	KeyMinFont          = "min_font"
	KeyMaxFont          = "max_font"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Meme Grid",
		KeyGenerate:         "Generate",
		KeyEnterImageURL:    "Enter image URL (https://example.com/cat.png)",
		KeyEnterImageShort:  "Image URL",
		KeyTopCaption:       "Top text",
		KeyBottomCaption:    "Bottom text",
		KeyDeleteConfirm:    "Delete?",
		KeyImageFailed:      "Image failed to load",
		KeyPleaseEnterURL:   "Please enter an image URL",
		KeyInvalidURL:       "Invalid URL",
		KeyCardAdded:        "Meme added",
		KeyCardsCountFormat: "%d cards",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyGridColumns:      "Board columns",
		KeyMinFont:          "Minimum caption size",
		KeyMaxFont:          "Maximum caption size",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Сетка мемов",
		KeyGenerate:         "Создать",
		KeyEnterImageURL:    "Введите URL картинки (https://example.com/cat.png)",
		KeyEnterImageShort:  "URL картинки",
		KeyTopCaption:       "Верхний текст",
		KeyBottomCaption:    "Нижний текст",
		KeyDeleteConfirm:    "Удалить?",
		KeyImageFailed:      "Не удалось загрузить картинку",
		KeyPleaseEnterURL:   "Пожалуйста, введите URL картинки",
		KeyInvalidURL:       "Неверный URL",
		KeyCardAdded:        "Мем добавлен",
		KeyCardsCountFormat: "%d карточек",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyGridColumns:      "Колонки доски",
		KeyMinFont:          "Мин. размер подписи",
		KeyMaxFont:          "Макс. размер подписи",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Grade de Memes",
		KeyGenerate:         "Gerar",
		KeyEnterImageURL:    "Digite a URL da imagem (https://example.com/cat.png)",
		KeyEnterImageShort:  "URL da imagem",
		KeyTopCaption:       "Texto superior",
		KeyBottomCaption:    "Texto inferior",
		KeyDeleteConfirm:    "Excluir?",
		KeyImageFailed:      "Falha ao carregar a imagem",
		KeyPleaseEnterURL:   "Por favor, digite a URL da imagem",
		KeyInvalidURL:       "URL inválida",
		KeyCardAdded:        "Meme adicionado",
		KeyCardsCountFormat: "%d cartões",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyGridColumns:      "Colunas do quadro",
		KeyMinFont:          "Tamanho mín. da legenda",
		KeyMaxFont:          "Tamanho máx. da legenda",
	}
}
