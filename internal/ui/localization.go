package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyTranslate          = "translate"
	KeyTranslation        = "translation"
	KeyEnterText          = "enter_text"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySourceLanguage     = "source_language"
	KeyTargetLanguage     = "target_language"
	KeyFloatingButton     = "floating_button"
	KeyFloatingActive     = "floating_active"
	KeyFloatingStarted    = "floating_started"
	KeyFloatingStopped    = "floating_stopped"
	KeyFloatingFailed     = "floating_failed"
	KeyPermissionNeeded   = "permission_needed"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyPleaseEnterText    = "please_enter_text"
	KeyTranslationFailed  = "translation_failed"
	KeyNothingTranslated  = "nothing_translated"
	KeyTranslationSection = "translation_section"
	KeyInterfaceSection   = "interface_section"
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
		KeyAppTitle:           "Dicto",
		KeyTranslate:          "Translate",
		KeyTranslation:        "Translation",
		KeyEnterText:          "Enter text to translate",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySourceLanguage:     "From",
		KeyTargetLanguage:     "To",
		KeyFloatingButton:     "Floating button",
		KeyFloatingActive:     "Floating button is active",
		KeyFloatingStarted:    "Floating button started",
		KeyFloatingStopped:    "Floating button stopped",
		KeyFloatingFailed:     "Failed to start floating button",
		KeyPermissionNeeded:   "Overlay permission required, grant it and try again",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyPleaseEnterText:    "Please enter text",
		KeyTranslationFailed:  "Translation failed",
		KeyNothingTranslated:  "Nothing translated yet",
		KeyTranslationSection: "Translation Settings",
		KeyInterfaceSection:   "Interface Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Dicto",
		KeyTranslate:          "Перевести",
		KeyTranslation:        "Перевод",
		KeyEnterText:          "Введите текст для перевода",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySourceLanguage:     "С языка",
		KeyTargetLanguage:     "На язык",
		KeyFloatingButton:     "Плавающая кнопка",
		KeyFloatingActive:     "Плавающая кнопка активна",
		KeyFloatingStarted:    "Плавающая кнопка запущена",
		KeyFloatingStopped:    "Плавающая кнопка остановлена",
		KeyFloatingFailed:     "Не удалось запустить плавающую кнопку",
		KeyPermissionNeeded:   "Нужно разрешение на наложение, выдайте его и повторите",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyPleaseEnterText:    "Пожалуйста, введите текст",
		KeyTranslationFailed:  "Ошибка перевода",
		KeyNothingTranslated:  "Пока ничего не переведено",
		KeyTranslationSection: "Настройки перевода",
		KeyInterfaceSection:   "Настройки интерфейса",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Dicto",
		KeyTranslate:          "Traduzir",
		KeyTranslation:        "Tradução",
		KeyEnterText:          "Digite o texto para traduzir",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySourceLanguage:     "De",
		KeyTargetLanguage:     "Para",
		KeyFloatingButton:     "Botão flutuante",
		KeyFloatingActive:     "Botão flutuante ativo",
		KeyFloatingStarted:    "Botão flutuante iniciado",
		KeyFloatingStopped:    "Botão flutuante parado",
		KeyFloatingFailed:     "Falha ao iniciar o botão flutuante",
		KeyPermissionNeeded:   "Permissão de sobreposição necessária, conceda e tente novamente",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyPleaseEnterText:    "Por favor, digite um texto",
		KeyTranslationFailed:  "Falha na tradução",
		KeyNothingTranslated:  "Nada traduzido ainda",
		KeyTranslationSection: "Configurações de Tradução",
		KeyInterfaceSection:   "Configurações da Interface",
	}
}
