package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyProducts       = "products"
	KeyPreview        = "preview"
	KeyRefresh        = "refresh"
	KeyInvalidate     = "invalidate"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyClose          = "close"
	KeyEnterModelURL  = "enter_model_url"
	KeyCatalogBaseURL = "catalog_base_url"
	KeyCacheAddress   = "cache_address"
	KeyFetchTimeout   = "fetch_timeout"
	KeyKeepAssets     = "keep_assets"
	KeySettingsSaved  = "settings_saved"
	KeyPreparingModel = "preparing_model"
	KeyNoModel        = "no_model"
	KeyZoomIn         = "zoom_in"
	KeyZoomOut        = "zoom_out"
	KeyResetCamera    = "reset_camera"
	KeyCameraDistance = "camera_distance"
	KeyModelReady     = "model_ready"
	KeyNodes          = "nodes"
	KeyMeshes         = "meshes"
	KeyFailedURL      = "failed_url"
	KeyErrorGuidance  = "error_guidance"
	KeyCatalogError   = "catalog_error"
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
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Catalog Preview",
		KeyProducts:       "Products",
		KeyPreview:        "Preview",
		KeyRefresh:        "Refresh",
		KeyInvalidate:     "Invalidate",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyClose:          "Close",
		KeyEnterModelURL:  "Enter model URL (https://cdn.example.com/model.glb)",
		KeyCatalogBaseURL: "Catalog API Base URL",
		KeyCacheAddress:   "Cache (Redis) Address",
		KeyFetchTimeout:   "Fetch Timeout (seconds)",
		KeyKeepAssets:     "Keep fetched model files",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyPreparingModel: "Preparing model...",
		KeyNoModel:        "This product has no 3D model",
		KeyZoomIn:         "Zoom In",
		KeyZoomOut:        "Zoom Out",
		KeyResetCamera:    "Reset Camera",
		KeyCameraDistance: "Camera distance",
		KeyModelReady:     "Model loaded",
		KeyNodes:          "nodes",
		KeyMeshes:         "meshes",
		KeyFailedURL:      "Failed URL",
		KeyErrorGuidance: "Common causes:\n" +
			"• the remote server restricts cross-origin access\n" +
			"• the asset is not a valid GLB/GLTF model\n" +
			"• the URL is not accessible",
		KeyCatalogError: "Failed to load products",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Каталог 3D",
		KeyProducts:       "Товары",
		KeyPreview:        "Просмотр",
		KeyRefresh:        "Обновить",
		KeyInvalidate:     "Сбросить кэш",
		KeySettings:       "Настройки",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyClose:          "Закрыть",
		KeyEnterModelURL:  "Введите URL модели (https://cdn.example.com/model.glb)",
		KeyCatalogBaseURL: "Базовый URL каталога",
		KeyCacheAddress:   "Адрес кэша (Redis)",
		KeyFetchTimeout:   "Таймаут загрузки (сек)",
		KeyKeepAssets:     "Сохранять файлы моделей",
		KeySettingsSaved:  "Настройки сохранены!",
		KeyPreparingModel: "Подготовка модели...",
		KeyNoModel:        "У товара нет 3D-модели",
		KeyZoomIn:         "Приблизить",
		KeyZoomOut:        "Отдалить",
		KeyResetCamera:    "Сбросить камеру",
		KeyCameraDistance: "Дистанция камеры",
		KeyModelReady:     "Модель загружена",
		KeyNodes:          "узлов",
		KeyMeshes:         "мешей",
		KeyFailedURL:      "Проблемный URL",
		KeyErrorGuidance: "Частые причины:\n" +
			"• удалённый сервер ограничивает кросс-доменный доступ\n" +
			"• файл не является корректной моделью GLB/GLTF\n" +
			"• URL недоступен",
		KeyCatalogError: "Не удалось загрузить товары",
	}
}
