package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogBaseURL  = "catalog_base_url"
	KeyCacheAddress    = "cache_address"
	KeyFetchTimeoutSec = "fetch_timeout_seconds"
	KeyLanguage        = "app_language"
	KeyKeepAssets      = "keep_fetched_assets"
)

// Default values
const (
	DefaultCatalogBaseURL  = "http://localhost:8080/api"
	DefaultCacheAddress    = "localhost:6379"
	DefaultFetchTimeoutSec = 30
	DefaultLanguage        = "system"
	DefaultKeepAssets      = false

	MinFetchTimeoutSec = 5
	MaxFetchTimeoutSec = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogBaseURL returns the base URL of the product catalog API
func (s *Settings) GetCatalogBaseURL() string {
	url := s.app.Preferences().String(KeyCatalogBaseURL)
	if url == "" {
		s.SetCatalogBaseURL(DefaultCatalogBaseURL)
		return DefaultCatalogBaseURL
	}
	return url
}

// SetCatalogBaseURL sets the catalog API base URL
func (s *Settings) SetCatalogBaseURL(url string) {
	s.app.Preferences().SetString(KeyCatalogBaseURL, url)
}

// GetCacheAddress returns the address of the Redis cache backend
func (s *Settings) GetCacheAddress() string {
	addr := s.app.Preferences().String(KeyCacheAddress)
	if addr == "" {
		s.SetCacheAddress(DefaultCacheAddress)
		return DefaultCacheAddress
	}
	return addr
}

// SetCacheAddress sets the Redis cache address
func (s *Settings) SetCacheAddress(addr string) {
	s.app.Preferences().SetString(KeyCacheAddress, addr)
}

// GetFetchTimeoutSeconds returns the asset fetch timeout in seconds
func (s *Settings) GetFetchTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyFetchTimeoutSec)
	if value <= 0 {
		s.SetFetchTimeoutSeconds(DefaultFetchTimeoutSec)
		return DefaultFetchTimeoutSec
	}
	return value
}

// SetFetchTimeoutSeconds sets the asset fetch timeout, clamped to a sane range
func (s *Settings) SetFetchTimeoutSeconds(seconds int) {
	if seconds < MinFetchTimeoutSec {
		seconds = MinFetchTimeoutSec
	}
	if seconds > MaxFetchTimeoutSec {
		seconds = MaxFetchTimeoutSec
	}
	s.app.Preferences().SetInt(KeyFetchTimeoutSec, seconds)
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

// GetKeepFetchedAssets returns whether fetched asset files are kept on disk
// after the preview session ends. Off by default: the local handle is
// released with the session.
func (s *Settings) GetKeepFetchedAssets() bool {
	return s.app.Preferences().BoolWithFallback(KeyKeepAssets, DefaultKeepAssets)
}

// SetKeepFetchedAssets sets whether fetched asset files are kept on disk
func (s *Settings) SetKeepFetchedAssets(keep bool) {
	s.app.Preferences().SetBool(KeyKeepAssets, keep)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
