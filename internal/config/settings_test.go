package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCatalogBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetCatalogBaseURL()
	if url != DefaultCatalogBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultCatalogBaseURL, url)
	}

	// Test setting custom value
	customURL := "https://catalog.example.com/api"
	settings.SetCatalogBaseURL(customURL)

	if got := settings.GetCatalogBaseURL(); got != customURL {
		t.Errorf("Expected base URL %s, got %s", customURL, got)
	}
}

func TestCacheAddress(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	addr := settings.GetCacheAddress()
	if addr != DefaultCacheAddress {
		t.Errorf("Expected default cache address %s, got %s", DefaultCacheAddress, addr)
	}

	// Test setting custom value
	settings.SetCacheAddress("redis.internal:6380")

	if got := settings.GetCacheAddress(); got != "redis.internal:6380" {
		t.Errorf("Expected cache address redis.internal:6380, got %s", got)
	}
}

func TestFetchTimeoutSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	timeout := settings.GetFetchTimeoutSeconds()
	if timeout != DefaultFetchTimeoutSec {
		t.Errorf("Expected default timeout %d, got %d", DefaultFetchTimeoutSec, timeout)
	}

	// Test setting custom value
	settings.SetFetchTimeoutSeconds(60)
	if settings.GetFetchTimeoutSeconds() != 60 {
		t.Errorf("Expected timeout 60, got %d", settings.GetFetchTimeoutSeconds())
	}

	// Test boundary values
	settings.SetFetchTimeoutSeconds(1) // Should be clamped to minimum
	if settings.GetFetchTimeoutSeconds() != MinFetchTimeoutSec {
		t.Errorf("Timeout should be clamped to %d", MinFetchTimeoutSec)
	}

	settings.SetFetchTimeoutSeconds(10000) // Should be clamped to maximum
	if settings.GetFetchTimeoutSeconds() != MaxFetchTimeoutSec {
		t.Errorf("Timeout should be clamped to %d", MaxFetchTimeoutSec)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestKeepFetchedAssets(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetKeepFetchedAssets() != DefaultKeepAssets {
		t.Errorf("Expected default keep-assets %v", DefaultKeepAssets)
	}

	settings.SetKeepFetchedAssets(true)
	if !settings.GetKeepFetchedAssets() {
		t.Error("Expected keep-assets true after set")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
