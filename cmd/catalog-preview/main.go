package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/prodcat/catalog-preview/internal/asset"
	"github.com/prodcat/catalog-preview/internal/cache"
	"github.com/prodcat/catalog-preview/internal/catalog"
	"github.com/prodcat/catalog-preview/internal/config"
	"github.com/prodcat/catalog-preview/internal/logging"
	"github.com/prodcat/catalog-preview/internal/preview"
	"github.com/prodcat/catalog-preview/internal/ui"
)

// Minimal entrypoint without the Redis probe: in-process cache only.
func main() {
	logging.Setup(logging.DefaultConfig())

	// Create new Fyne app
	myApp := app.NewWithID("com.prodcat.catalog-preview")
	myWindow := myApp.NewWindow("Catalog Preview")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	fetchTimeout := time.Duration(settings.GetFetchTimeoutSeconds()) * time.Second

	store := cache.NewMemoryStore()
	catalogSvc := catalog.NewService(settings.GetCatalogBaseURL(), store, fetchTimeout)
	previewSvc := preview.NewService(asset.NewService("", fetchTimeout))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, catalogSvc, previewSvc, cache.NewInvalidator(store))

	// Show and run
	myWindow.ShowAndRun()
}
