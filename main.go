package main

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/redis/go-redis/v9"

	"github.com/prodcat/catalog-preview/internal/asset"
	"github.com/prodcat/catalog-preview/internal/cache"
	"github.com/prodcat/catalog-preview/internal/catalog"
	"github.com/prodcat/catalog-preview/internal/config"
	"github.com/prodcat/catalog-preview/internal/logging"
	"github.com/prodcat/catalog-preview/internal/preview"
	"github.com/prodcat/catalog-preview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.prodcat.catalog-preview"
	AppName = "Catalog Preview"
)

func main() {
	logger := logging.Setup(logging.DefaultConfig())
	logger.Info().Str("version", version).Msg("catalog preview starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	fetchTimeout := time.Duration(settings.GetFetchTimeoutSeconds()) * time.Second

	store := newStore(settings)
	invalidator := cache.NewInvalidator(store)
	catalogSvc := catalog.NewService(settings.GetCatalogBaseURL(), store, fetchTimeout)

	assetSvc := asset.NewService("", fetchTimeout)
	previewSvc := preview.NewService(assetSvc)
	previewSvc.SetKeepAssets(settings.GetKeepFetchedAssets())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, catalogSvc, previewSvc, invalidator)

	// Show and run
	myWindow.ShowAndRun()
}

// newStore connects to the configured Redis backend, falling back to the
// in-process store when Redis is unreachable. The app stays usable either
// way; only cache sharing across runs is lost.
func newStore(settings *config.Settings) cache.Store {
	log := logging.NewLogger("main")

	addr := settings.GetCacheAddress()
	redisClient := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unavailable, using in-process cache")
		return cache.NewMemoryStore()
	}

	log.Info().Str("addr", addr).Msg("using redis cache backend")
	return cache.NewRedisStore(redisClient)
}
