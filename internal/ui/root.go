package ui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/prodcat/catalog-preview/internal/cache"
	"github.com/prodcat/catalog-preview/internal/catalog"
	"github.com/prodcat/catalog-preview/internal/config"
	"github.com/prodcat/catalog-preview/internal/logging"
	"github.com/prodcat/catalog-preview/internal/model"
	"github.com/prodcat/catalog-preview/internal/preview"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	catalogSvc    catalog.ProductCatalog
	invalidator   *cache.Invalidator
	previewDialog *PreviewDialog

	urlEntry    *widget.Entry
	previewBtn  *widget.Button
	productList *widget.List
	statusLabel *widget.Label

	products []*model.Product
	selected int

	log zerolog.Logger
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalogSvc catalog.ProductCatalog, previewSvc preview.Previewer, invalidator *cache.Invalidator) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		catalogSvc:   catalogSvc,
		invalidator:  invalidator,
		selected:     -1,
		log:          logging.NewLogger("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// The preview dialog owns the session update callback
	ui.previewDialog = NewPreviewDialog(previewSvc, localization, window)

	ui.setupUI()
	ui.loadProducts()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL entry for ad-hoc model previews
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterModelURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onPreviewClick()
	}

	ui.previewBtn = widget.NewButton(ui.localization.GetText(KeyPreview), ui.onPreviewClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	refreshBtn := widget.NewButton(IconRefresh, ui.onRefreshAll)
	refreshBtn.Importance = widget.LowImportance

	invalidateBtn := widget.NewButton(ui.localization.GetText(KeyInvalidate), ui.onInvalidateSelected)

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, refreshBtn),
		container.NewHBox(invalidateBtn, ui.previewBtn),
		ui.urlEntry,
	)

	ui.statusLabel = widget.NewLabel("")

	ui.productList = widget.NewList(
		func() int { return len(ui.products) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateProductItem(id, obj) },
	)
	ui.productList.OnSelected = ui.onProductSelected

	content := container.NewBorder(
		topPanel,       // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.productList, // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterModelURL))
	ui.previewBtn.SetText(ui.localization.GetText(KeyPreview))
	ui.productList.Refresh()
}

// validateURL validates the entered model URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed; the session reports it
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onPreviewClick opens the preview modal for the entered URL
func (ui *RootUI) onPreviewClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)

	name := ""
	if ui.selected >= 0 && ui.selected < len(ui.products) {
		name = ui.products[ui.selected].GetDisplayTitle()
	}

	// Blank URLs still open the modal: the session fails with the
	// missing-input message instead of silently doing nothing
	ui.previewDialog.ShowModel(urlText, name)
}

// onProductSelected fills the URL entry from the selected product
func (ui *RootUI) onProductSelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.products) {
		return
	}
	ui.selected = id
	ui.urlEntry.SetText(ui.products[id].ModelURL)
}

// updateProductItem renders one product row
func (ui *RootUI) updateProductItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ui.products) {
		return
	}
	product := ui.products[id]

	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}

	text := product.GetDisplayTitle()
	if product.Price > 0 {
		text += MiddleDotSeparator + fmt.Sprintf("%.2f %s", product.Price, product.Currency)
	}
	if product.HasModel() {
		text += MiddleDotSeparator + IconModel
	}
	label.SetText(text)
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// onRefreshAll invalidates all product data and reloads the list
func (ui *RootUI) onRefreshAll() {
	ui.invalidator.InvalidateAllProducts(context.Background())
	ui.loadProducts()
}

// onInvalidateSelected invalidates the selected product's cache entries
func (ui *RootUI) onInvalidateSelected() {
	if ui.selected < 0 || ui.selected >= len(ui.products) {
		return
	}

	product := ui.products[ui.selected]
	ui.invalidator.InvalidateProduct(context.Background(), product.ID)
	ui.loadProducts()
}

// loadProducts fetches the product listing off the UI thread
func (ui *RootUI) loadProducts() {
	go func() {
		products, err := ui.catalogSvc.ListProducts(context.Background())

		fyne.Do(func() {
			if err != nil {
				ui.log.Warn().Err(err).Msg("failed to load products")
				ui.statusLabel.SetText(IconError + " " + ui.localization.GetText(KeyCatalogError))
				return
			}

			ui.products = products
			ui.statusLabel.SetText(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyProducts), len(products)))
			ui.productList.Refresh()
		})
	}()
}
