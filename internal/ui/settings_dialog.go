package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/prodcat/catalog-preview/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	baseURLEntry    *widget.Entry
	cacheAddrEntry  *widget.Entry
	timeoutEntry    *widget.Entry
	keepAssetsCheck *widget.Check
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultCatalogBaseURL)

	sd.cacheAddrEntry = widget.NewEntry()
	sd.cacheAddrEntry.SetPlaceHolder(config.DefaultCacheAddress)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultFetchTimeoutSec))

	sd.keepAssetsCheck = widget.NewCheck(sd.localization.GetText(KeyKeepAssets), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCatalogBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyCacheAddress)+":"),
		sd.cacheAddrEntry,

		widget.NewLabel(sd.localization.GetText(KeyFetchTimeout)+":"),
		sd.timeoutEntry,

		sd.keepAssetsCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetCatalogBaseURL())
	sd.cacheAddrEntry.SetText(sd.settings.GetCacheAddress())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetFetchTimeoutSeconds()))
	sd.keepAssetsCheck.SetChecked(sd.settings.GetKeepFetchedAssets())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.baseURLEntry.Text != "" {
		sd.settings.SetCatalogBaseURL(sd.baseURLEntry.Text)
	}

	if sd.cacheAddrEntry.Text != "" {
		sd.settings.SetCacheAddress(sd.cacheAddrEntry.Text)
	}

	if sd.timeoutEntry.Text != "" {
		if timeout, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
			sd.settings.SetFetchTimeoutSeconds(timeout)
		}
	}

	sd.settings.SetKeepFetchedAssets(sd.keepAssetsCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
