package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/prodcat/catalog-preview/internal/model"
	"github.com/prodcat/catalog-preview/internal/preview"
)

// PreviewDialog is the modal that renders the 3D preview session: a spinner
// while preparing, the scene info and camera controls when ready, and a
// guidance panel when the session fails.
type PreviewDialog struct {
	window       fyne.Window
	previewSvc   preview.Previewer
	localization *Localization

	dialog *dialog.CustomDialog

	// UI components
	titleLabel    *widget.Label
	statusLabel   *widget.Label
	spinner       *widget.ProgressBarInfinite
	infoLabel     *widget.Label
	distanceLabel *widget.Label
	zoomInBtn     *widget.Button
	zoomOutBtn    *widget.Button
	resetBtn      *widget.Button
	cameraRow     *fyne.Container
}

// NewPreviewDialog creates the preview modal and registers for session updates
func NewPreviewDialog(previewSvc preview.Previewer, localization *Localization, window fyne.Window) *PreviewDialog {
	pd := &PreviewDialog{
		window:       window,
		previewSvc:   previewSvc,
		localization: localization,
	}

	pd.createUI()
	pd.previewSvc.SetUpdateCallback(pd.onSessionUpdate)
	return pd
}

// ShowModel opens the modal and starts a session for the URL
func (pd *PreviewDialog) ShowModel(url, displayName string) {
	pd.dialog.Resize(fyne.NewSize(PreviewDialogWidth, PreviewDialogHeight))
	pd.dialog.Show()
	pd.previewSvc.Open(url, displayName)
}

// ShowProduct opens the modal for a catalog product
func (pd *PreviewDialog) ShowProduct(product *model.Product) {
	if !product.HasModel() {
		widget.ShowPopUp(widget.NewLabel(pd.localization.GetText(KeyNoModel)), pd.window.Canvas())
		return
	}
	pd.ShowModel(product.ModelURL, product.GetDisplayTitle())
}

// createUI builds the dialog content
func (pd *PreviewDialog) createUI() {
	pd.titleLabel = widget.NewLabel("")
	pd.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	pd.statusLabel = widget.NewLabel("")
	pd.spinner = widget.NewProgressBarInfinite()
	pd.spinner.Hide()

	pd.infoLabel = widget.NewLabel("")
	pd.infoLabel.Wrapping = fyne.TextWrapWord

	pd.distanceLabel = widget.NewLabel(DashPlaceholder)
	pd.zoomInBtn = widget.NewButton(IconZoomIn, pd.previewSvc.ZoomIn)
	pd.zoomOutBtn = widget.NewButton(IconZoomOut, pd.previewSvc.ZoomOut)
	pd.resetBtn = widget.NewButton(IconReset, pd.previewSvc.ResetCamera)

	pd.cameraRow = container.NewHBox(
		pd.zoomInBtn,
		pd.zoomOutBtn,
		pd.resetBtn,
		widget.NewLabel(pd.localization.GetText(KeyCameraDistance)+":"),
		pd.distanceLabel,
	)
	pd.cameraRow.Hide()

	content := container.NewVBox(
		pd.titleLabel,
		container.NewHBox(pd.spinner, pd.statusLabel),
		widget.NewSeparator(),
		pd.infoLabel,
		pd.cameraRow,
	)

	pd.dialog = dialog.NewCustom(
		pd.localization.GetText(KeyPreview),
		pd.localization.GetText(KeyClose),
		content,
		pd.window,
	)
	pd.dialog.SetOnClosed(pd.previewSvc.Close)
}

// onSessionUpdate reflects session state into the dialog. Updates arrive
// from the fetch goroutine, so all widget mutation goes through fyne.Do.
func (pd *PreviewDialog) onSessionUpdate(session *model.ViewerSession) {
	fyne.Do(func() {
		switch session.Status {
		case model.SessionStatusPreparing:
			pd.showPreparing(session)
		case model.SessionStatusReady:
			pd.showReady(session)
		case model.SessionStatusError:
			pd.showError(session)
		case model.SessionStatusClosed:
			// Dialog already dismissed, nothing to render
		}
	})
}

func (pd *PreviewDialog) showPreparing(session *model.ViewerSession) {
	pd.titleLabel.SetText(session.GetDisplayTitle())
	pd.statusLabel.SetText(pd.localization.GetText(KeyPreparingModel))
	pd.spinner.Show()
	pd.infoLabel.SetText("")
	pd.cameraRow.Hide()
}

func (pd *PreviewDialog) showReady(session *model.ViewerSession) {
	pd.spinner.Hide()
	pd.statusLabel.SetText(pd.localization.GetText(KeyModelReady))
	pd.infoLabel.SetText(pd.sceneInfo())
	pd.distanceLabel.SetText(fmt.Sprintf(DistanceFormat, session.CameraDistance))
	pd.cameraRow.Show()
}

func (pd *PreviewDialog) showError(session *model.ViewerSession) {
	pd.spinner.Hide()
	pd.statusLabel.SetText(IconError + " " + session.ErrorMessage)
	pd.cameraRow.Hide()

	info := pd.localization.GetText(KeyFailedURL) + ": " + session.RequestedURL +
		"\n\n" + pd.localization.GetText(KeyErrorGuidance)
	pd.infoLabel.SetText(info)
}

// sceneInfo formats the loaded scene summary
func (pd *PreviewDialog) sceneInfo() string {
	summary := pd.previewSvc.Summary()
	if summary == nil {
		return ""
	}

	info := fmt.Sprintf("%s%d %s%s%d %s",
		IconModel+" ",
		summary.NodeCount, pd.localization.GetText(KeyNodes),
		MiddleDotSeparator,
		summary.MeshCount, pd.localization.GetText(KeyMeshes),
	)

	if summary.HasBounds {
		info += fmt.Sprintf("%s%.2f × %.2f × %.2f",
			MiddleDotSeparator,
			summary.BoundsMax[0]-summary.BoundsMin[0],
			summary.BoundsMax[1]-summary.BoundsMin[1],
			summary.BoundsMax[2]-summary.BoundsMin[2],
		)
	}
	return info
}
