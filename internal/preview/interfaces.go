package preview

import (
	"github.com/prodcat/catalog-preview/internal/model"
	"github.com/prodcat/catalog-preview/internal/scene"
)

// Previewer defines the interface for the preview session service.
type Previewer interface {
	SetUpdateCallback(func(*model.ViewerSession))
	Open(url, displayName string)
	SetSourceURL(url string)
	Close()
	Current() *model.ViewerSession
	Summary() *scene.Summary

	// Camera controls, valid only while the session is Ready
	ZoomIn()
	ZoomOut()
	ResetCamera()
}
