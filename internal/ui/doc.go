package ui

// Package ui contains the Fyne-based desktop user interface: the catalog
// product list, the 3D preview modal, and the settings dialog. It wires user
// interactions to the preview and catalog services. All UI strings are
// localized via Localization.
