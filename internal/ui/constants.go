package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconPreview  = "▶"
	IconZoomIn   = "+"
	IconZoomOut  = "−"
	IconReset    = "⌂"
	IconError    = "❌"
	IconModel    = "🧊"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	DistanceFormat     = "%.1f"
)

// Layout sizing
const (
	PreviewDialogWidth  float32 = 520
	PreviewDialogHeight float32 = 420
	ViewportMinWidth    float32 = 480
	ViewportMinHeight   float32 = 260

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360

	WindowWidth  float32 = 800
	WindowHeight float32 = 600
)
