package model

import (
	"strings"
	"time"
)

// Camera defaults and clamp bounds. Distance is kept inside
// [CameraMinDistance, CameraMaxDistance] at all times.
const (
	CameraDefaultDistance = 4.0
	CameraZoomStep        = 0.5
	CameraMinDistance     = 1.5
	CameraMaxDistance     = 10.0

	CameraDefaultYaw   = 45.0
	CameraDefaultPitch = 30.0
)

// ViewerSession represents one open-to-close lifetime of the preview modal
// for a given source URL. Exactly one session is live per open modal.
type ViewerSession struct {
	ID           string
	RequestedURL string
	DisplayName  string

	// ResolvedLocalPath is the temp file holding the fetched asset bytes.
	// Set if and only if the network fetch succeeded.
	ResolvedLocalPath string

	Status       SessionStatus
	ErrorMessage string // non-empty if and only if Status is Error

	CameraDistance float64
	CameraYaw      float64 // degrees around the vertical axis
	CameraPitch    float64 // degrees above the horizontal plane

	// Generation identifies this session against stale fetch results. A
	// result whose generation no longer matches the live session is
	// discarded without touching state.
	Generation int64

	OpenedAt   time.Time
	FinishedAt time.Time
}

// ResetCamera restores the default distance and orbit orientation
func (vs *ViewerSession) ResetCamera() {
	vs.CameraDistance = CameraDefaultDistance
	vs.CameraYaw = CameraDefaultYaw
	vs.CameraPitch = CameraDefaultPitch
}

// ClampCameraDistance returns d clamped to the allowed camera range
func ClampCameraDistance(d float64) float64 {
	if d < CameraMinDistance {
		return CameraMinDistance
	}
	if d > CameraMaxDistance {
		return CameraMaxDistance
	}
	return d
}

// Fail marks the session as failed with the given user-facing message
func (vs *ViewerSession) Fail(msg string) {
	vs.Status = SessionStatusError
	vs.ErrorMessage = msg
	vs.FinishedAt = time.Now()
}

// GetDisplayTitle returns the display name, or a compacted form of the URL
// when no name was provided
func (vs *ViewerSession) GetDisplayTitle() string {
	if strings.TrimSpace(vs.DisplayName) != "" {
		return vs.DisplayName
	}

	if vs.RequestedURL == "" {
		return ""
	}

	// Fall back to the last path segment without extension
	parts := strings.FieldsFunc(vs.RequestedURL, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) > 0 {
		name := parts[len(parts)-1]
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		if name != "" && !strings.HasPrefix(name, "http") {
			return name
		}
	}
	return vs.RequestedURL
}
