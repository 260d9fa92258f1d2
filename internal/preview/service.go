package preview

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prodcat/catalog-preview/internal/asset"
	"github.com/prodcat/catalog-preview/internal/logging"
	"github.com/prodcat/catalog-preview/internal/model"
	"github.com/prodcat/catalog-preview/internal/scene"
)

// Hint appended when a fetch fails without an HTTP status, which usually
// means the remote server never let the request through
const crossOriginHint = "The remote server may restrict cross-origin access."

// Service manages the single live viewer session
type Service struct {
	mu         sync.Mutex
	session    *model.ViewerSession
	summary    *scene.Summary
	handle     *asset.Handle
	cancel     context.CancelFunc
	generation int64
	keepAssets bool

	fetcher   asset.Fetcher
	loadScene func(path string) (*scene.Summary, error)
	onUpdate  func(*model.ViewerSession) // callback for UI updates
	log       zerolog.Logger
}

// NewService creates a new preview service on top of an asset fetcher
func NewService(fetcher asset.Fetcher) *Service {
	return &Service{
		fetcher:   fetcher,
		loadScene: scene.Load,
		log:       logging.NewLogger("preview"),
	}
}

// SetUpdateCallback sets the callback function for session updates
func (s *Service) SetUpdateCallback(callback func(*model.ViewerSession)) {
	s.onUpdate = callback
}

// SetKeepAssets controls whether fetched asset files survive session teardown
func (s *Service) SetKeepAssets(keep bool) {
	s.mu.Lock()
	s.keepAssets = keep
	s.mu.Unlock()
}

// Open starts a new session for the URL, tearing down any live one. A blank
// URL fails the session immediately without a network call.
func (s *Service) Open(url, displayName string) {
	s.mu.Lock()
	s.teardownLocked()

	gen := s.generation
	session := &model.ViewerSession{
		ID:           uuid.NewString(),
		RequestedURL: url,
		DisplayName:  displayName,
		Status:       model.SessionStatusPreparing,
		Generation:   gen,
		OpenedAt:     time.Now(),
	}
	session.ResetCamera()
	s.session = session

	if strings.TrimSpace(url) == "" {
		session.Fail(asset.ErrEmptyURL.Error())
		s.mu.Unlock()
		s.notifyUpdate(session)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	s.log.Debug().Str("url", url).Int64("generation", gen).Msg("session opened")
	s.notifyUpdate(session)

	go s.prepare(ctx, gen, url)
}

// SetSourceURL restarts the session with a new URL, keeping the display name
func (s *Service) SetSourceURL(url string) {
	s.mu.Lock()
	name := ""
	if s.session != nil {
		name = s.session.DisplayName
	}
	s.mu.Unlock()

	s.Open(url, name)
}

// Close tears down the live session and releases its local resource
func (s *Service) Close() {
	s.mu.Lock()
	session := s.session
	s.teardownLocked()
	s.session = nil
	s.mu.Unlock()

	if session == nil {
		return
	}

	// State is discarded on close
	session.Status = model.SessionStatusClosed
	session.ErrorMessage = ""
	session.ResolvedLocalPath = ""

	s.log.Debug().Str("url", session.RequestedURL).Msg("session closed")
	s.notifyUpdate(session)
}

// Current returns the live session, or nil when the modal is closed
func (s *Service) Current() *model.ViewerSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Summary returns the loaded scene summary while the session is Ready
func (s *Service) Summary() *scene.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// ZoomIn moves the camera closer by one step, clamped to the minimum
func (s *Service) ZoomIn() {
	s.adjustCamera(-model.CameraZoomStep)
}

// ZoomOut moves the camera away by one step, clamped to the maximum
func (s *Service) ZoomOut() {
	s.adjustCamera(model.CameraZoomStep)
}

// ResetCamera restores the default distance and orbit orientation
func (s *Service) ResetCamera() {
	s.mu.Lock()
	session := s.session
	if session == nil || session.Status != model.SessionStatusReady {
		s.mu.Unlock()
		return
	}
	session.ResetCamera()
	s.mu.Unlock()

	s.notifyUpdate(session)
}

func (s *Service) adjustCamera(delta float64) {
	s.mu.Lock()
	session := s.session
	if session == nil || session.Status != model.SessionStatusReady {
		s.mu.Unlock()
		return
	}
	session.CameraDistance = model.ClampCameraDistance(session.CameraDistance + delta)
	s.mu.Unlock()

	s.notifyUpdate(session)
}

// prepare runs the fetch-then-validate pipeline for one session generation
func (s *Service) prepare(ctx context.Context, gen int64, url string) {
	handle, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.finishError(gen, url, err)
		return
	}

	summary, err := s.loadScene(handle.Path)
	if err != nil {
		if relErr := handle.Release(); relErr != nil {
			s.log.Warn().Err(relErr).Msg("failed to release asset handle")
		}
		s.finishError(gen, url, err)
		return
	}

	s.mu.Lock()
	if s.generation != gen || s.session == nil {
		s.mu.Unlock()
		// Stale result: a newer session took over, discard ours
		if relErr := handle.Release(); relErr != nil {
			s.log.Warn().Err(relErr).Msg("failed to release stale asset handle")
		}
		s.log.Debug().Str("url", url).Int64("generation", gen).Msg("discarded stale fetch result")
		return
	}

	s.handle = handle
	s.summary = summary
	session := s.session
	session.ResolvedLocalPath = handle.Path
	session.Status = model.SessionStatusReady
	session.FinishedAt = time.Now()
	s.mu.Unlock()

	s.log.Info().
		Str("url", url).
		Str("path", handle.Path).
		Int("meshes", summary.MeshCount).
		Msg("model ready")
	s.notifyUpdate(session)
}

// finishError applies a failure to the session, unless the result is stale
func (s *Service) finishError(gen int64, url string, err error) {
	if errors.Is(err, context.Canceled) {
		// Teardown raced the fetch; nothing to report
		return
	}

	s.mu.Lock()
	if s.generation != gen || s.session == nil {
		s.mu.Unlock()
		return
	}
	session := s.session
	session.Fail(failureMessage(err))
	s.mu.Unlock()

	s.log.Warn().Err(err).Str("url", url).Msg("preview session failed")
	s.notifyUpdate(session)
}

// failureMessage builds the user-facing message for a session failure
func failureMessage(err error) string {
	if asset.IsStatusError(err) || errors.Is(err, asset.ErrEmptyURL) {
		return err.Error()
	}

	msg := err.Error()
	if isGenericFetchFailure(err) {
		msg += ". " + crossOriginHint
	}
	return msg
}

// isGenericFetchFailure reports whether the error is a transport-level fetch
// failure with no HTTP status to point at
func isGenericFetchFailure(err error) bool {
	if asset.IsStatusError(err) {
		return false
	}
	return strings.Contains(err.Error(), "fetch ")
}

// teardownLocked cancels in-flight work and releases the session's local
// resource. Bumping the generation makes any in-flight result stale. Caller
// holds the lock.
func (s *Service) teardownLocked() {
	s.generation++

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.handle != nil {
		if !s.keepAssets {
			if err := s.handle.Release(); err != nil {
				s.log.Warn().Err(err).Msg("failed to release asset handle")
			}
		}
		s.handle = nil
	}
	s.summary = nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(session *model.ViewerSession) {
	if s.onUpdate != nil {
		s.onUpdate(session)
	}
}
