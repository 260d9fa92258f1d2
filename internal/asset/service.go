package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prodcat/catalog-preview/internal/logging"
	"github.com/prodcat/catalog-preview/internal/platform"
)

// Default fetch limits
const (
	DefaultTimeout = 30 * time.Second

	// MaxAssetBytes caps a single asset download (256 MiB)
	MaxAssetBytes int64 = 256 << 20
)

// Service fetches remote model assets into temp files
type Service struct {
	client   *http.Client
	assetDir string
	log      zerolog.Logger
}

// NewService creates a new asset fetch service. Assets are written into
// assetDir; pass an empty string to use the platform temp-asset directory.
func NewService(assetDir string, timeout time.Duration) *Service {
	if assetDir == "" {
		dir, err := platform.TempAssetDir()
		if err == nil {
			assetDir = dir
		} else {
			assetDir = os.TempDir()
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		client:   &http.Client{Timeout: timeout},
		assetDir: assetDir,
		log:      logging.NewLogger("asset"),
	}
}

// Fetch issues a single GET for the URL and materializes the response body
// as a local file. Callers own the returned handle and must Release it when
// the session ends.
func (s *Service) Fetch(ctx context.Context, rawURL string) (*Handle, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid model URL: %w", err)
	}
	req.Header.Set("Accept", "model/gltf-binary, model/gltf+json, */*")

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	handle, err := s.materialize(rawURL, resp.Body)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("url", rawURL).
		Str("path", handle.Path).
		Int64("bytes", handle.Size).
		Dur("duration", time.Since(started)).
		Msg("asset fetched")

	return handle, nil
}

// materialize writes the body to a uniquely named temp file
func (s *Service) materialize(rawURL string, body io.Reader) (*Handle, error) {
	id := uuid.NewString()
	path := filepath.Join(s.assetDir, id+platform.ExtensionFromURL(rawURL))

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create asset file: %w", err)
	}

	size, err := io.Copy(out, io.LimitReader(body, MaxAssetBytes))
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		// Half-written file is useless, drop it
		_ = platform.RemoveFileIfExists(path)
		return nil, fmt.Errorf("write asset file: %w", err)
	}

	return &Handle{
		ID:   id,
		URL:  rawURL,
		Path: path,
		Size: size,
	}, nil
}
