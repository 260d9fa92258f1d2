package platform

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Asset file naming
const (
	AssetDirName          = "catalog-preview"
	DefaultAssetExtension = ".glb"
)

// Extensions accepted for preview assets
var (
	ModelExtensions = []string{".glb", ".gltf"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// TempAssetDir returns the directory for materialized asset files, creating
// it when missing. Assets placed here are transient and safe to wipe.
func TempAssetDir() (string, error) {
	dir := filepath.Join(os.TempDir(), AssetDirName)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// ExtensionFromURL derives a model file extension from the URL path.
// Unknown or missing extensions fall back to ".glb" so the renderer can
// still sniff the binary container.
func ExtensionFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return DefaultAssetExtension
	}

	ext := strings.ToLower(path.Ext(parsed.Path))
	for _, known := range ModelExtensions {
		if ext == known {
			return ext
		}
	}
	return DefaultAssetExtension
}

// RemoveFileIfExists deletes the file, treating a missing file as success
func RemoveFileIfExists(filePath string) error {
	if filePath == "" {
		return nil
	}
	err := os.Remove(filePath)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
