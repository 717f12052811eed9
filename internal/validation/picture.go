package validation

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// PictureConstraints defines the accepted room picture files
type PictureConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int
}

var RoomPictureConstraints = PictureConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
	},
	AllowedExtensions: map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
	},
	MaxSize: 5 << 20, // 5MB
}

// ValidatePicture checks a room picture loaded from storage before it is stored as a blob.
// The type is detected from the content (magic numbers), not trusted from the name.
func ValidatePicture(name string, data []byte, constraints PictureConstraints) error {
	if len(data) == 0 {
		return fmt.Errorf("picture %s is empty", name)
	}

	if len(data) > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("picture %s too large: maximum size is %d MB", name, maxMB)
	}

	// http.DetectContentType reads max 512 bytes to determine MIME type
	detectedType := http.DetectContentType(data)
	if !constraints.AllowedMimeTypes[detectedType] {
		return fmt.Errorf("invalid picture type for %s (detected: %s)", name, detectedType)
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !constraints.AllowedExtensions[ext] {
		return fmt.Errorf("invalid picture extension: %s", ext)
	}

	return nil
}
