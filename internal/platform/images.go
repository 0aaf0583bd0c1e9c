package platform

// Package platform holds host-filesystem integration: loading a user-picked
// photo into the self-contained data-URI form the item record stores.

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxImageBytes caps the accepted photo size; item snapshots are persisted
// wholesale on every mutation, so oversized images would bloat each write.
const MaxImageBytes = 2 << 20

// EncodeImageDataURI reads an image file and returns it as a base64 data URI
// with a sniffed MIME type.
func EncodeImageDataURI(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat image: %w", err)
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("image too large: %d bytes (max %d)", info.Size(), MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
