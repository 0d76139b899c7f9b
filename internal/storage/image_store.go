package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("invalid image payload")

// ImageStore persists recipe images and hands back an opaque reference that
// goes into the recipe row. The API layer never cares where the bytes live.
type ImageStore interface {
	Save(data []byte, ext string) (ref string, err error)
	Remove(ref string) error
	URL(ref string) string
}

// FSImageStore writes images under a media directory on local disk.
type FSImageStore struct {
	root    string
	baseURL string
}

func NewFSImageStore(root, baseURL string) (*FSImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &FSImageStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *FSImageStore) Save(data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidImage
	}
	ref := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(s.root, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return ref, nil
}

func (s *FSImageStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

func (s *FSImageStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + "/" + ref
}

// DecodeDataURI unpacks a "data:image/png;base64,...." payload into raw
// bytes and a file extension. Only image media types are accepted.
func DecodeDataURI(uri string) ([]byte, string, error) {
	meta, encoded, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, "", ErrInvalidImage
	}
	if !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
		return nil, "", ErrInvalidImage
	}
	mediaType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:image/"), ";base64")
	ext := strings.ToLower(mediaType)
	switch ext {
	case "png", "jpeg", "jpg", "gif", "webp":
	default:
		return nil, "", ErrInvalidImage
	}
	if ext == "jpeg" {
		ext = "jpg"
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", ErrInvalidImage
	}
	if len(data) == 0 {
		return nil, "", ErrInvalidImage
	}
	return data, ext, nil
}
