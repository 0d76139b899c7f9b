package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	t.Run("ValidPNG", func(t *testing.T) {
		data, ext, err := DecodeDataURI("data:image/png;base64," + payload)
		assert.NoError(t, err)
		assert.Equal(t, "png", ext)
		assert.Equal(t, []byte("fake image bytes"), data)
	})

	t.Run("JpegNormalizedToJpg", func(t *testing.T) {
		_, ext, err := DecodeDataURI("data:image/jpeg;base64," + payload)
		assert.NoError(t, err)
		assert.Equal(t, "jpg", ext)
	})

	t.Run("NotAnImage", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:text/plain;base64," + payload)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("BadBase64", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64,!!!not-base64!!!")
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("NoComma", func(t *testing.T) {
		_, _, err := DecodeDataURI("data:image/png;base64")
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}

func TestFSImageStore(t *testing.T) {
	store, err := NewFSImageStore(t.TempDir(), "/media")
	assert.NoError(t, err)

	t.Run("SaveAndRemove", func(t *testing.T) {
		ref, err := store.Save([]byte("bytes"), "png")
		assert.NoError(t, err)
		assert.NotEmpty(t, ref)

		content, err := os.ReadFile(filepath.Join(store.root, ref))
		assert.NoError(t, err)
		assert.Equal(t, []byte("bytes"), content)

		assert.NoError(t, store.Remove(ref))
		_, err = os.Stat(filepath.Join(store.root, ref))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("EmptyPayloadRejected", func(t *testing.T) {
		_, err := store.Save(nil, "png")
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("RemoveMissingIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Remove("never-existed.png"))
	})

	t.Run("URL", func(t *testing.T) {
		assert.Equal(t, "/media/x.png", store.URL("x.png"))
		assert.Equal(t, "", store.URL(""))
	})
}
