package service

import (
	"Ronghua/internal/api/config"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memoryObjectStore) Put(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	s.types[objectName] = contentType
	return objectName, nil
}

func (s *memoryObjectStore) PublicURL(objectName string) string {
	return "http://cdn.test/ronghua/" + objectName
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var uploadCfg = config.UploadConfig{MaxFileSize: 1 << 20, AllowedExtensions: []string{".jpg", ".png", ".mp4"}}

func TestMediaService_UploadImageWithThumbnail(t *testing.T) {
	store := newMemoryObjectStore()
	svc := NewMediaService(store, uploadCfg, 40)
	data := pngBytes(t, 200, 100)

	out, err := svc.Upload(context.Background(), "flower.PNG", int64(len(data)), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.MimeType)
	assert.True(t, strings.HasPrefix(out.ObjectName, "media/"))
	assert.True(t, strings.HasSuffix(out.ObjectName, ".png"))
	assert.Equal(t, "http://cdn.test/ronghua/"+out.ObjectName, out.URL)
	assert.Equal(t, data, store.objects[out.ObjectName])

	require.NotEmpty(t, out.ThumbnailURL)
	thumbKey := strings.TrimPrefix(out.ThumbnailURL, "http://cdn.test/ronghua/")
	assert.Equal(t, "image/jpeg", store.types[thumbKey])
	cfg, _, err := image.DecodeConfig(bytes.NewReader(store.objects[thumbKey]))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestMediaService_Rejects(t *testing.T) {
	store := newMemoryObjectStore()
	svc := NewMediaService(store, uploadCfg, 0)
	ctx := context.Background()
	data := pngBytes(t, 4, 4)

	_, err := svc.Upload(ctx, "flower.gif", int64(len(data)), bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrFileNotSupported)

	_, err = svc.Upload(ctx, "big.png", 2<<20, bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	text := []byte("not really an image at all")
	_, err = svc.Upload(ctx, "fake.png", int64(len(text)), bytes.NewReader(text))
	assert.ErrorIs(t, err, ErrFileNotSupported)

	_, err = svc.Upload(ctx, "empty.png", 0, bytes.NewReader(nil))
	assertKind(t, KindValidation, err)
	assert.Empty(t, store.objects)

	_, err = NewMediaService(nil, uploadCfg, 0).Upload(ctx, "flower.png", int64(len(data)), bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrFeatureDisabled)
}
