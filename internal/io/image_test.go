package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestImageService_LoadCover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 1000, 1000), 0644))

	cover, err := NewImageService().LoadCover(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "cover.png", cover.FileName)
	assert.Equal(t, "image/png", cover.MIME)
	assert.Equal(t, 1000, cover.Width)
	assert.Equal(t, 1000, cover.Height)
	assert.Equal(t, 32, cover.ColorDepth)
	assert.True(t, cover.IsSquare(1000))
	assert.False(t, cover.IsSquare(500))
}

func TestImageService_LoadCover_SniffsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 10, 10), 0644))

	cover, err := NewImageService().LoadCover(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", cover.MIME)
}

func TestImageService_LoadCover_Errors(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService()

	_, err := svc.LoadCover(context.Background(), filepath.Join(dir, "missing.jpg"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.jpg")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = svc.LoadCover(context.Background(), bad)
	assert.Error(t, err)
}

func TestImageService_FitCover(t *testing.T) {
	svc := NewImageService()
	cover, err := svc.inspect("big.jpg", encodeJPEG(t, 1500, 1000))
	require.NoError(t, err)
	assert.Equal(t, 24, cover.ColorDepth)

	fitted, err := svc.FitCover(context.Background(), cover, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1000, fitted.Width)
	assert.Equal(t, 666, fitted.Height)
	assert.Equal(t, "image/jpeg", fitted.MIME)
}

func TestDimensions(t *testing.T) {
	w, h, depth, err := Dimensions(encodePNG(t, 20, 10))
	require.NoError(t, err)
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, 32, depth)

	_, _, _, err = Dimensions([]byte("nope"))
	assert.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden(".DS_Store"))
	assert.True(t, IsHidden(".hidden"))
	assert.False(t, IsHidden("cover.jpg"))
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "nested", "report.json")
	require.NoError(t, WriteFile(context.Background(), path, []byte("{}")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
