package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Title string `validate:"required"`
	Level int    `validate:"min=1,max=5"`
}

func TestValidateDTO(t *testing.T) {
	assert.NoError(t, ValidateDTO(&sampleDTO{Title: "绒花", Level: 3}))

	err := ValidateDTO(&sampleDTO{Level: 3})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Title", fe.Field)
	assert.Equal(t, "required", fe.Tag)
}

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("今天做了 #绒花 和 #缠花。 #绒花")
	assert.Equal(t, []string{"绒花", "缠花"}, tags)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!%", EscapeLike("100%"))
	assert.Equal(t, "a!_b", EscapeLike("a_b"))
	assert.Equal(t, "!!", EscapeLike("!"))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 5, 17, 42, 9, 0, time.Local)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), StartOfDay(ts))
}

func TestAllowedExtension(t *testing.T) {
	allowed := []string{".jpg", ".png", ".mp4"}

	ext, ok := AllowedExtension("photo.JPG", allowed)
	assert.True(t, ok)
	assert.Equal(t, ".jpg", ext)

	_, ok = AllowedExtension("script.exe", allowed)
	assert.False(t, ok)

	_, ok = AllowedExtension("noext", allowed)
	assert.False(t, ok)
}

func TestMakeThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for x := 0; x < 400; x++ {
		img.Set(x, 10, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	data, size, err := MakeThumbnail(&buf, 100)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, image.Point{X: 100, Y: 50}, size)
	assert.Equal(t, "image/jpeg", DetectMimeType(data))
}
