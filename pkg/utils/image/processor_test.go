package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestProcess_PNG(t *testing.T) {
	out, err := Process(bytes.NewReader(samplePNG(t)))
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, "png", out.Ext)
	assert.Greater(t, out.Body.Len(), 0)
}

func TestProcess_InvalidData(t *testing.T) {
	_, err := Process(strings.NewReader("not an image"))
	assert.Error(t, err)
}
