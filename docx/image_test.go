package docx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/md-docx-converter/document"
)

func solidImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func encodePNG(t testing.TB, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(width, height)))
	return buf.Bytes()
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		width, height int
		wantW, wantH  int
	}{
		{width: 300, height: 200, wantW: 300, wantH: 200},
		{width: 1200, height: 400, wantW: 600, wantH: 200},
		{width: 400, height: 800, wantW: 200, wantH: 400},
		{width: 6000, height: 1, wantW: 600, wantH: 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.width, tt.height), func(t *testing.T) {
			w, h := fitWithin(tt.width, tt.height, maxDisplayWidth, maxDisplayHeight)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestPrepareImagePassesPNGThrough(t *testing.T) {
	data := encodePNG(t, 20, 10)
	prepared, err := prepareImage(data)
	require.NoError(t, err)
	assert.Equal(t, "png", prepared.ext)
	assert.Equal(t, data, prepared.data)
	assert.Equal(t, 20, prepared.width)
	assert.Equal(t, 10, prepared.height)
}

func TestPrepareImageKeepsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solidImage(16, 16), nil))

	prepared, err := prepareImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "jpeg", prepared.ext)
}

func TestPrepareImageTranscodesGIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, solidImage(8, 4), nil))

	prepared, err := prepareImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", prepared.ext)

	decoded, format, err := image.Decode(bytes.NewReader(prepared.data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 8, decoded.Bounds().Dx())
}

func TestPrepareImageDownscalesOversized(t *testing.T) {
	prepared, err := prepareImage(encodePNG(t, 3000, 100))
	require.NoError(t, err)
	assert.Equal(t, 2400, prepared.width)
	assert.Equal(t, 80, prepared.height)
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	_, err := prepareImage([]byte("not an image"))
	assert.Error(t, err)
}

func TestRenderImageEmbedsMedia(t *testing.T) {
	data := encodePNG(t, 1200, 400)
	result, parts := render(t, Options{}, document.Block{
		Kind:   document.KindImage,
		Text:   "Chart",
		URL:    "chart.png",
		Image:  data,
		Format: document.Style{}.ImageFormat(),
	})

	assert.Empty(t, result.Warnings)
	assert.Equal(t, string(data), parts["word/media/image1.png"])
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Target="media/image1.png"`)

	body := parts["word/document.xml"]
	assert.Contains(t, body, fmt.Sprintf(`<wp:extent cx="%d" cy="%d"/>`, 600*emuPerPixel, 200*emuPerPixel))
	assert.Contains(t, body, `descr="Chart"`)
	assert.Contains(t, body, `<a:blip r:embed="rId5"/>`)
}

func TestRenderUndecodableImageFallsBack(t *testing.T) {
	result, parts := render(t, Options{}, document.Block{
		Kind:  document.KindImage,
		Text:  "Broken",
		URL:   "broken.png",
		Image: []byte("garbage"),
	})

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, document.WarningImageUnavailable, result.Warnings[0].Type)
	assert.Contains(t, parts["word/document.xml"], "[Image could not be loaded: Broken]")
	assert.Contains(t, parts["word/document.xml"], `<w:color w:val="C00000"/>`)
	_, hasMedia := parts["word/media/image1.png"]
	assert.False(t, hasMedia)
}
