package docx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/rgonek/md-docx-converter/document"
)

// Embedded images are fitted into a fixed display box. Sources larger than
// maxSourcePixels on a side are downscaled before embedding.
const (
	maxDisplayWidth  = 600
	maxDisplayHeight = 400
	maxSourcePixels  = 2400
	emuPerPixel      = 9525
)

type mediaPart struct {
	target string
	data   []byte
}

type preparedImage struct {
	data   []byte
	ext    string
	width  int
	height int
}

// prepareImage decodes data and returns bytes Word can embed. PNG and JPEG
// within the size limit pass through unchanged; everything else is
// re-encoded as PNG.
func prepareImage(data []byte) (preparedImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return preparedImage{}, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return preparedImage{}, fmt.Errorf("image has no pixels")
	}

	oversized := cfg.Width > maxSourcePixels || cfg.Height > maxSourcePixels
	if !oversized {
		switch format {
		case "png":
			return preparedImage{data: data, ext: "png", width: cfg.Width, height: cfg.Height}, nil
		case "jpeg":
			return preparedImage{data: data, ext: "jpeg", width: cfg.Width, height: cfg.Height}, nil
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return preparedImage{}, fmt.Errorf("decode image: %w", err)
	}

	if oversized {
		w, h := fitWithin(cfg.Width, cfg.Height, maxSourcePixels, maxSourcePixels)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	ext := "png"
	if format == "jpeg" {
		ext = "jpeg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return preparedImage{}, fmt.Errorf("encode image: %w", err)
	}

	bounds := img.Bounds()
	return preparedImage{data: buf.Bytes(), ext: ext, width: bounds.Dx(), height: bounds.Dy()}, nil
}

// fitWithin scales width and height down, keeping the aspect ratio, so both
// fit the box. Images already inside the box are not enlarged.
func fitWithin(width, height, boxWidth, boxHeight int) (int, int) {
	scale := math.Min(float64(boxWidth)/float64(width), float64(boxHeight)/float64(height))
	if scale >= 1 {
		return width, height
	}
	w := max(int(math.Round(float64(width)*scale)), 1)
	h := max(int(math.Round(float64(height)*scale)), 1)
	return w, h
}

func (s *state) renderImage(block document.Block) {
	prepared, err := prepareImage(block.Image)
	if err != nil {
		s.addWarning(document.WarningImageUnavailable, string(document.KindImage),
			fmt.Sprintf("image %q could not be embedded: %v", block.URL, err))
		s.placeholder(block.Format, block.Text)
		return
	}

	s.drawings++
	id := s.drawings
	target := fmt.Sprintf("media/image%d.%s", id, prepared.ext)
	s.media = append(s.media, mediaPart{target: target, data: prepared.data})
	relID := s.addRelationship(relImage, target, false)

	w, h := fitWithin(prepared.width, prepared.height, maxDisplayWidth, maxDisplayHeight)
	cx, cy := w*emuPerPixel, h*emuPerPixel
	descr := escape(block.Text)

	b := &s.body
	b.WriteString(`<w:p>`)
	writeParagraphProps(b, paraProps{format: block.Format})
	b.WriteString(`<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`)
	fmt.Fprintf(b, `<wp:extent cx="%d" cy="%d"/><wp:effectExtent l="0" t="0" r="0" b="0"/>`, cx, cy)
	fmt.Fprintf(b, `<wp:docPr id="%d" name="Picture %d" descr="%s"/>`, id, id, descr)
	b.WriteString(`<wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr>`)
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture"><pic:pic>`)
	fmt.Fprintf(b, `<pic:nvPicPr><pic:cNvPr id="%d" name="image%d.%s" descr="%s"/><pic:cNvPicPr/></pic:nvPicPr>`, id, id, prepared.ext, descr)
	fmt.Fprintf(b, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, relID)
	fmt.Fprintf(b, `<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, cx, cy)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`)
	b.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`)
}
