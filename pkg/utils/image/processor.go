package image

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
)

const (
	MaxImageSize = 10 * 1024 * 1024 // 10MB
	Quality      = 85
)

// Processed yeniden kodlanmış resim
type Processed struct {
	Body        *bytes.Buffer
	ContentType string
	Ext         string
}

func ProcessImage(file *multipart.FileHeader) (*Processed, error) {
	// Dosyayı aç
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open file: %v", err)
	}
	defer src.Close()

	return Process(src)
}

// Process resmi decode edip optimize ederek tekrar encode eder; EXIF vb. metadata atılır
func Process(r io.Reader) (*Processed, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %v", err)
	}

	buf := new(bytes.Buffer)

	var ext string
	switch format {
	case "jpeg":
		ext = "jpg"
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: Quality})
	case "png":
		ext = "png"
		err = png.Encode(buf, img)
	case "webp":
		ext = "webp"
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: Quality})
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("could not encode image: %v", err)
	}

	return &Processed{
		Body:        buf,
		ContentType: fmt.Sprintf("image/%s", format),
		Ext:         ext,
	}, nil
}
