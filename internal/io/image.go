package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// PrepareCoverArt decodes an image, scales it down to fit within maxSize on
// both axes and re-encodes it as JPEG for embedding in ID3 tags.
//
// The aspect ratio is preserved. Images already within the bounds are only
// re-encoded, which keeps the APIC frame's declared MIME type ("image/jpeg")
// truthful regardless of the source format.
//
// The Catmull-Rom algorithm is used for scaling.
//
// Example:
//
//	art, _ := client.DownloadBytes(ctx, coverURL)
//	jpegArt, err := ioutils.PrepareCoverArt(art, 1000)
func PrepareCoverArt(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxSize > 0 && (width > maxSize || height > maxSize) {
		ratio := float64(width) / float64(height)
		if ratio >= 1 {
			width = maxSize
			height = int(float64(maxSize) / ratio)
		} else {
			height = maxSize
			width = int(float64(maxSize) * ratio)
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
