// Package transcode re-encodes generated images into the configured output
// format.
package transcode

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"promptstudio/internal/imaging"
)

const DefaultWebPQuality float32 = 90

// Func converts one image. Identity leaves the input untouched.
type Func func(imaging.Image) (imaging.Image, error)

func Identity(img imaging.Image) (imaging.Image, error) { return img, nil }

// ToWebP decodes a PNG or JPEG image and re-encodes it as lossy WebP.
func ToWebP(img imaging.Image, quality float32) (imaging.Image, error) {
	if img.MIME == imaging.MIMEWebP {
		return img, nil
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultWebPQuality
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return imaging.Image{}, fmt.Errorf("decode %s: %w", img.MIME, err)
	}
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return imaging.Image{}, fmt.Errorf("webp options: %w", err)
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, decoded, opts); err != nil {
		return imaging.Image{}, fmt.Errorf("encode webp: %w", err)
	}
	return imaging.Image{
		Name: imaging.Rename(img.Name, imaging.MIMEWebP),
		MIME: imaging.MIMEWebP,
		Data: buf.Bytes(),
	}, nil
}

// ForFormat returns the converter for an IMAGE_OUTPUT_FORMAT value.
func ForFormat(format string, quality float32) Func {
	if strings.EqualFold(strings.TrimSpace(format), "webp") {
		return func(img imaging.Image) (imaging.Image, error) { return ToWebP(img, quality) }
	}
	return Identity
}
