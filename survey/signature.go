package survey

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

var ErrSignatureFormat = errors.New("signature is not a base64 image data URL")

// DecodeSignature decodes a "data:image/...;base64," URL as produced by a
// canvas signature pad.
func DecodeSignature(dataURL string) (image.Image, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrSignatureFormat
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("signature payload: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("signature image: %w", err)
	}
	return img, nil
}

// EncodeSignature writes the image as PNG or lossless WebP, scaled down to
// width when width is positive and smaller than the image. It returns the
// content type written.
func EncodeSignature(w io.Writer, img image.Image, format string, width int) (string, error) {
	if width > 0 && width < img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	switch format {
	case "", "png":
		return "image/png", imaging.Encode(w, img, imaging.PNG)
	case "webp":
		return "image/webp", webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return "", fmt.Errorf("unsupported signature format %q", format)
	}
}
