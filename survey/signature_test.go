package survey

import (
	"bytes"
	"image/png"
	"testing"
)

func TestDecodeSignature(t *testing.T) {
	img, err := DecodeSignature(signatureDataURL(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}

	for _, bad := range []string{
		"",
		"not a data url",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,%%%",
	} {
		if _, err := DecodeSignature(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestEncodeSignature(t *testing.T) {
	img, err := DecodeSignature(signatureDataURL(t))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	ct, err := EncodeSignature(&buf, img, "png", 20)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ct != "image/png" {
		t.Errorf("Unexpected content type %s", ct)
	}
	out, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Expected PNG output: %v", err)
	}
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 10 {
		t.Errorf("Expected 20x10 after resize, got %v", out.Bounds())
	}

	buf.Reset()
	ct, err = EncodeSignature(&buf, img, "webp", 0)
	if err != nil || ct != "image/webp" || buf.Len() == 0 {
		t.Errorf("Expected webp output, got %s %v (%d bytes)", ct, err, buf.Len())
	}

	if _, err := EncodeSignature(&buf, img, "gif", 0); err == nil {
		t.Error("Expected unsupported format error")
	}
}
