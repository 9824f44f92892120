package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"
)

func testJPEGDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return ToJPEGDataURL(buf.Bytes())
}

func TestEnsureDataURL(t *testing.T) {
	if got := EnsureDataURL("abc123"); !strings.HasPrefix(got, "data:image/jpeg;base64,") {
		t.Errorf("bare payload not prefixed: %q", got)
	}
	already := "data:image/png;base64,abc123"
	if got := EnsureDataURL(already); got != already {
		t.Errorf("data URL should pass through, got %q", got)
	}
}

func TestParseDataURL(t *testing.T) {
	url := testJPEGDataURL(t, 8, 8)
	mime, raw, err := ParseDataURL(url)
	if err != nil {
		t.Fatalf("ParseDataURL: %v", err)
	}
	if mime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mime)
	}
	if len(raw) == 0 {
		t.Error("expected decoded bytes")
	}
}

func TestParseDataURLRejectsNonBase64Encoding(t *testing.T) {
	if _, _, err := ParseDataURL("data:image/jpeg,rawbytes"); err == nil {
		t.Fatal("expected error for non-base64 data URL")
	}
}

func TestCompressShrinksLargeImages(t *testing.T) {
	url := testJPEGDataURL(t, 2048, 1536)
	out, err := Compress(url, 1024, 70)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	_, raw, err := ParseDataURL(out)
	if err != nil {
		t.Fatalf("parse compressed output: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode compressed output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 1024 || b.Dy() > 1024 {
		t.Errorf("compressed image is %dx%d, want within 1024", b.Dx(), b.Dy())
	}
}

func TestCompressIfNeededPassthrough(t *testing.T) {
	small := testJPEGDataURL(t, 16, 16)
	if got := CompressIfNeeded(small, MaxPayloadKB); got != small {
		t.Error("small payloads should pass through untouched")
	}
}

func TestCompressIfNeededKeepsOriginalOnGarbage(t *testing.T) {
	garbage := "data:image/jpeg;base64," + strings.Repeat("aGVsbG8=", 600*1024)
	if got := CompressIfNeeded(garbage, MaxPayloadKB); got != garbage {
		t.Error("undecodable payloads should fall back to the original")
	}
}
