package imgutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/disintegration/imaging"
)

// Upstream rejects generation payloads above roughly 3.5MB of encoded data.
const MaxPayloadKB = 3500

const defaultQuality = 70
const defaultMaxDim = 1024

// SizeKB reports the encoded size of a data URL (or bare base64 payload).
func SizeKB(dataURL string) int {
	return len(dataURL) / 1024
}

// NeedsCompression reports whether the payload should be recompressed
// before an upstream call.
func NeedsCompression(dataURL string, maxKB int) bool {
	return SizeKB(dataURL) > maxKB
}

// EnsureDataURL prefixes a bare base64 payload as JPEG data; data URLs pass
// through untouched.
func EnsureDataURL(image string) string {
	if strings.HasPrefix(image, "data:") {
		return image
	}
	return "data:image/jpeg;base64," + image
}

// ParseDataURL splits a data URL into its MIME type and decoded bytes. Bare
// base64 payloads are treated as JPEG.
func ParseDataURL(dataURL string) (string, []byte, error) {
	payload := dataURL
	mime := "image/jpeg"
	if strings.HasPrefix(dataURL, "data:") {
		semi := strings.Index(dataURL, ";base64,")
		if semi < 0 {
			return "", nil, fmt.Errorf("unsupported data URL encoding")
		}
		mime = strings.TrimPrefix(dataURL[:semi], "data:")
		payload = dataURL[semi+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64 payload: %w", err)
	}
	return mime, raw, nil
}

// ToJPEGDataURL encodes raw JPEG bytes as a data URL.
func ToJPEGDataURL(raw []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
}

// Compress downscales the image to fit within maxDim and re-encodes it as
// JPEG. Returns a new data URL.
func Compress(dataURL string, maxDim, quality int) (string, error) {
	if maxDim <= 0 {
		maxDim = defaultMaxDim
	}
	if quality <= 0 {
		quality = defaultQuality
	}

	_, raw, err := ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	out := ToJPEGDataURL(buf.Bytes())
	log.Printf("[Compress] %dKB -> %dKB", SizeKB(dataURL), SizeKB(out))
	return out, nil
}

// CompressIfNeeded recompresses only when the payload is over the limit.
// On decode failure it returns the original payload so a bad thumbnail
// never blocks the run.
func CompressIfNeeded(dataURL string, maxKB int) string {
	if !NeedsCompression(dataURL, maxKB) {
		return dataURL
	}
	out, err := Compress(dataURL, defaultMaxDim, defaultQuality)
	if err != nil {
		log.Printf("[CompressIfNeeded] compression failed: %v", err)
		return dataURL
	}
	return out
}
