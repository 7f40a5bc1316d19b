package flashcard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultFlagCDN serves PNG flags by ISO 3166-1 alpha-2 code.
const DefaultFlagCDN = "https://flagcdn.com"

// DefaultFlagWidth is the image width used when none is configured.
const DefaultFlagWidth = 320

// ErrFlagWidth is returned for image widths the CDN does not serve.
var ErrFlagWidth = errors.New("flashcard: unsupported flag width")

var flagWidths = []int{20, 40, 80, 160, 320, 640, 1280, 2560}

// FlagWidths lists the widths accepted by FlagURL.
func FlagWidths() []int { return append([]int(nil), flagWidths...) }

func validWidth(w int) bool {
	for _, v := range flagWidths {
		if v == w {
			return true
		}
	}
	return false
}

// FlagURL returns the image URL of a flag at the given width.
func FlagURL(cdn, code string, width int) (string, error) {
	if !validWidth(width) {
		return "", fmt.Errorf("%w: %d", ErrFlagWidth, width)
	}
	if cdn == "" {
		cdn = DefaultFlagCDN
	}
	return fmt.Sprintf("%s/w%d/%s.png", strings.TrimRight(cdn, "/"), width, strings.ToLower(code)), nil
}

// FlagURL2x returns the double-density image URL for width. The largest
// width has no 2x variant and falls back to itself.
func FlagURL2x(cdn, code string, width int) (string, error) {
	if !validWidth(width) {
		return "", fmt.Errorf("%w: %d", ErrFlagWidth, width)
	}
	if validWidth(width * 2) {
		width *= 2
	}
	return FlagURL(cdn, code, width)
}

// FlagEmoji renders a two-letter country code as regional indicator symbols.
// Anything else is returned unchanged.
func FlagEmoji(code string) string {
	if len(code) != 2 {
		return code
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return code
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// FlagQR renders url as a compact QR code using half-block characters.
func FlagQR(url string) (string, error) {
	q, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return q.ToSmallString(false), nil
}
