package filter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bnema/shades/internal/domain/entity"
)

// DOM element ids owned by the renderer.
const (
	OverlayElementID = "shades-filter-overlay"
	StyleElementID   = "shades-filter-style"
)

// mediaSelector covers the elements counter-inverted when images are excluded.
const mediaSelector = `img, video, canvas, iframe, [style*="background-image"]`

// GenerateCSS returns the overlay declarations for id with settings.
// Identifiers without a catalog row produce the empty string, which
// renderers treat as "no filter".
func GenerateCSS(id entity.FilterID, settings entity.FilterSettings) string {
	f, ok := entity.LookupFilter(id)
	if !ok {
		return ""
	}
	intensity := settings.WithDefaults(id).Intensity()

	switch f.Kind {
	case entity.KindTint:
		alpha := round3(intensity / 100 * f.Tint.AlphaScale)
		return fmt.Sprintf("background-color: rgba(%d, %d, %d, %s); mix-blend-mode: multiply;",
			f.Tint.R, f.Tint.G, f.Tint.B, formatFloat(alpha))
	case entity.KindInvert:
		c := 255 - int(math.Round((100-intensity)/2))
		return fmt.Sprintf("background-color: rgba(%d, %d, %d, 1); mix-blend-mode: difference;", c, c, c)
	default:
		return ""
	}
}

// ExcludeMediaCSS returns the counter-inversion rule for media elements, or ""
// when id is not an inverting filter or images are not excluded.
func ExcludeMediaCSS(id entity.FilterID, settings entity.FilterSettings) string {
	f, ok := entity.LookupFilter(id)
	if !ok || f.Kind != entity.KindInvert {
		return ""
	}
	resolved := settings.WithDefaults(id)
	if !resolved.Bool(entity.SettingExcludeImages) {
		return ""
	}

	k := round3(resolved.Intensity() / 100)
	if k == 0 {
		k = 1
	}
	return fmt.Sprintf("%s { filter: invert(%s) !important; }", mediaSelector, formatFloat(k))
}

// OverlayStylesheet wraps declarations in the full-viewport overlay rule.
func OverlayStylesheet(css string) string {
	return "#" + OverlayElementID + " {" +
		" position: fixed !important;" +
		" top: 0 !important;" +
		" left: 0 !important;" +
		" width: 100vw !important;" +
		" height: 100vh !important;" +
		" pointer-events: none !important;" +
		" z-index: 2147483647 !important;" +
		" " + css +
		" }"
}

// Stylesheet returns the full style block text for an apply instruction.
func Stylesheet(id entity.FilterID, settings entity.FilterSettings, css string) string {
	sheet := OverlayStylesheet(css)
	if media := ExcludeMediaCSS(id, settings); media != "" {
		sheet += "\n" + media
	}
	return sheet
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
