package portrait

import (
	"fmt"
	"image"
	"image/draw"
	"strings"
)

// renderHalfblocks renders an image using upper-half-block characters with
// 24-bit color: the top pixel of each cell becomes the foreground, the
// bottom pixel the background. Works on any true-color terminal without a
// graphics protocol.
func renderHalfblocks(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("portrait: nil image")
	}

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return "", nil
	}

	nrgba := toNRGBA(img)

	var b strings.Builder
	b.Grow(srcW * (srcH/2 + 1) * 30)

	for y := 0; y < srcH; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}
		for x := 0; x < srcW; x++ {
			top := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)

			bottomVisible := y+1 < srcH
			var bot = top
			if bottomVisible {
				bot = nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && (!bottomVisible || bot.A == 0):
				b.WriteString("\x1b[0m ")
			case top.A == 0:
				// Only the bottom pixel: lower half block, default background.
				fmt.Fprintf(&b, "\x1b[49m\x1b[38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
			case !bottomVisible || bot.A == 0:
				// Only the top pixel: upper half block, default background.
				fmt.Fprintf(&b, "\x1b[49m\x1b[38;2;%d;%d;%dm▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	b.WriteString("\x1b[0m")

	return b.String(), nil
}

// toNRGBA converts any image to *image.NRGBA for direct pixel access.
func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
