package mandelbrot

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps an iteration count to a pixel color. Every palette colors
// non-escaped points (iterations == MaxIterations) black.
type Palette func(iterations int) color.RGBA

// Palettes are the selectable color schemes, by name.
var Palettes = map[string]Palette{
	"rainbow": Map,
	"hsv":     SmoothHSV,
	"stripe":  StripePattern,
	"plasma":  ElectricPlasma,
}

// LookupPalette returns the named palette, or the default rainbow ramp
// when the name is unknown.
func LookupPalette(name string) Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return Map
}

func SmoothHSV(iterations int) color.RGBA {
	if iterations >= MaxIterations {
		return color.RGBA{A: 255}
	}
	hue := math.Sin(float64(iterations) * 0.1)
	c := colorful.Hsv(hue*360, 0.8, 1.0)
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

func StripePattern(iterations int) color.RGBA {
	if iterations >= MaxIterations {
		return color.RGBA{A: 255}
	}
	stripeWidth := 10
	stripeIndex := iterations / stripeWidth
	inStripe := iterations % stripeWidth

	baseHue := float64(stripeIndex%6) / 6.0
	hue := baseHue + float64(inStripe)/(float64(stripeWidth)*6.0)
	saturation := 0.8 + 0.2*math.Sin(float64(iterations)*0.1)
	value := 1.0 - 0.5*float64(inStripe)/float64(stripeWidth)

	c := colorful.Hsv(hue*360, saturation, value)
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

func ElectricPlasma(iterations int) color.RGBA {
	if iterations >= MaxIterations {
		return color.RGBA{A: 255}
	}
	t := float64(iterations) / float64(MaxIterations)

	r := uint8(math.Sin(t*math.Pi)*127 + 128)
	g := uint8(math.Sin(t*math.Pi*2)*127 + 128)
	b := uint8(math.Sin(t*math.Pi*4)*127 + 128)

	return color.RGBA{r, g, b, 255}
}
