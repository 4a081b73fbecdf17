package render

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

const (
	backdropWidth  = 640
	backdropHeight = 400
)

// NewScrollBackdrop generates the default dialog background: a parchment
// sheet with darkened edges and a wooden rod along the top and bottom.
func NewScrollBackdrop() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, backdropWidth, backdropHeight))
	rng := rand.New(rand.NewPCG(17, 29))

	const rod = 18
	for y := 0; y < backdropHeight; y++ {
		for x := 0; x < backdropWidth; x++ {
			if y < rod || y >= backdropHeight-rod {
				img.SetNRGBA(x, y, rodShade(y, rod))
				continue
			}
			// Darken toward the edges of the sheet.
			ex := math.Abs(float64(x)/backdropWidth-0.5) * 2
			ey := math.Abs(float64(y)/backdropHeight-0.5) * 2
			edge := math.Max(ex, ey)
			burn := 0.0
			if edge > 0.8 {
				burn = (edge - 0.8) * 1.5
			}
			noise := rng.Float64()*0.06 - 0.03
			img.SetNRGBA(x, y, shade(ColorParchment, 1-burn+noise))
		}
	}
	return img
}

// rodShade returns the colour of a scroll rod row, lit from above.
func rodShade(y, rod int) color.NRGBA {
	if y >= rod {
		y = backdropHeight - 1 - y
	}
	t := float64(y) / float64(rod)
	return shade(ColorScrollRod, 0.6+0.6*math.Sin(t*math.Pi))
}

// seas approximates the large bodies of water on the route, in normalized
// map coordinates: centre x, centre y, radius x, radius y.
var seas = [][4]float64{
	{0.14, 0.43, 0.10, 0.035},  // Mediterranean
	{0.25, 0.33, 0.045, 0.025}, // Black Sea
	{0.37, 0.36, 0.022, 0.06},  // Caspian
	{0.35, 0.52, 0.03, 0.03},   // Persian Gulf
	{0.26, 0.56, 0.015, 0.07},  // Red Sea
	{0.44, 0.68, 0.09, 0.10},   // Arabian Sea
	{0.58, 0.66, 0.06, 0.09},   // Bay of Bengal
	{0.86, 0.50, 0.09, 0.20},   // East China Sea and Pacific
}

// NewMapBackdrop generates the default route map: land and seas on
// parchment with a faint graticule every tenth of the map.
func NewMapBackdrop() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, backdropWidth, backdropHeight))
	for y := 0; y < backdropHeight; y++ {
		ny := float64(y) / backdropHeight
		for x := 0; x < backdropWidth; x++ {
			nx := float64(x) / backdropWidth
			c := ColorLand
			for _, s := range seas {
				dx := (nx - s[0]) / s[2]
				dy := (ny - s[1]) / s[3]
				if dx*dx+dy*dy <= 1 {
					c = ColorSea
					break
				}
			}
			if x%(backdropWidth/10) == 0 || y%(backdropHeight/10) == 0 {
				img.SetNRGBA(x, y, shade(c, 0.9))
				continue
			}
			img.SetNRGBA(x, y, shade(c, 1))
		}
	}
	return img
}

func shade(c color.RGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.NRGBA{scale(c.R), scale(c.G), scale(c.B), 255}
}
