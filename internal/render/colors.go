package render

import "image/color"

// Named colours used by the screens.
var (
	ColorBlack     = color.RGBA{0, 0, 0, 255}
	ColorInk       = color.RGBA{40, 26, 13, 255}    // dialog body text
	ColorFadedInk  = color.RGBA{92, 64, 38, 255}    // sub-notes
	ColorSkyBlue   = color.RGBA{135, 206, 235, 255} // highlighted city
	ColorParchment = color.RGBA{232, 214, 170, 255}
	ColorScrollRod = color.RGBA{120, 78, 40, 255}
	ColorSea       = color.RGBA{176, 196, 190, 255}
	ColorLand      = color.RGBA{206, 184, 132, 255}
	ColorCaravan   = color.RGBA{170, 0, 0, 255}
)
