package ui

import (
	"image"
	"image/color"
)

// Placeholder bitmap dimensions
const (
	placeholderWidth  = 4
	placeholderHeight = 3
)

// PlaceholderImage returns the flat bitmap drawn while a card's image
// is loading or after it failed; the canvas stretches it to the box.
func PlaceholderImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	gray := color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	for y := 0; y < placeholderHeight; y++ {
		for x := 0; x < placeholderWidth; x++ {
			img.Set(x, y, gray)
		}
	}
	return img
}
