package main

import (
	"image/color"

	"github.com/plus3/blockfall/piece"
)

var tagColors = map[piece.Tag]color.RGBA{
	piece.SkyBlue:  {102, 191, 255, 255},
	piece.DarkBlue: {0, 82, 172, 255},
	piece.Orange:   {255, 161, 0, 255},
	piece.Yellow:   {253, 249, 0, 255},
	piece.Green:    {0, 228, 48, 255},
	piece.Red:      {230, 41, 55, 255},
	piece.Purple:   {112, 31, 126, 255},
}

var (
	backgroundColor = color.RGBA{245, 245, 245, 255}
	boardColor      = color.RGBA{200, 200, 200, 255}
	gridColor       = color.RGBA{80, 80, 80, 255}
	ghostColor      = color.RGBA{255, 255, 255, 90}
	overlayColor    = color.RGBA{0, 0, 0, 180}
)

func tagColor(t piece.Tag) color.RGBA {
	if c, ok := tagColors[t]; ok {
		return c
	}
	return gridColor
}
