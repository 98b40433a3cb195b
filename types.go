package main

import (
	"image"
)

type Size = image.Point

// PrimVertex feeds the line/rectangle shader.
type PrimVertex struct {
	position [2]float32
	color    [4]float32
}

// GlyphVertex feeds the text shader.
type GlyphVertex struct {
	position [2]float32
	texcoord [2]float32
}
