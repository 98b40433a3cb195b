package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontSizeInPoints = float64

type Font struct {
	font  *opentype.Font
	faces map[FontSizeInPoints]font.Face
}

func (f *Font) GetFace(size FontSizeInPoints) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	faceOpts := &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	}
	face, err := opentype.NewFace(f.font, faceOpts)
	if err != nil {
		return nil, err
	}
	f.faces[size] = face
	return face, nil
}

// GlyphAtlas is an alpha image holding the glyphs of runes 0 to
// cols*rows-1 in equally sized cells, row by row.
type GlyphAtlas struct {
	Image    *image.Alpha
	Cols     int
	Rows     int
	CellSize Size
}

func (f *Font) GetGlyphAtlas(face font.Face, cols, rows int) (*GlyphAtlas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlas dimensions must be positive, got %dx%d", cols, rows)
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	cellHeight := metrics.Height.Ceil()
	if cellHeight == 0 {
		cellHeight = ascent + descent
	}
	nGlyphs := cols * rows
	cellWidth := 0
	for i := 0; i < nGlyphs; i++ {
		if adv, ok := face.GlyphAdvance(rune(i)); ok {
			if w := adv.Ceil(); w > cellWidth {
				cellWidth = w
			}
		}
	}
	if cellWidth <= 0 {
		adv, ok := face.GlyphAdvance('m')
		if !ok {
			return nil, fmt.Errorf("font face does not provide a glyph for rune 'm'")
		}
		cellWidth = adv.Ceil()
	}
	img := image.NewAlpha(image.Rect(0, 0, cellWidth*cols, cellHeight*rows))
	for i := 0; i < nGlyphs; i++ {
		col := i % cols
		row := i / cols
		dot := fixed.Point26_6{
			X: fixed.I(col * cellWidth),
			Y: fixed.I(row*cellHeight + ascent),
		}
		dstRect, mask, maskPt, _, ok := face.Glyph(dot, rune(i))
		if !ok || mask == nil {
			continue
		}
		draw.Draw(img, dstRect, mask, maskPt, draw.Over)
	}
	return &GlyphAtlas{
		Image:    img,
		Cols:     cols,
		Rows:     rows,
		CellSize: Size{X: cellWidth, Y: cellHeight},
	}, nil
}

func LoadFontFromBytes(bytes []byte) (*Font, error) {
	f, err := opentype.Parse(bytes)
	if err != nil {
		return nil, err
	}
	return &Font{
		font:  f,
		faces: make(map[FontSizeInPoints]font.Face),
	}, nil
}

// LoadDefaultFont parses the Go Regular font bundled with x/image.
func LoadDefaultFont() (*Font, error) {
	return LoadFontFromBytes(goregular.TTF)
}
