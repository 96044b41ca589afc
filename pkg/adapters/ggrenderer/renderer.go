// Package ggrenderer post-processes screenshots using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/commitstory/pkg/ports"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Normalize returns data unchanged when it already measures width x height.
// Otherwise the image is rescaled onto a canvas of exactly that size, which
// happens when a backend captures at a device scale factor other than 1.
func (r *Renderer) Normalize(data []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode PNG: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return data, nil
	}

	dc := gg.NewContext(width, height)
	dc.DrawImage(Resize(img, width, height), 0, 0)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Resize scales img to width x height with Catmull-Rom resampling.
func Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

var _ ports.Renderer = (*Renderer)(nil)
