//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImagePainter keeps the last published render on the GPU and draws it.
type ImagePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewImagePainter allocates a painter for images of size w*h.
func NewImagePainter(w, h int) *ImagePainter {
	return &ImagePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter image with src, which must hold premultiplied
// pixels as the raster backend publishes them. Images of another size are
// ignored.
func (p *ImagePainter) Upload(src *image.RGBA) {
	if src.Bounds() != image.Rect(0, 0, p.w, p.h) || src.Stride != 4*p.w {
		return
	}
	p.img.WritePixels(src.Pix)
}

// Blit draws the painter image onto dst at the given scale.
func (p *ImagePainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *ImagePainter) Size() (int, int) { return p.w, p.h }
