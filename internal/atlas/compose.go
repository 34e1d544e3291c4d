package atlas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// TileSize returns the side of one tile in a dim x dim block.
func TileSize(dim int) int {
	return dim / Grid
}

// Compose builds the dim x dim block. Cells without a face and the unused
// bottom row stay opaque black.
func Compose(faces map[string]image.Image, dim int, specs []FaceSpec, filter transform.ResampleFilter) (*image.RGBA, error) {
	size := TileSize(dim)
	block := image.NewRGBA(image.Rect(0, 0, dim, dim))
	draw.Draw(block, block.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for _, spec := range specs {
		src, ok := faces[spec.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingFace, spec.Name)
		}
		tile := PrepareTile(src, size, spec, filter)
		at := image.Pt(spec.Col*size, spec.Row*size)
		draw.Draw(block, image.Rectangle{Min: at, Max: at.Add(image.Pt(size, size))}, tile, image.Point{}, draw.Src)
	}
	return block, nil
}

// Region returns where a block of side dim goes in an atlas: its top-right corner.
func Region(atlas image.Rectangle, dim int) (image.Rectangle, error) {
	if atlas.Dx() < dim || atlas.Dy() < dim {
		return image.Rectangle{}, fmt.Errorf("%w: atlas %dx%d, block %dx%d",
			ErrAtlasTooSmall, atlas.Dx(), atlas.Dy(), dim, dim)
	}
	origin := image.Pt(atlas.Max.X-dim, atlas.Min.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(dim, dim))}, nil
}

// Insert returns a copy of atlas with its top-right region replaced by block.
// Pixels outside the region are copied unchanged.
func Insert(atlas image.Image, block image.Image) (draw.Image, error) {
	bb := block.Bounds()
	if bb.Dx() != bb.Dy() {
		return nil, fmt.Errorf("block must be square, got %dx%d", bb.Dx(), bb.Dy())
	}
	r, err := Region(atlas.Bounds(), bb.Dx())
	if err != nil {
		return nil, err
	}

	out := cloneAtlas(atlas)
	draw.Draw(out, r, block, bb.Min, draw.Src)
	return out, nil
}

// cloneAtlas copies src into a non-premultiplied image so that translucent
// pixels outside the block survive re-encoding.
func cloneAtlas(src image.Image) draw.Image {
	b := src.Bounds()
	var out draw.Image
	switch s := src.(type) {
	case *image.NRGBA:
		return &image.NRGBA{Pix: append([]uint8(nil), s.Pix...), Stride: s.Stride, Rect: s.Rect}
	case *image.NRGBA64:
		return &image.NRGBA64{Pix: append([]uint8(nil), s.Pix...), Stride: s.Stride, Rect: s.Rect}
	case *image.RGBA64, *image.Gray16:
		out = image.NewNRGBA64(b)
	default:
		out = image.NewNRGBA(b)
	}
	draw.Draw(out, b, src, b.Min, draw.Src)
	return out
}
