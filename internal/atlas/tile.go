package atlas

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// PrepareTile turns a face image into a size x size opaque tile: alpha is
// dropped, the image is resampled, rotated and optionally mirrored.
func PrepareTile(src image.Image, size int, spec FaceSpec, filter transform.ResampleFilter) *image.RGBA {
	tile := dropAlpha(src)
	if b := tile.Bounds(); b.Dx() != size || b.Dy() != size {
		tile = transform.Resize(tile, size, size, filter)
	}
	tile = rotateQuarters(tile, spec.Rotate)
	if spec.Mirror {
		tile = transform.FlipH(tile)
	}
	return tile
}

// dropAlpha keeps the straight (non-premultiplied) colour channels of src
// and makes every pixel opaque. The result starts at the origin.
func dropAlpha(src image.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(out.Pix[y*out.Stride:(y+1)*out.Stride], row[:4*b.Dx()])
		}
	} else {
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := out.PixOffset(x, y)
				out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.R, c.G, c.B
			}
		}
	}
	// Opaque NRGBA and RGBA share a byte layout.
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// rotateQuarters rotates img counter-clockwise by steps quarter turns.
func rotateQuarters(img *image.RGBA, steps int) *image.RGBA {
	steps = ((steps % 4) + 4) % 4
	if steps == 0 {
		return clone.AsRGBA(img)
	}
	out := img
	for i := 0; i < steps; i++ {
		out = rotateCCW(out)
	}
	return out
}

// rotateCCW rotates a quarter turn counter-clockwise. The source pixel at
// (x, y) lands on (y, w-1-x).
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(y, w-1-x)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}
