package atlas

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	tgaUncompressed = 2  // Uncompressed true-color
	tgaRLE          = 10 // RLE compressed true-color
)

// ErrTruncatedTGA is returned when pixel data ends early.
var ErrTruncatedTGA = errors.New("truncated TGA data")

// DecodeTGA decodes an uncompressed or RLE true-color TGA image with 24 or
// 32 bits per pixel. TGA has no magic number, so it cannot go through
// image.Decode and is selected by file extension instead.
func DecodeTGA(data []byte) (*image.NRGBA, error) {
	if len(data) < 18 {
		return nil, ErrTruncatedTGA
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != tgaUncompressed && imageType != tgaRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}
	if 18+idLength > len(data) {
		return nil, ErrTruncatedTGA
	}

	d := tgaDecoder{
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		src:         data[18+idLength:],
		bytesPP:     bpp / 8,
		topToBottom: topToBottom,
	}
	var err error
	if imageType == tgaUncompressed {
		err = d.raw(width * height)
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.NRGBA
	src         []byte
	pos         int // read offset in src
	pixel       int // next pixel in file order
	bytesPP     int
	topToBottom bool
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() ([4]byte, error) {
	if d.pos+d.bytesPP > len(d.src) {
		return [4]byte{}, ErrTruncatedTGA
	}
	p := d.src[d.pos:]
	d.pos += d.bytesPP
	a := byte(0xff)
	if d.bytesPP == 4 {
		a = p[3]
	}
	return [4]byte{p[2], p[1], p[0], a}, nil
}

// put stores c at the next pixel, flipping rows for bottom-up files.
func (d *tgaDecoder) put(c [4]byte) {
	w, h := d.img.Rect.Dx(), d.img.Rect.Dy()
	x, y := d.pixel%w, d.pixel/w
	if !d.topToBottom {
		y = h - 1 - y
	}
	i := d.img.PixOffset(x, y)
	copy(d.img.Pix[i:i+4], c[:])
	d.pixel++
}

func (d *tgaDecoder) raw(count int) error {
	for i := 0; i < count; i++ {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.img.Rect.Dx() * d.img.Rect.Dy()
	for d.pixel < total {
		if d.pos >= len(d.src) {
			return ErrTruncatedTGA
		}
		packet := d.src[d.pos]
		d.pos++
		count := min(int(packet&0x7f)+1, total-d.pixel)

		if packet&0x80 == 0 {
			if err := d.raw(count); err != nil {
				return err
			}
			continue
		}
		c, err := d.next()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			d.put(c)
		}
	}
	return nil
}
