package atlas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var faceColors = map[string]color.RGBA{
	"right":  {255, 0, 0, 255},
	"left":   {0, 255, 0, 255},
	"back":   {0, 0, 255, 255},
	"front":  {255, 255, 0, 255},
	"top":    {0, 255, 255, 255},
	"bottom": {255, 0, 255, 255},
}

var grey = color.RGBA{100, 100, 100, 255}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// halves returns a w x h image whose left half is l and right half is r.
func halves(w, h int, l, r color.RGBA) *image.RGBA {
	img := solid(w, h, l)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetRGBA(x, y, r)
		}
	}
	return img
}

func solidFaces(size int) map[string]image.Image {
	faces := make(map[string]image.Image)
	for name, c := range faceColors {
		faces[name] = solid(size, size, c)
	}
	return faces
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestDefaultFacesValid(t *testing.T) {
	assert.NoError(t, ValidateFaces(DefaultFaces()))
}

func TestValidateFaces_ReportsEveryProblem(t *testing.T) {
	specs := DefaultFaces()
	specs[1].Name = "right"
	specs[2].Rotate = 5
	specs[3].Col, specs[3].Row = 0, 0
	specs[4].Row = 2

	err := ValidateFaces(specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFaceTable)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestValidateFaces_Count(t *testing.T) {
	err := ValidateFaces(DefaultFaces()[:5])
	assert.ErrorIs(t, err, ErrFaceTable)
}

func TestParseFilter(t *testing.T) {
	for _, name := range FilterNames() {
		_, err := ParseFilter(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseFilter("CatmullRom")
	assert.NoError(t, err)
	_, err = ParseFilter("bicubic-ish")
	assert.Error(t, err)
}

func TestRotateQuarters(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	src := halves(4, 4, red, blue)

	// One counter-clockwise turn moves the right half to the top.
	r := rotateQuarters(src, 1)
	assert.Equal(t, blue, r.RGBAAt(0, 0))
	assert.Equal(t, blue, r.RGBAAt(3, 1))
	assert.Equal(t, red, r.RGBAAt(0, 2))
	assert.Equal(t, red, r.RGBAAt(3, 3))

	// Two turns swap left and right.
	r = rotateQuarters(src, 2)
	assert.Equal(t, blue, r.RGBAAt(0, 0))
	assert.Equal(t, red, r.RGBAAt(3, 0))

	// Three turns move the right half to the bottom.
	r = rotateQuarters(src, 3)
	assert.Equal(t, red, r.RGBAAt(0, 0))
	assert.Equal(t, blue, r.RGBAAt(0, 3))

	// Four turns are the identity and never alias the source.
	r = rotateQuarters(src, 4)
	assert.Equal(t, src.Pix, r.Pix)
	r.Pix[0] = 7
	assert.NotEqual(t, byte(7), src.Pix[0])
}

func TestRotateCCW_NonSquare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	mark := color.RGBA{9, 9, 9, 255}
	src.SetRGBA(2, 0, mark) // top-right

	dst := rotateCCW(src)
	assert.Equal(t, image.Rect(0, 0, 2, 3), dst.Bounds())
	assert.Equal(t, mark, dst.RGBAAt(0, 0)) // top-left
}

func TestDropAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{200, 100, 50, 0})
	src.SetNRGBA(6, 6, color.NRGBA{10, 20, 30, 128})

	out := dropAlpha(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), out.Bounds())
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, out.RGBAAt(1, 1))
}

func TestPrepareTile_MirrorAfterRotate(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	src := halves(8, 8, red, blue)

	// Rotating twice swaps halves; mirroring swaps them back.
	tile := PrepareTile(src, 8, FaceSpec{Rotate: 2, Mirror: true}, transform.Linear)
	assert.Equal(t, red, tile.RGBAAt(0, 4))
	assert.Equal(t, blue, tile.RGBAAt(7, 4))

	tile = PrepareTile(src, 8, FaceSpec{Rotate: 2}, transform.Linear)
	assert.Equal(t, blue, tile.RGBAAt(0, 4))
	assert.Equal(t, red, tile.RGBAAt(7, 4))
}

func TestPrepareTile_Resizes(t *testing.T) {
	c := color.RGBA{40, 80, 120, 255}
	tile := PrepareTile(solid(200, 100, c), 64, FaceSpec{}, transform.Linear)
	require.Equal(t, image.Rect(0, 0, 64, 64), tile.Bounds())

	got := tile.RGBAAt(32, 32)
	assert.InDelta(t, c.R, got.R, 1)
	assert.InDelta(t, c.G, got.G, 1)
	assert.InDelta(t, c.B, got.B, 1)
}

func TestCompose(t *testing.T) {
	block, err := Compose(solidFaces(64), 192, DefaultFaces(), transform.Linear)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 192, 192), block.Bounds())

	for _, spec := range DefaultFaces() {
		want := faceColors[spec.Name]
		x0, y0 := spec.Col*64, spec.Row*64
		for _, p := range []image.Point{{0, 0}, {63, 0}, {0, 63}, {63, 63}, {32, 32}} {
			assert.Equal(t, want, block.RGBAAt(x0+p.X, y0+p.Y), "face %s at %v", spec.Name, p)
		}
	}
	// The third row is unused.
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, block.RGBAAt(100, 150))
}

func TestCompose_MissingFace(t *testing.T) {
	faces := solidFaces(64)
	delete(faces, "top")
	_, err := Compose(faces, 192, DefaultFaces(), transform.Linear)
	assert.ErrorIs(t, err, ErrMissingFace)
}

func TestCompose_LeftoverPixelsStayBlack(t *testing.T) {
	// 200 / 3 leaves a two-pixel strip on the right.
	block, err := Compose(solidFaces(66), 200, DefaultFaces(), transform.Linear)
	require.NoError(t, err)
	assert.Equal(t, faceColors["back"], block.RGBAAt(197, 10))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, block.RGBAAt(198, 10))
}

func TestRegion(t *testing.T) {
	r, err := Region(image.Rect(0, 0, 4096, 4096), 2048)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(2048, 0, 4096, 2048), r)

	_, err = Region(image.Rect(0, 0, 100, 300), 192)
	assert.ErrorIs(t, err, ErrAtlasTooSmall)
}

func TestInsert(t *testing.T) {
	block, err := Compose(solidFaces(64), 192, DefaultFaces(), transform.Linear)
	require.NoError(t, err)
	dst := solid(384, 192, grey)

	out, err := Insert(dst, block)
	require.NoError(t, err)

	for y := 0; y < 192; y++ {
		for x := 0; x < 192; x++ {
			if rgbaAt(out, x, y) != grey {
				t.Fatalf("pixel (%d,%d) outside the block changed", x, y)
			}
		}
	}
	for _, spec := range DefaultFaces() {
		x := 192 + spec.Col*64 + 32
		y := spec.Row*64 + 32
		assert.Equal(t, faceColors[spec.Name], rgbaAt(out, x, y), "face %s", spec.Name)
	}
	// Source atlas is untouched.
	assert.Equal(t, grey, dst.RGBAAt(300, 20))
}

func TestInsert_KeepsTranslucentPixels(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 6, 3))
	ghost := color.NRGBA{200, 10, 10, 40}
	dst.SetNRGBA(0, 0, ghost)

	out, err := Insert(dst, solid(3, 3, grey))
	require.NoError(t, err)
	assert.Equal(t, ghost, out.(*image.NRGBA).NRGBAAt(0, 0))
}

func TestLoadImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "right.png")
	require.NoError(t, os.WriteFile(path, []byte("solid school\nendsolid\n"), 0644))
	_, err := LoadImage(path)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLoadFaces_ReportsAllMissing(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, FacePath(dir, "png", "right"), solid(4, 4, grey))

	_, err := LoadFaces(dir, "png", DefaultFaces())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFace)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	facesDir := filepath.Join(dir, "face_images")
	require.NoError(t, os.Mkdir(facesDir, 0755))
	for name, c := range faceColors {
		writePNG(t, FacePath(facesDir, "png", name), solid(64, 64, c))
	}
	atlasPath := filepath.Join(dir, "texture_atlas.png")
	writePNG(t, atlasPath, solid(384, 192, grey))
	blockPath := filepath.Join(dir, "out", "block.png")

	err := Run(Options{
		FacesDir:  facesDir,
		FaceExt:   "png",
		AtlasPath: atlasPath,
		Dim:       192,
		Filter:    transform.Linear,
		BlockOut:  blockPath,
		Faces:     DefaultFaces(),
	})
	require.NoError(t, err)

	merged, err := LoadImage(atlasPath)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 384, 192), merged.Bounds())
	assert.Equal(t, grey, rgbaAt(merged, 10, 10))
	assert.Equal(t, grey, rgbaAt(merged, 191, 191))
	for _, spec := range DefaultFaces() {
		assert.Equal(t, faceColors[spec.Name], rgbaAt(merged, 192+spec.Col*64+5, spec.Row*64+5), "face %s", spec.Name)
	}
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rgbaAt(merged, 300, 170))

	block, err := LoadImage(blockPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 192, 192), block.Bounds())
}

func TestRun_AtlasTooSmall(t *testing.T) {
	dir := t.TempDir()
	for name, c := range faceColors {
		writePNG(t, FacePath(dir, "png", name), solid(8, 8, c))
	}
	atlasPath := filepath.Join(dir, "atlas.png")
	writePNG(t, atlasPath, solid(100, 100, grey))

	err := Run(Options{
		FacesDir:  dir,
		FaceExt:   "png",
		AtlasPath: atlasPath,
		Dim:       192,
		Filter:    transform.Linear,
		Faces:     DefaultFaces(),
	})
	assert.ErrorIs(t, err, ErrAtlasTooSmall)

	// The atlas is left as it was.
	img, err := LoadImage(atlasPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
}
