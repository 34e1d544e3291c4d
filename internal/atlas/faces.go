// Package atlas composes cube face images into the 3x2 block of a shared
// texture atlas that cubemap texture coordinates address.
package atlas

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/cubeatlas/pkg/cubemap"
)

// Block layout, shared with the texture coordinate mapper.
const (
	Grid    = cubemap.Grid
	Columns = cubemap.Columns
	Rows    = cubemap.Rows
)

// Atlas errors.
var (
	ErrFaceTable     = errors.New("invalid face table")
	ErrMissingFace   = errors.New("missing face image")
	ErrAtlasTooSmall = errors.New("atlas smaller than block")
	ErrNotImage      = errors.New("not an image file")
)

// FaceSpec places one face image in the block.
type FaceSpec struct {
	Name   string `yaml:"name"`   // Image base name inside the faces directory
	Rotate int    `yaml:"rotate"` // Counter-clockwise quarter turns, 0-3
	Mirror bool   `yaml:"mirror"` // Flip horizontally after rotating
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
}

// DefaultFaces returns the face table for the school model. Cells follow
// cubemap face order: +X, -X, +Y on the first row, -Y, +Z, -Z on the second.
func DefaultFaces() []FaceSpec {
	return []FaceSpec{
		{Name: "right", Rotate: 2, Mirror: true, Col: 0, Row: 0},
		{Name: "left", Rotate: 2, Mirror: false, Col: 1, Row: 0},
		{Name: "back", Rotate: 2, Mirror: false, Col: 2, Row: 0},
		{Name: "front", Rotate: 2, Mirror: true, Col: 0, Row: 1},
		{Name: "top", Rotate: 0, Mirror: true, Col: 1, Row: 1},
		{Name: "bottom", Rotate: 0, Mirror: false, Col: 2, Row: 1},
	}
}

// ValidateFaces checks that specs fill every block cell exactly once.
// All problems are reported together.
func ValidateFaces(specs []FaceSpec) error {
	var err error
	if len(specs) != Columns*Rows {
		err = multierr.Append(err, fmt.Errorf("%w: %d faces, want %d", ErrFaceTable, len(specs), Columns*Rows))
	}

	names := make(map[string]bool)
	cells := make(map[[2]int]string)
	for i, s := range specs {
		if s.Name == "" {
			err = multierr.Append(err, fmt.Errorf("%w: face %d has no name", ErrFaceTable, i))
		} else if names[s.Name] {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate face %q", ErrFaceTable, s.Name))
		}
		names[s.Name] = true

		if s.Rotate < 0 || s.Rotate > 3 {
			err = multierr.Append(err, fmt.Errorf("%w: face %q rotate %d outside 0-3", ErrFaceTable, s.Name, s.Rotate))
		}
		if s.Col < 0 || s.Col >= Columns || s.Row < 0 || s.Row >= Rows {
			err = multierr.Append(err, fmt.Errorf("%w: face %q cell (%d,%d) outside %dx%d block",
				ErrFaceTable, s.Name, s.Col, s.Row, Columns, Rows))
			continue
		}
		cell := [2]int{s.Col, s.Row}
		if other, ok := cells[cell]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: faces %q and %q share cell (%d,%d)",
				ErrFaceTable, other, s.Name, s.Col, s.Row))
		}
		cells[cell] = s.Name
	}
	return err
}
