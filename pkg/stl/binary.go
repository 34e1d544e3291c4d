package stl

import (
	"encoding/binary"
	"math"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50 // 12 float32 + uint16 attribute
)

// IsBinary reports whether data has the exact size of a binary STL file
// declaring its own facet count.
func IsBinary(data []byte) bool {
	if len(data) < binaryHeaderSize+4 {
		return false
	}
	n := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return uint64(len(data)) == binaryHeaderSize+4+uint64(n)*binaryFacetSize
}

// binaryNumbers converts binary facets into the shared number stream.
func binaryNumbers(data []byte) ([]float64, error) {
	if len(data) < binaryHeaderSize+4 {
		return nil, ErrTruncatedBinary
	}
	n := int(binary.LittleEndian.Uint32(data[binaryHeaderSize:]))
	body := data[binaryHeaderSize+4:]
	if len(body) < n*binaryFacetSize {
		return nil, ErrTruncatedBinary
	}

	nums := make([]float64, 0, n*NumbersPerTriangle)
	for i := 0; i < n; i++ {
		facet := body[i*binaryFacetSize:]
		for c := 0; c < NumbersPerTriangle; c++ {
			bits := binary.LittleEndian.Uint32(facet[4*c:])
			nums = append(nums, float64(math.Float32frombits(bits)))
		}
	}
	return nums, nil
}
