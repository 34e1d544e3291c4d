package webmodel

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
)

var (
	assignPattern    = regexp.MustCompile(`(?s)^\s*(?:let|var|const)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(.*?)\s*;?\s*$`)
	nonFinitePattern = regexp.MustCompile(`-?Infinity|NaN`)
)

// scriptFloat accepts plain numbers and the quoted forms of the non-finite
// literals produced by Encode.
type scriptFloat float64

func (f *scriptFloat) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*f = scriptFloat(math.NaN())
		case "Infinity":
			*f = scriptFloat(math.Inf(1))
		case "-Infinity":
			*f = scriptFloat(math.Inf(-1))
		default:
			return fmt.Errorf("unexpected number literal %q", s)
		}
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*f = scriptFloat(v)
	return nil
}

type scriptModel struct {
	Positions [][4]scriptFloat `json:"positions"`
	Normals   [][4]scriptFloat `json:"normals"`
	Texcoords [][2]scriptFloat `json:"texcoords"`
}

// Decode parses a script written by Encode and returns the variable name
// and the model.
func Decode(r io.Reader) (string, *Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, err
	}
	match := assignPattern.FindSubmatch(data)
	if match == nil {
		return "", nil, ErrNoAssign
	}
	name := string(match[1])
	body := nonFinitePattern.ReplaceAll(match[2], []byte(`"$0"`))

	var sm scriptModel
	if err := json.Unmarshal(body, &sm); err != nil {
		return "", nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if len(sm.Positions) != len(sm.Normals) || len(sm.Positions) != len(sm.Texcoords) {
		return "", nil, ErrMisaligned
	}

	m := &Model{
		Positions: make([][4]float64, len(sm.Positions)),
		Normals:   make([][4]float64, len(sm.Normals)),
		Texcoords: make([][2]float64, len(sm.Texcoords)),
	}
	for i := range sm.Positions {
		for c := 0; c < 4; c++ {
			m.Positions[i][c] = float64(sm.Positions[i][c])
			m.Normals[i][c] = float64(sm.Normals[i][c])
		}
		m.Texcoords[i] = [2]float64{float64(sm.Texcoords[i][0]), float64(sm.Texcoords[i][1])}
	}
	return name, m, nil
}
