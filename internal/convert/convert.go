// Package convert turns an STL model into the viewer script.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeatlas/internal/logger"
	"github.com/Faultbox/cubeatlas/pkg/cubemap"
	"github.com/Faultbox/cubeatlas/pkg/stl"
	"github.com/Faultbox/cubeatlas/pkg/webmodel"
)

// Options configures a conversion run.
type Options struct {
	Input            string
	Output           string
	VarName          string
	IgnoreSolidNames bool
	// Dump, when set, also receives the bare model JSON.
	Dump io.Writer
}

// Result summarizes a conversion run.
type Result struct {
	Triangles int
	Culled    int
	Vertices  int
	Leftover  int
	NonFinite int
	Faces     [cubemap.FaceCount]int
	Bounds    stl.Bounds
	Binary    bool
}

// Build parses an STL model and produces the viewer model.
func Build(data []byte, opts stl.Options) (*webmodel.Model, *Result, error) {
	mesh, err := stl.ParseWith(data, opts)
	if err != nil {
		return nil, nil, err
	}
	res := &Result{
		Triangles: mesh.Triangles,
		Culled:    mesh.Culled,
		Vertices:  mesh.VertexCount(),
		Leftover:  mesh.Leftover,
		Binary:    mesh.Binary,
	}

	bounds, err := mesh.Bounds()
	if err != nil {
		return nil, res, err
	}
	res.Bounds = bounds

	texcoords, stats, err := cubemap.Map(mesh)
	if err != nil {
		return nil, res, err
	}
	res.Faces = stats.Faces
	res.NonFinite = stats.NonFinite

	model, err := webmodel.New(mesh.Positions, mesh.Normals, texcoords)
	if err != nil {
		return nil, res, err
	}
	return model, res, nil
}

// Run converts opts.Input and writes the script to opts.Output.
func Run(opts Options) (*Result, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}

	model, res, err := Build(data, stl.Options{IgnoreSolidNames: opts.IgnoreSolidNames})
	if err != nil {
		return res, fmt.Errorf("converting %s: %w", opts.Input, err)
	}
	logResult(res)

	var buf bytes.Buffer
	if err := webmodel.Encode(&buf, opts.VarName, model); err != nil {
		return res, fmt.Errorf("encoding %q: %w", opts.VarName, err)
	}
	if dir := filepath.Dir(opts.Output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return res, err
		}
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return res, fmt.Errorf("writing script: %w", err)
	}
	logger.Info("wrote viewer script",
		zap.String("path", opts.Output),
		zap.String("var", opts.VarName),
		zap.Int("bytes", buf.Len()))

	if opts.Dump != nil {
		if err := webmodel.EncodeJSON(opts.Dump, model); err != nil {
			return res, fmt.Errorf("printing model: %w", err)
		}
	}
	return res, nil
}

func logResult(res *Result) {
	logger.Info("parsed model",
		zap.Bool("binary", res.Binary),
		zap.Int("triangles", res.Triangles),
		zap.Int("culled", res.Culled),
		zap.Int("vertices", res.Vertices))
	logger.Sugar.Debugf("bounds min=%v max=%v", res.Bounds.Min, res.Bounds.Max)
	for i, n := range res.Faces {
		logger.Debug("face", zap.Stringer("face", cubemap.Face(i)), zap.Int("vertices", n))
	}
	if res.Leftover > 0 {
		logger.Warn("trailing numbers did not form a triangle", zap.Int("numbers", res.Leftover))
	}
	if res.NonFinite > 0 {
		logger.Warn("model is flat along a mapped axis; texture coordinates are not finite",
			zap.Int("vertices", res.NonFinite))
	}
}
