// meshtool is a CLI utility for inspecting STL models and viewer scripts.
package main

import (
	"flag"
	"fmt"
	stdmath "math"
	"os"

	"github.com/Faultbox/cubeatlas/internal/config"
	"github.com/Faultbox/cubeatlas/pkg/cubemap"
	"github.com/Faultbox/cubeatlas/pkg/stl"
	"github.com/Faultbox/cubeatlas/pkg/webmodel"
)

// normalEpsilon is the allowed deviation of a facet normal's length from 1.
const normalEpsilon = 1e-5

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "check":
		cmdCheck(args)
	case "inspect":
		cmdInspect(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - STL model and viewer script utility

Usage:
  meshtool <command> [options]

Commands:
  info <file.stl>           Show triangle counts, bounds and face usage
  dump <file.stl>           Print emitted triangles (-n limits output)
  check <file.stl>          Report non-unit normals and flat axes
  inspect <file.js>         Show the contents of a generated viewer script
  config [path]             Write the default config (to the config dir if no path)

Examples:
  meshtool info school.stl
  meshtool dump -n 10 school.stl
  meshtool inspect ../school.js`)
}

// openMesh parses the STL named by the flag set's first argument.
func openMesh(fs *flag.FlagSet, raw bool, usage string) *stl.Mesh {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	m, err := stl.ReadFile(fs.Arg(0), stl.Options{IgnoreSolidNames: !raw})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return m
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	raw := fs.Bool("raw", false, "Scan solid names for numbers too")
	fs.Parse(args)
	m := openMesh(fs, *raw, "Usage: meshtool info <file.stl>")

	encoding := "ascii"
	if m.Binary {
		encoding = "binary"
	}
	fmt.Printf("Model:     %s (%s)\n", fs.Arg(0), encoding)
	fmt.Printf("Triangles: %d\n", m.Triangles)
	fmt.Printf("Culled:    %d (on z=0)\n", m.Culled)
	fmt.Printf("Vertices:  %d\n", m.VertexCount())
	if m.Leftover > 0 {
		fmt.Printf("Leftover:  %d numbers\n", m.Leftover)
	}

	b, err := m.Bounds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("From:      %v\n", b.Min)
	fmt.Printf("  To:      %v\n", b.Max)

	_, stats, err := cubemap.Map(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("Vertices by face:")
	for i, n := range stats.Faces {
		col, row := cubemap.Face(i).Cell()
		fmt.Printf("  %-3s cell(%d,%d) %d\n", cubemap.Face(i), col, row, n)
	}
	if stats.NonFinite > 0 {
		fmt.Printf("\n%d vertices have non-finite texture coordinates\n", stats.NonFinite)
	}
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N triangles (0 = all)")
	raw := fs.Bool("raw", false, "Scan solid names for numbers too")
	fs.Parse(args)
	m := openMesh(fs, *raw, "Usage: meshtool dump [-n N] <file.stl>")

	for i, t := range m.Facets() {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(os.Stderr, "\n(showing first %d triangles, use -n 0 for all)\n", *limit)
			break
		}
		fmt.Printf("Triangle %d: face %s\n", i, cubemap.Nearest(t.Normal))
		fmt.Printf("  %v\n", t.Normal)
		for _, v := range t.Vertex {
			fmt.Printf("  %v\n", v)
		}
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	raw := fs.Bool("raw", false, "Scan solid names for numbers too")
	fs.Parse(args)
	m := openMesh(fs, *raw, "Usage: meshtool check <file.stl>")

	problems := 0
	for i, t := range m.Facets() {
		if l := t.Normal.Length(); stdmath.Abs(l-1) > normalEpsilon {
			fmt.Printf("Triangle %d normal %v: length %g != 1\n", i, t.Normal, l)
			problems++
		}
	}
	if m.Leftover > 0 {
		fmt.Printf("%d trailing numbers do not form a triangle\n", m.Leftover)
		problems++
	}

	b, err := m.Bounds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for axis, name := range []string{"x", "y", "z"} {
		if b.Extent(axis) == 0 {
			fmt.Printf("Model is flat along %s; texture coordinates on that axis are not finite\n", name)
			problems++
		}
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problems found\n", problems)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "No problems found")
}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool inspect <file.js>")
		os.Exit(1)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	name, model, err := webmodel.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	minUV := [2]float64{stdmath.Inf(1), stdmath.Inf(1)}
	maxUV := [2]float64{stdmath.Inf(-1), stdmath.Inf(-1)}
	nonFinite := 0
	for _, uv := range model.Texcoords {
		if stdmath.IsNaN(uv[0]) || stdmath.IsNaN(uv[1]) || stdmath.IsInf(uv[0], 0) || stdmath.IsInf(uv[1], 0) {
			nonFinite++
			continue
		}
		for c := 0; c < 2; c++ {
			minUV[c] = stdmath.Min(minUV[c], uv[c])
			maxUV[c] = stdmath.Max(maxUV[c], uv[c])
		}
	}

	fmt.Printf("Script:    %s\n", fs.Arg(0))
	fmt.Printf("Variable:  %s\n", name)
	fmt.Printf("Vertices:  %d\n", model.VertexCount())
	fmt.Printf("Triangles: %d\n", model.VertexCount()/3)
	if model.VertexCount() > nonFinite {
		fmt.Printf("UV range:  %v - %v\n", minUV, maxUV)
	}
	if nonFinite > 0 {
		fmt.Printf("Non-finite texcoords: %d\n", nonFinite)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Default()
	var err error
	path := fs.Arg(0)
	if path == "" {
		err = cfg.Save()
		path = config.ConfigDir()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}
