// Package formats provides parsers for mesh file formats.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/softrender/pkg/math"
)

// OBJ format errors.
var (
	ErrOBJMalformed       = errors.New("malformed OBJ line")
	ErrOBJIndexOutOfRange = errors.New("OBJ face index out of range")
)

// OBJ represents the geometry of a parsed Wavefront OBJ file.
// Only vertex positions (v) and triangular faces (f) are read.
type OBJ struct {
	Vertices []math.Vec3
	Faces    [][3]int // 1-based vertex indices, as written in the file
}

// ParseOBJ parses OBJ text. Lines starting with anything other than "v" or
// "f" are ignored. Face indices are validated against the vertex list.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Vertices = append(obj.Vertices, v)

		case "f":
			f, err := parseOBJFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			obj.Faces = append(obj.Faces, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning OBJ: %w", err)
	}

	for i, f := range obj.Faces {
		for _, idx := range f {
			if idx < 1 || idx > len(obj.Vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d",
					ErrOBJIndexOutOfRange, i+1, idx, len(obj.Vertices))
			}
		}
	}

	return obj, nil
}

// parseOBJVertex reads "x y z". A trailing w component is ignored.
func parseOBJVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrOBJMalformed, len(fields))
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: vertex coordinate %q", ErrOBJMalformed, fields[i])
		}
		c[i] = f
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseOBJFace reads "a b c". Texture and normal references ("a/t/n") are
// dropped; only the position index is kept.
func parseOBJFace(fields []string) ([3]int, error) {
	var f [3]int
	if len(fields) < 3 {
		return f, fmt.Errorf("%w: face needs 3 indices, got %d", ErrOBJMalformed, len(fields))
	}
	for i := 0; i < 3; i++ {
		ref := fields[i]
		if slash := strings.IndexByte(ref, '/'); slash >= 0 {
			ref = ref[:slash]
		}
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return f, fmt.Errorf("%w: face index %q", ErrOBJMalformed, fields[i])
		}
		f[i] = idx
	}
	return f, nil
}

// ParseOBJFile reads and parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// Triangles returns one triangle per face in file order.
func (o *OBJ) Triangles() []math.Triangle {
	tris := make([]math.Triangle, 0, len(o.Faces))
	for _, f := range o.Faces {
		tris = append(tris, math.NewTriangle(
			o.Vertices[f[0]-1],
			o.Vertices[f[1]-1],
			o.Vertices[f[2]-1],
		))
	}
	return tris
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (o *OBJ) Bounds() (min, max math.Vec3) {
	if len(o.Vertices) == 0 {
		return
	}
	min, max = o.Vertices[0], o.Vertices[0]
	for _, v := range o.Vertices[1:] {
		min.X, max.X = minMax(min.X, max.X, v.X)
		min.Y, max.Y = minMax(min.Y, max.Y, v.Y)
		min.Z, max.Z = minMax(min.Z, max.Z, v.Z)
	}
	return min, max
}

func minMax(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
