package assets

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// LoadOBJ parses a Wavefront .obj file. Faces with more than three corners
// are fan triangulated; negative (relative) indices are resolved to their
// absolute 1-based position.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open OBJ file %q", path)
	}
	defer f.Close()

	model := &Model{FilePath: path}

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d: vertex", path, lineNo)
			}
			model.Vertices = append(model.Vertices, mgl32.Vec3{v[0], v[1], v[2]})
		case "vn":
			v, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d: normal", path, lineNo)
			}
			model.Normals = append(model.Normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d: texture coordinate", path, lineNo)
			}
			model.TexCoords = append(model.TexCoords, mgl32.Vec2{v[0], v[1]})
		case "f":
			if len(parts) < 4 {
				return nil, errors.Errorf("%s:%d: face needs at least 3 corners", path, lineNo)
			}
			corners := make([]FaceIndex, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				fi, err := parseFaceIndex(spec, model)
				if err != nil {
					return nil, errors.Wrapf(err, "%s:%d: face", path, lineNo)
				}
				corners = append(corners, fi)
			}
			for i := 2; i < len(corners); i++ {
				model.Faces = append(model.Faces, PolyFace{
					Indices: [3]FaceIndex{corners[0], corners[i-1], corners[i]},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read OBJ file %q", path)
	}

	if len(model.Faces) == 0 {
		return nil, errors.Errorf("no faces found in OBJ file %q", path)
	}
	return model, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, errors.Errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseFaceIndex parses a face corner like "v", "v/vt", "v//vn" or "v/vt/vn".
func parseFaceIndex(spec string, model *Model) (FaceIndex, error) {
	var fi FaceIndex
	parts := strings.Split(spec, "/")
	if len(parts) > 3 || parts[0] == "" {
		return fi, errors.Errorf("malformed corner %q", spec)
	}

	var err error
	if fi.Vertex, err = resolveIndex(parts[0], len(model.Vertices)); err != nil {
		return fi, errors.Wrapf(err, "corner %q", spec)
	}
	if len(parts) >= 2 && parts[1] != "" {
		if fi.TexCoord, err = resolveIndex(parts[1], len(model.TexCoords)); err != nil {
			return fi, errors.Wrapf(err, "corner %q", spec)
		}
	}
	if len(parts) == 3 && parts[2] != "" {
		if fi.Normal, err = resolveIndex(parts[2], len(model.Normals)); err != nil {
			return fi, errors.Wrapf(err, "corner %q", spec)
		}
	}
	return fi, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = count + idx + 1
	}
	if idx <= 0 || idx > count {
		return 0, errors.Errorf("index %s out of range (have %d)", s, count)
	}
	return idx, nil
}
