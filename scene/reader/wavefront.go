// Package reader imports scene geometry from wavefront obj files. Only
// vertex positions and faces are consumed; normals, texture coordinates and
// material data are ignored.
package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/graypath/graypath/geometry"
	"github.com/graypath/graypath/log"
	"github.com/graypath/graypath/object"
	"github.com/graypath/graypath/types"
)

type wavefrontReader struct {
	logger log.Logger

	vertexList []types.Vec3
	triangles  []geometry.Intersectable
}

// ReadTriangles parses a wavefront obj file into a list of front-facing
// triangle primitives. Faces with more than 3 vertices are triangulated as
// a fan around the first vertex. A missing or malformed file is an error;
// no partial geometry is ever returned.
func ReadTriangles(path string) ([]geometry.Intersectable, error) {
	r := &wavefrontReader{
		logger: log.New("reader"),
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: could not open '%s': %s", path, err.Error())
	}
	defer f.Close()

	r.logger.Infof("parsing geometry from %s", path)
	start := time.Now()
	if err = r.parse(f, path); err != nil {
		return nil, err
	}
	r.logger.Infof("parsed %d triangles in %d ms", len(r.triangles), time.Since(start).Nanoseconds()/1e6)

	return r.triangles, nil
}

// Parse wavefront object scene format.
func (r *wavefrontReader) parse(f *os.File, path string) error {
	var lineNum int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(path, lineNum, err.Error())
			}
			r.vertexList = append(r.vertexList, v)
		case "f":
			if err := r.parseFace(lineTokens); err != nil {
				return r.emitError(path, lineNum, err.Error())
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(path, lineNum, err.Error())
	}

	return nil
}

// Parse a face into one or more triangles. Each face argument is of the
// form v, v/vt, v/vt/vn or v//vn; only the vertex index is used.
func (r *wavefrontReader) parseFace(lineTokens []string) error {
	if len(lineTokens) < 4 {
		return fmt.Errorf("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	vertices := make([]types.Vec3, len(lineTokens)-1)
	for arg := 0; arg < len(vertices); arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")
		if vTokens[0] == "" {
			return fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectCoordIndex(vTokens[0], len(r.vertexList))
		if err != nil {
			return fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertices[arg] = r.vertexList[vOffset]
	}

	for i := 1; i < len(vertices)-1; i++ {
		r.triangles = append(r.triangles, object.NewTriangle(vertices[0], vertices[i], vertices[i+1]))
	}
	return nil
}

// Generate an error message with file and line context.
func (r *wavefrontReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	return fmt.Errorf("[%s: %d] error: %s", file, line, msg)
}

// Resolve a 1-based face coordinate index into a list offset. Negative
// indices select relative to the end of the list.
func selectCoordIndex(token string, listLen int) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}

	var offset int
	if index < 0 {
		offset = listLen + index
	} else {
		offset = index - 1
	}

	if offset < 0 || offset >= listLen {
		return 0, fmt.Errorf("index %d out of bounds for list with length %d", index, listLen)
	}
	return offset, nil
}

// Parse a Vec3 from a line of the form "cmd x y z".
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	var out types.Vec3
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(lineTokens[i+1], 64)
		if err != nil {
			return types.Vec3{}, err
		}
		out[i] = v
	}
	return out, nil
}
