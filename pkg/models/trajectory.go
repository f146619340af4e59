// Package models exports and imports simulated paths as glTF assets.
package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tracer/pkg/math3d"
)

// TrajectoryName names the mesh and node written by ExportTrajectory.
const TrajectoryName = "trajectory"

// The tracer is Z-up; glTF is Y-up with -Z forward.
func toGLTF(p math3d.Tuple) [3]float32 {
	return [3]float32{p.X, p.Z, -p.Y}
}

func fromGLTF(v [3]float32) math3d.Tuple {
	return math3d.Point(v[0], -v[2], v[1])
}

// ExportTrajectory writes points as a single LINE_STRIP mesh. The file is
// written as JSON glTF when path ends in ".gltf" and as binary GLB
// otherwise.
func ExportTrajectory(path string, points []math3d.Tuple) error {
	if len(points) == 0 {
		return errors.New("export trajectory: no points")
	}

	positions := make([][3]float32, len(points))
	for i, p := range points {
		positions[i] = toGLTF(p)
	}

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: TrajectoryName,
		Primitives: []*gltf.Primitive{{
			Mode:       gltf.PrimitiveLineStrip,
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: TrajectoryName,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".gltf") {
		// Single-file JSON: inline the buffer as a base64 data URI.
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	} else {
		err = gltf.SaveBinary(doc, path)
	}
	if err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}

// LoadTrajectory reads the first LINE_STRIP primitive of a glTF file back
// into points.
func LoadTrajectory(path string) ([]math3d.Tuple, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveLineStrip {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				return nil, fmt.Errorf("mesh %q: line strip has no positions", m.Name)
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
			points := make([]math3d.Tuple, len(positions))
			for i, v := range positions {
				points[i] = fromGLTF(v)
			}
			return points, nil
		}
	}
	return nil, errors.New("no line strip found")
}

// readVec3Accessor reads tightly packed or strided float VEC3 data.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([][3]float32, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v / %v", accessor.Type, accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, errors.New("accessor has no buffer view")
	}

	if accessor.Count < 0 {
		return nil, fmt.Errorf("accessor count %d is negative", accessor.Count)
	}
	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", viewIdx)
	}
	bufferView := doc.BufferViews[viewIdx]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	data := doc.Buffers[bufferView.Buffer].Data
	if data == nil {
		return nil, errors.New("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}
	if start < 0 || stride < 12 {
		return nil, fmt.Errorf("invalid layout: offset %d, stride %d", start, stride)
	}
	if end := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && end > len(data) {
		return nil, fmt.Errorf("accessor needs %d bytes, buffer has %d", end, len(data))
	}

	result := make([][3]float32, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		for j := range 3 {
			bits := binary.LittleEndian.Uint32(data[offset+j*4:])
			result[i][j] = math.Float32frombits(bits)
		}
	}
	return result, nil
}
