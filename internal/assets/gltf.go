package assets

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// DecodeGLTF reads the first mesh of a .glb or .gltf file. All primitives of
// that mesh are merged; primitives without indices are read as triangle lists.
func DecodeGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return meshFromDocument(path, doc)
}

func meshFromDocument(path string, doc *gltf.Document) (*Mesh, error) {
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoMesh)
	}

	mesh := &Mesh{Path: path}
	for i, prim := range doc.Meshes[0].Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok || posIdx >= len(doc.Accessors) {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("%s: primitive %d positions: %w", path, i, err)
		}

		base := uint32(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, positions...)

		if prim.Indices != nil && *prim.Indices < len(doc.Accessors) {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("%s: primitive %d indices: %w", path, i, err)
			}
			for _, idx := range indices {
				mesh.Indices = append(mesh.Indices, base+idx)
			}
			continue
		}

		for j := range positions {
			mesh.Indices = append(mesh.Indices, base+uint32(j))
		}
	}

	if len(mesh.Positions) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoMesh)
	}
	return mesh, nil
}
