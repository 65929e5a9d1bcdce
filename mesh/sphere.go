// Package mesh tessellates the sphere geometry the scene attaches to
// globe entities
package mesh

import (
	"fmt"

	"github.com/shanebenlolo/hypersphere/components"
	"github.com/shanebenlolo/hypersphere/geo"
	"github.com/shanebenlolo/hypersphere/vmath"
)

// Sphere tessellates a lat/lon sphere of the given radius into a
// triangle strip. Vertices are laid out row-major, stacks+1 rows of
// sectors+1 columns, poles duplicated across the top and bottom rows
// and the seam column duplicated at both ends of each row. Strip rows
// are joined by repeating the boundary indices, which yields zero-area
// stitch triangles a strip pipeline skips
func Sphere(radius float64, sectors, stacks int) (components.Mesh, error) {
	if radius <= 0 {
		return components.Mesh{}, fmt.Errorf("sphere radius %f not positive", radius)
	}
	if sectors < 3 || stacks < 2 {
		return components.Mesh{}, fmt.Errorf("sphere tessellation %dx%d too coarse", sectors, stacks)
	}

	cols := sectors + 1
	vertices := make([]vmath.Vec3F, 0, (stacks+1)*cols)
	for i := 0; i <= stacks; i++ {
		lat := 90 - 180*float64(i)/float64(stacks)
		for j := 0; j <= sectors; j++ {
			lon := -180 + 360*float64(j)/float64(sectors)
			vertices = append(vertices, geo.LatLonToCartesian(lat, lon, radius))
		}
	}

	indices := make([]uint32, 0, stacks*2*cols+2*(stacks-1))
	for i := 0; i < stacks; i++ {
		if i > 0 {
			// Stitch: repeat the previous strip's last index and this
			// strip's first
			indices = append(indices, indices[len(indices)-1], uint32(i*cols))
		}
		for j := 0; j < cols; j++ {
			indices = append(indices, uint32(i*cols+j), uint32((i+1)*cols+j))
		}
	}

	return components.Mesh{Vertices: vertices, Indices: indices}, nil
}
