package sketch

import "math"

// sphereLines builds a unit-sphere wireframe as GL_LINES vertex pairs
// (x, y, z per vertex): detail.Y-1 latitude rings and detail.X meridians.
func sphereLines(detail SphereDetail) []float32 {
	dx := max(3, min(detail.X, MaxSphereDetail))
	dy := max(2, min(detail.Y, MaxSphereDetail))

	point := func(i, j int) (float32, float32, float32) {
		theta := 2 * math.Pi * float64(i) / float64(dx) // around
		phi := math.Pi * float64(j) / float64(dy)       // pole to pole
		return float32(math.Sin(phi) * math.Sin(theta)),
			float32(math.Cos(phi)),
			float32(math.Sin(phi) * math.Cos(theta))
	}

	verts := make([]float32, 0, ((dy-1)*dx+dx*dy)*6)
	for j := 1; j < dy; j++ {
		for i := 0; i < dx; i++ {
			x0, y0, z0 := point(i, j)
			x1, y1, z1 := point(i+1, j)
			verts = append(verts, x0, y0, z0, x1, y1, z1)
		}
	}
	for i := 0; i < dx; i++ {
		for j := 0; j < dy; j++ {
			x0, y0, z0 := point(i, j)
			x1, y1, z1 := point(i, j+1)
			verts = append(verts, x0, y0, z0, x1, y1, z1)
		}
	}
	return verts
}
