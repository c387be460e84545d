package scene

import (
	"math"
	"testing"
)

func TestProjectRayRoundTrip(t *testing.T) {
	cam := newCamera(vec3{0, 0, -6}, 50)
	cam.setViewport(480, 360)

	points := []vec3{
		{0, 0, 0},
		{0.7, -0.3, 0.5},
		{-1.6, 0.45, 0.3},
	}
	for _, p := range points {
		sx, sy, depth, ok := cam.project(p)
		if !ok {
			t.Fatalf("project(%v) rejected", p)
		}
		if math.Abs(depth-(p.z+6)) > 1e-12 {
			t.Fatalf("depth=%v for %v", depth, p)
		}

		r := cam.rayThrough(sx, sy)
		tt := (p.z - r.p.z) / r.d.z
		q := r.p.add(r.d.scale(tt))
		if math.Abs(q.x-p.x) > 1e-9 || math.Abs(q.y-p.y) > 1e-9 {
			t.Fatalf("ray through projection of %v hits %v", p, q)
		}
	}
}

func TestProjectCentersOrigin(t *testing.T) {
	cam := newCamera(vec3{0, 0, -6}, 50)
	cam.setViewport(480, 360)

	sx, sy, _, ok := cam.project(vec3{})
	if !ok || math.Abs(sx-240) > 1e-9 || math.Abs(sy-180) > 1e-9 {
		t.Fatalf("origin projects to (%v,%v) ok=%v", sx, sy, ok)
	}
}

func TestProjectRejectsBehindCamera(t *testing.T) {
	cam := newCamera(vec3{0, 0, -6}, 50)
	cam.setViewport(480, 360)

	if _, _, _, ok := cam.project(vec3{0, 0, -7}); ok {
		t.Fatal("point behind the camera must not project")
	}
	if _, _, _, ok := cam.project(vec3{0, 0, -6 + nearPlane/2}); ok {
		t.Fatal("point inside the near plane must not project")
	}
}
