package scene

import "math"

// nearPlane rejects projections of points at or behind the camera.
const nearPlane = 0.1

// camera is a fixed perspective camera at pos looking down +z.
type camera struct {
	pos    vec3
	fovY   float64 // radians
	width  int
	height int
}

func newCamera(pos vec3, fovYDeg float64) *camera {
	return &camera{pos: pos, fovY: fovYDeg * math.Pi / 180}
}

func (c *camera) setViewport(w, h int) {
	c.width = w
	c.height = h
}

// focalPx is the projection focal length in pixels, derived from the
// vertical field of view and the current surface height.
func (c *camera) focalPx() float64 {
	return (float64(c.height) / 2) / math.Tan(c.fovY/2)
}

// project maps a world point to screen pixels plus its camera-space depth.
func (c *camera) project(p vec3) (sx, sy, depth float64, ok bool) {
	rel := p.sub(c.pos)
	if rel.z < nearPlane {
		return 0, 0, 0, false
	}
	f := c.focalPx()
	sx = float64(c.width)/2 + rel.x*f/rel.z
	sy = float64(c.height)/2 - rel.y*f/rel.z
	return sx, sy, rel.z, true
}

// rayThrough casts a ray from the camera through the given pixel.
func (c *camera) rayThrough(px, py float64) ray {
	f := c.focalPx()
	d := vec3{
		x: (px - float64(c.width)/2) / f,
		y: (float64(c.height)/2 - py) / f,
		z: 1,
	}
	return ray{p: c.pos, d: d.normalize()}
}
