package scene

import "math"

type vec3 struct {
	x, y, z float64
}

func (v vec3) add(o vec3) vec3 { return vec3{v.x + o.x, v.y + o.y, v.z + o.z} }
func (v vec3) sub(o vec3) vec3 { return vec3{v.x - o.x, v.y - o.y, v.z - o.z} }

func (v vec3) scale(s float64) vec3 {
	return vec3{v.x * s, v.y * s, v.z * s}
}

func (v vec3) dot(o vec3) float64 { return v.x*o.x + v.y*o.y + v.z*o.z }

func (v vec3) normalize() vec3 {
	l2 := v.dot(v)
	if l2 == 0 {
		return v
	}
	return v.scale(1 / math.Sqrt(l2))
}

type ray struct {
	p vec3
	d vec3
}
