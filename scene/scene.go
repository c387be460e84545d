// Package scene projects the task list into floating 3D text labels and maps
// pointer clicks back to task identities by ray intersection.
//
// Synchronization is a full rebuild: the label set is always recomputed from
// scratch as a pure function of the task list plus the loaded typeface. Task
// counts are small; no diffing.
package scene

import (
	"image"
	"image/color"
	"math"

	"driftboard/logging"
	"driftboard/store"
	"driftboard/typeface"
)

const (
	gridCols    = 3
	labelWorldH = 0.5
	bobAmp      = 0.05
	bobSpeed    = 0.04
)

var (
	activeTint    = color.RGBA{R: 0xF0, G: 0xEA, B: 0xD0, A: 0xFF}
	completedTint = color.RGBA{R: 0x62, G: 0xC4, B: 0x86, A: 0xFF}
)

// Layout holds the grid and camera parameters.
type Layout struct {
	SpacingX    float64
	SpacingY    float64
	CameraDist  float64
	DepthOffset float64
}

// label is one derived, disposable visual object. It carries the owning
// task's identifier for reverse lookup; it is never the authoritative record.
type label struct {
	id    string
	pos   vec3 // grid center, before bob
	w, h  float64
	pix   *image.RGBA
	phase float64
	bob   float64 // current vertical offset, updated each frame
}

// intersect tests a camera ray against the label's billboard quad.
func (l *label) intersect(r ray, tMax float64) (bool, float64, vec3) {
	if r.d.z <= 1e-9 {
		return false, 0, vec3{}
	}
	t := (l.pos.z - r.p.z) / r.d.z
	if t <= 0 || t >= tMax {
		return false, 0, vec3{}
	}
	p := r.p.add(r.d.scale(t))
	if math.Abs(p.x-l.pos.x) > l.w/2 || math.Abs(p.y-(l.pos.y+l.bob)) > l.h/2 {
		return false, 0, vec3{}
	}
	return true, t, p
}

// Scene owns the derived label objects and the camera.
type Scene struct {
	log    *logging.Logger
	lay    Layout
	cam    *camera
	face   *typeface.Face
	labels []*label
	tick   uint64
}

// New creates an empty scene. No labels exist until a typeface is set and
// Rebuild runs.
func New(lay Layout, log *logging.Logger) *Scene {
	return &Scene{
		log: log,
		lay: lay,
		cam: newCamera(vec3{x: 0, y: 0, z: -lay.CameraDist}, 50),
	}
}

// SetViewport recomputes the camera projection for a new surface size.
func (s *Scene) SetViewport(w, h int) {
	s.cam.setViewport(w, h)
}

// SetFace installs the loaded typeface asset. The caller must Rebuild after.
func (s *Scene) SetFace(f *typeface.Face) {
	s.face = f
}

// Ready reports whether the typeface asset is available.
func (s *Scene) Ready() bool { return s.face != nil }

// Rebuild discards every label and synthesizes the set anew from the task
// list, in list order. Index determines grid placement: column = i mod 3,
// row = i div 3, with a small depth offset alternating by parity.
func (s *Scene) Rebuild(tasks []store.Task) {
	for _, l := range s.labels {
		l.pix = nil
	}
	s.labels = s.labels[:0]

	if s.face == nil {
		return
	}

	rows := (len(tasks) + gridCols - 1) / gridCols
	topY := float64(rows-1) * s.lay.SpacingY / 2

	for i, t := range tasks {
		col := i % gridCols
		row := i / gridCols

		z := 0.0
		if i%2 == 1 {
			z = s.lay.DepthOffset
		}
		pos := vec3{
			x: float64(col-1) * s.lay.SpacingX,
			y: topY - float64(row)*s.lay.SpacingY,
			z: z,
		}

		tint := activeTint
		if t.Completed {
			tint = completedTint
		}
		pix := s.face.RenderLabel(t.Text, tint)
		pb := pix.Bounds()

		h := labelWorldH
		w := h * float64(pb.Dx()) / float64(pb.Dy())

		s.labels = append(s.labels, &label{
			id:    t.ID,
			pos:   pos,
			w:     w,
			h:     h,
			pix:   pix,
			phase: float64(i) * 0.7,
		})
	}

	s.log.Debug("scene rebuilt", map[string]interface{}{"labels": len(s.labels)})
}

// Pick casts a ray from the camera through the clicked pixel and returns the
// task identifier of the nearest intersected label.
func (s *Scene) Pick(px, py int) (string, bool) {
	if len(s.labels) == 0 {
		return "", false
	}
	r := s.cam.rayThrough(float64(px)+0.5, float64(py)+0.5)

	var best *label
	bestT := math.MaxFloat64
	for _, l := range s.labels {
		hit, t, _ := l.intersect(r, bestT)
		if !hit {
			continue
		}
		best = l
		bestT = t
	}
	if best == nil {
		return "", false
	}
	return best.id, true
}

// LabelCount returns the number of labels currently in the scene.
func (s *Scene) LabelCount() int { return len(s.labels) }

// LabelIDs returns the task identifiers tagged on the current labels.
func (s *Scene) LabelIDs() []string {
	out := make([]string, len(s.labels))
	for i, l := range s.labels {
		out[i] = l.id
	}
	return out
}

// Release frees all derived objects. The scene is unusable afterwards.
func (s *Scene) Release() {
	for _, l := range s.labels {
		l.pix = nil
	}
	s.labels = nil
	s.face = nil
}
