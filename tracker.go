package ripple

import "math"

// Trigger is one emission event: a tracked entity moved more than the
// displacement threshold between two consecutive ticks. Position and Distance
// are in destination (display) space.
type Trigger struct {
	ID       string
	Position Vec2
	Distance float64
}

// MotionDetector watches tracked entities for frame-to-frame movement in
// destination space. Each entity is in one of two states: Absent (no prior
// position) or Present (a position from the previous tick to diff against).
//
// An entity goes Absent whenever it is missing from the tick's samples, its
// confidence is below the threshold, it falls outside the zone quad, or the
// homography for the tick is invalid. Re-entering entities therefore never
// trigger off a stale position: the first sighting only establishes a
// baseline, and emission requires a second consecutive sighting.
type MotionDetector struct {
	confidenceMin   float64
	displacementMin float64
	last            map[string]Vec2
	seen            map[string]bool // scratch set, reused across ticks
}

// NewMotionDetector creates a detector with the given confidence threshold
// (samples below it count as absent) and displacement threshold (movement
// must strictly exceed it, in destination-space units, to trigger).
func NewMotionDetector(confidenceMin, displacementMin float64) *MotionDetector {
	return &MotionDetector{
		confidenceMin:   confidenceMin,
		displacementMin: displacementMin,
		last:            make(map[string]Vec2),
		seen:            make(map[string]bool),
	}
}

// Observe processes one tick's samples. h is the current homography and
// hValid reports whether estimation succeeded this tick; when hValid is
// false every entity transitions to Absent and no triggers fire. zone is the
// source-space quad the samples must fall inside.
//
// Triggers are appended to buf (may be nil) and returned, one per entity
// whose transformed position moved strictly more than the displacement
// threshold since the previous tick.
func (d *MotionDetector) Observe(samples []TrackedPoint, h Homography, hValid bool, zone Quad, buf []Trigger) []Trigger {
	clear(d.seen)

	if hValid {
		for _, s := range samples {
			if s.Confidence < d.confidenceMin || !zone.Contains(s.X, s.Y) {
				continue
			}
			pos := h.Apply(Vec2{s.X, s.Y})
			if prev, ok := d.last[s.ID]; ok {
				dist := math.Hypot(pos.X-prev.X, pos.Y-prev.Y)
				if dist > d.displacementMin {
					buf = append(buf, Trigger{ID: s.ID, Position: pos, Distance: dist})
				}
			}
			d.last[s.ID] = pos
			d.seen[s.ID] = true
		}
	}

	// Entities that did not end this tick Present lose their baseline.
	for id := range d.last {
		if !d.seen[id] {
			delete(d.last, id)
		}
	}
	return buf
}

// LastPosition returns the destination-space position recorded for id on the
// most recent tick, and whether the entity is currently Present.
func (d *MotionDetector) LastPosition(id string) (Vec2, bool) {
	pos, ok := d.last[id]
	return pos, ok
}

// Reset forgets all entity baselines, as if every entity had gone Absent.
func (d *MotionDetector) Reset() {
	clear(d.last)
}
