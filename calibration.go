package ripple

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage keys for the calibration object.
const (
	calibrationObject = "calibration"
	zoneProperty      = "zone"
)

// calibrationData is the YAML payload written to storage.
type calibrationData struct {
	Corners [4]struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"corners"`
}

// CalibrationStore persists the zone quadrilateral across sessions using
// gdata's cross-platform storage. A nil manager degrades gracefully: loads
// report no saved calibration and saves are dropped without error, so callers
// need no special path for environments without writable storage.
type CalibrationStore struct {
	manager *gdata.Manager
}

// NewCalibrationStore wraps a gdata manager (may be nil for the degraded,
// memory-only mode).
func NewCalibrationStore(manager *gdata.Manager) *CalibrationStore {
	return &CalibrationStore{manager: manager}
}

// Load returns the saved zone quad and true, or a zero quad and false when
// nothing has been saved. A corrupt payload counts as nothing saved and is
// reported as an error alongside.
func (s *CalibrationStore) Load() (Quad, bool, error) {
	if s.manager == nil {
		return Quad{}, false, nil
	}
	if !s.manager.ObjectPropExists(calibrationObject, zoneProperty) {
		return Quad{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(calibrationObject, zoneProperty)
	if err != nil {
		return Quad{}, false, fmt.Errorf("load calibration: %w", err)
	}

	var payload calibrationData
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return Quad{}, false, fmt.Errorf("load calibration: %w", err)
	}

	var q Quad
	for i, c := range payload.Corners {
		q[i] = Vec2{c.X, c.Y}
	}
	return q, true, nil
}

// Save writes the zone quad to storage. A nil manager drops the save.
func (s *CalibrationStore) Save(q Quad) error {
	if s.manager == nil {
		return nil
	}

	var payload calibrationData
	for i, c := range q {
		payload.Corners[i].X = c.X
		payload.Corners[i].Y = c.Y
	}
	data, err := yaml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("save calibration: %w", err)
	}
	if err := s.manager.SaveObjectProp(calibrationObject, zoneProperty, data); err != nil {
		return fmt.Errorf("save calibration: %w", err)
	}
	return nil
}

// Restore loads the saved calibration into the engine's editor. Missing or
// corrupt calibrations leave the editor untouched; corruption is logged, not
// fatal.
func (s *CalibrationStore) Restore(engine *Engine) {
	q, ok, err := s.Load()
	if err != nil {
		log.Printf("[ripple] calibration load failed: %v (keeping current zone)", err)
		return
	}
	if ok {
		engine.Editor().ResetTo(q, 0)
	}
}
