package ripple

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's tunable constants. Zero values in a parsed file
// fall back to the defaults; construct via DefaultConfig or ParseConfig.
type Config struct {
	// DisplacementThreshold is the destination-space distance a tracked
	// point must move between consecutive ticks, strictly exceeded, to
	// trigger an emission.
	DisplacementThreshold float64 `yaml:"displacementThreshold"`
	// ConfidenceThreshold is the minimum detection confidence; samples
	// below it count as absent.
	ConfidenceThreshold float64 `yaml:"confidenceThreshold"`
	// ParticlesPerEmission is the number of particles spawned per trigger.
	ParticlesPerEmission int `yaml:"particlesPerEmission"`
	// MaxParticles caps the live particle count; 0 means unbounded.
	MaxParticles int `yaml:"maxParticles"`
	// DestWidth and DestHeight are the destination rectangle dimensions
	// the zone quad is mapped onto.
	DestWidth  float64 `yaml:"destWidth"`
	DestHeight float64 `yaml:"destHeight"`
	// Effect is the active particle effect by name (see Kind.String).
	Effect string `yaml:"effect"`
}

// DefaultConfig returns the reference constants: threshold 5 destination
// units, confidence 0.5, 20 particles per emission, a 400×300 destination.
func DefaultConfig() Config {
	return Config{
		DisplacementThreshold: 5,
		ConfidenceThreshold:   0.5,
		ParticlesPerEmission:  20,
		MaxParticles:          2000,
		DestWidth:             400,
		DestHeight:            300,
		Effect:                KindNormal.String(),
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so a file only needs the
// fields it overrides.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := ParseKind(cfg.Effect); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Encode serializes the config as YAML.
func (c Config) Encode() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// DestRect returns the destination rectangle at origin.
func (c Config) DestRect() Rect {
	return Rect{Width: c.DestWidth, Height: c.DestHeight}
}

// Kind resolves the configured effect name. Falls back to KindNormal for an
// unknown name; use ParseKind to detect that case.
func (c Config) Kind() Kind {
	k, err := ParseKind(c.Effect)
	if err != nil {
		return KindNormal
	}
	return k
}

// ParseKind resolves an effect name (as produced by Kind.String) to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindNormal, fmt.Errorf("unknown effect %q", name)
}
