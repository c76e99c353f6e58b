package ripple

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DisplacementThreshold != 5 {
		t.Errorf("DisplacementThreshold = %v, want 5", cfg.DisplacementThreshold)
	}
	if cfg.ConfidenceThreshold != 0.5 {
		t.Errorf("ConfidenceThreshold = %v, want 0.5", cfg.ConfidenceThreshold)
	}
	if cfg.ParticlesPerEmission != 20 {
		t.Errorf("ParticlesPerEmission = %v, want 20", cfg.ParticlesPerEmission)
	}
	if cfg.DestWidth != 400 || cfg.DestHeight != 300 {
		t.Errorf("destination = %vx%v, want 400x300", cfg.DestWidth, cfg.DestHeight)
	}
	if cfg.Kind() != KindNormal {
		t.Errorf("Kind = %v, want normal", cfg.Kind())
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("displacementThreshold: 10\neffect: fire\n"))
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.DisplacementThreshold != 10 {
		t.Errorf("DisplacementThreshold = %v, want 10", cfg.DisplacementThreshold)
	}
	if cfg.Kind() != KindFire {
		t.Errorf("Kind = %v, want fire", cfg.Kind())
	}
	// Untouched fields keep their defaults.
	if cfg.ConfidenceThreshold != 0.5 || cfg.ParticlesPerEmission != 20 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty input should yield defaults, got %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed yaml", "displacementThreshold: [oops"},
		{"unknown effect", "effect: lasers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.in)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestConfigEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Effect = KindGiftBox.String()
	cfg.DestWidth = 800

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !strings.Contains(string(data), "effect: giftbox") {
		t.Errorf("encoded config missing effect: %s", data)
	}

	got, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestParseKind(t *testing.T) {
	for i := 0; i < KindCount; i++ {
		k := Kind(i)
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("confetti"); err == nil {
		t.Error("ParseKind should reject unknown names")
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(200).String(); got != "unknown" {
		t.Errorf("String = %q, want unknown", got)
	}
}

func TestConfigKindFallback(t *testing.T) {
	cfg := Config{Effect: "not-a-thing"}
	if cfg.Kind() != KindNormal {
		t.Errorf("Kind = %v, want normal fallback", cfg.Kind())
	}
}
