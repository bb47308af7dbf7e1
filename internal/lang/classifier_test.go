package lang

import (
	"errors"
	"testing"

	"github.com/padhakulabs/padhaku/internal/logger"
)

// stubDetector returns a fixed result.
type stubDetector struct {
	iso string
	err error
}

func (s stubDetector) Detect(string) (string, error) {
	return s.iso, s.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		err  error
		want Tag
	}{
		{"english iso1", "en", nil, English},
		{"english iso3", "eng", nil, English},
		{"hindi iso1", "hi", nil, Hindi},
		{"hindi iso3", "hin", nil, Hindi},
		{"unsupported language", "fra", nil, Hinglish},
		{"garbage code", "xx", nil, Hinglish},
		{"detector failure", "", errors.New("boom"), Hinglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(stubDetector{iso: tt.iso, err: tt.err}, logger.NewNop())
			got := c.Classify("whatever")
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("Classify() returned invalid tag %q", got)
			}
		})
	}
}

func TestTrigramDetector_Empty(t *testing.T) {
	d := NewTrigramDetector()
	if _, err := d.Detect("   "); err == nil {
		t.Error("expected error for blank input")
	}
}

func TestTrigramDetector_Devanagari(t *testing.T) {
	d := NewTrigramDetector()
	iso, err := d.Detect("आप कैसे हैं? मैं पढ़ाई के बारे में जानना चाहता हूँ और परीक्षा की तैयारी कर रहा हूँ।")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iso != "hin" {
		t.Errorf("iso = %q, want hin", iso)
	}
}
