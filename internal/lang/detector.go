package lang

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detector identifies the locale of a text. Implementations return an
// ISO 639 code ("en", "hi", "eng", "hin", ...) or an error when the
// input gives them nothing to work with.
type Detector interface {
	Detect(text string) (string, error)
}

// TrigramDetector is the default Detector, backed by whatlanggo's
// trigram language identification. Detection is whitelisted to the
// languages the service can answer in; everything else is reported as
// unreliable and left to the classifier's fallback.
type TrigramDetector struct {
	options whatlanggo.Options
}

// NewTrigramDetector returns a ready-to-use TrigramDetector.
func NewTrigramDetector() *TrigramDetector {
	return &TrigramDetector{
		options: whatlanggo.Options{
			Whitelist: map[whatlanggo.Lang]bool{
				whatlanggo.Eng: true,
				whatlanggo.Hin: true,
			},
		},
	}
}

// Detect returns the ISO 639-3 code of the dominant language in text.
func (d *TrigramDetector) Detect(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty text")
	}

	info := whatlanggo.DetectWithOptions(text, d.options)
	if info.Lang == -1 {
		return "", fmt.Errorf("no language detected")
	}
	if !info.IsReliable() {
		return "", fmt.Errorf("detection unreliable (confidence %.2f)", info.Confidence)
	}

	return info.Lang.Iso6393(), nil
}
