package lang

import "github.com/padhakulabs/padhaku/internal/logger"

// isoToTag maps detector output to a supported tag. Anything absent
// here falls through to the hinglish bucket.
var isoToTag = map[string]Tag{
	"en":  English,
	"eng": English,
	"hi":  Hindi,
	"hin": Hindi,
}

// Classifier maps raw chat text to a supported language Tag. It never
// fails: detector errors, unsupported languages, and empty input all
// resolve to the fallback tag.
type Classifier struct {
	detector Detector
	log      *logger.Logger
}

// NewClassifier creates a Classifier over the given Detector.
func NewClassifier(d Detector, log *logger.Logger) *Classifier {
	return &Classifier{detector: d, log: log}
}

// Classify resolves text to exactly one supported Tag.
func (c *Classifier) Classify(text string) Tag {
	iso, err := c.detector.Detect(text)
	if err != nil {
		c.log.Debug("language detection fell back", "error", err.Error())
		return Fallback
	}

	if tag, ok := isoToTag[iso]; ok {
		return tag
	}
	return Fallback
}
