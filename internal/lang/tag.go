package lang

// Tag is a supported response language. The service deliberately
// collapses locale detection into three buckets: exact detection is
// unreliable on short, code-mixed chat messages, so everything outside
// clear English or Hindi lands in the mixed hinglish bucket.
type Tag string

const (
	English  Tag = "en"
	Hindi    Tag = "hi"
	Hinglish Tag = "hinglish"
)

// Fallback is the tag used when detection is inconclusive or fails.
const Fallback = Hinglish

// Valid reports whether t is one of the supported tags.
func (t Tag) Valid() bool {
	switch t {
	case English, Hindi, Hinglish:
		return true
	}
	return false
}
