package prompt

import (
	"github.com/padhakulabs/padhaku/internal/lang"
)

// ForTag returns the instruction template for the given language tag.
// The mapping is total: unknown tags resolve to the hinglish template,
// the same bucket the classifier falls back to.
func ForTag(tag lang.Tag) string {
	switch tag {
	case lang.English:
		return englishTemplate
	case lang.Hindi:
		return hindiTemplate
	default:
		return hinglishTemplate
	}
}
