package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var _ maple.LanguageDetector = (*Detector)(nil)

// Detector detects the language of preview sample files using chroma.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name for path, or "" if the language
// cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
