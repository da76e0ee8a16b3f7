// Package chroma highlights preview samples using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var _ maple.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma lexers and a chroma style
// built from the variant being previewed.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// TokenizeLines tokenizes source with full context, then splits tokens by
// line so multi-line constructs keep their style. Returns nil if the language
// is not supported or the variant cannot be turned into a style, and an
// empty slice for empty source.
func (t *Tokenizer) TokenizeLines(v maple.ThemeVariant, language, source string) [][]maple.Span {
	if source == "" {
		return [][]maple.Span{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	style, err := NewStyle(v)
	if err != nil {
		return nil
	}
	styleOf := StyleFromChroma(style)

	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var lines [][]maple.Span
	var line []maple.Span
	for tok := iterator(); tok != chromalib.EOF; tok = iterator() {
		rule := styleOf(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, line)
				line = nil
			}
			if part != "" {
				line = append(line, maple.Span{Text: part, Style: rule})
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}
