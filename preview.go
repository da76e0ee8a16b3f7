package maple

// Span is a run of highlighted source text.
type Span struct {
	Text  string
	Style HighlightRule
}

// Tokenizer splits source code into lines of tokens styled with the syntax
// rules of a theme variant.
type Tokenizer interface {
	// TokenizeLines returns nil if the language is not supported.
	TokenizeLines(v ThemeVariant, language, source string) [][]Span
}

// LanguageDetector detects programming languages from file paths.
type LanguageDetector interface {
	// DetectFromPath returns "" if the language cannot be determined.
	DetectFromPath(path string) string
}

// VariantRenderer renders a terminal sample of a compiled theme variant.
type VariantRenderer interface {
	Render(v ThemeVariant, width int) string
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
