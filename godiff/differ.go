// Package godiff describes artifact changes using the go-diff library.
package godiff

import (
	"strings"

	"github.com/fwojciec/maple"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ maple.Differ = (*Differ)(nil)

// Differ produces a line oriented diff. Removed lines are prefixed with "-",
// added lines with "+"; unchanged lines are omitted.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff returns the changed lines between old and new, or "" if they are equal.
func (d *Differ) Diff(old, new string) string {
	if old == new {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range splitLines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
