// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var _ maple.Clipboard = (*System)(nil)

// System implements maple.Clipboard using the platform clipboard tool
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboard.Unsupported {
		return maple.ErrClipboardUnsupported
	}
	return clipboard.WriteAll(content)
}
