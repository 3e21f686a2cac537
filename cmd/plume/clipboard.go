package main

import (
	"github.com/atotto/clipboard"

	"github.com/rizrmd/plume/session"
)

// osClipboard bridges the system clipboard into copy, cut, and paste.
type osClipboard struct{}

func (osClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (osClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

// newClipboard returns the system clipboard, or an in-memory one on
// platforms without clipboard support so copy and paste keep working
// inside the editor.
func newClipboard() session.Clipboard {
	if clipboard.Unsupported {
		return &session.MemClipboard{}
	}
	return osClipboard{}
}
