package session

import "sync"

// Clipboard is the copy/paste surface handed to sessions. The system
// clipboard bridge in cmd/plume and the in-process fallback both satisfy
// it. Implementations must be safe for concurrent use.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemClipboard is an in-process Clipboard: one string behind a mutex.
// The zero value is ready to use.
type MemClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemClipboard) WriteText(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = s
	return nil
}
