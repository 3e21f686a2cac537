package editor

import "github.com/rizrmd/plume/session"

// DefaultTabWidth is the tab stop width used when Config leaves it zero.
const DefaultTabWidth = 4

// Config configures the editor Model. The zero value is usable: New fills
// in a scratch session, the default key maps, and the default tab width.
type Config struct {
	// Session to edit. New creates an empty scratch session when nil.
	Session *session.Session

	// Rendering options.
	ShowLineNums bool
	TabWidth     int
	Style        Style

	KeyMap   KeyMap
	FindKeys FindKeyMap

	// Clipboard backs copy, cut, and paste. Nil disables them.
	Clipboard session.Clipboard
}
