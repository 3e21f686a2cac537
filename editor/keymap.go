package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End, ShiftHome, ShiftEnd            key.Binding
	PageUp, PageDown                          key.Binding

	Backspace, Delete               key.Binding
	DeleteWordLeft, DeleteWordRight key.Binding
	Enter                           key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	SelectAll        key.Binding

	Find, Replace      key.Binding
	FindNext, FindPrev key.Binding

	Preview, Wrap key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("shift+alt+left", "shift+ctrl+left"), key.WithHelp("shift+alt+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("shift+alt+right", "shift+ctrl+right"), key.WithHelp("shift+alt+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Backspace:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:          key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		DeleteWordLeft:  key.NewBinding(key.WithKeys("alt+backspace"), key.WithHelp("alt+backspace", "delete word left")),
		DeleteWordRight: key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+d", "delete word right")),
		Enter:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Find:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Replace:  key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "find & replace")),
		FindNext: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "next match")),
		FindPrev: key.NewBinding(key.WithKeys("shift+f3"), key.WithHelp("shift+f3", "previous match")),

		Preview: key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "markdown preview")),
		Wrap:    key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "word wrap")),
	}
}

// FindKeyMap defines the key bindings active while the find bar is open.
// Unbound rune keys edit the focused query field.
type FindKeyMap struct {
	Close, Confirm key.Binding
	Next, Prev     key.Binding
	SwitchField    key.Binding

	ToggleCase, ToggleWord, ToggleReplace key.Binding

	Replace, ReplaceAll key.Binding

	Backspace key.Binding
}

func DefaultFindKeyMap() FindKeyMap {
	return FindKeyMap{
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next / replace")),
		Next:        key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "next match")),
		Prev:        key.NewBinding(key.WithKeys("shift+f3"), key.WithHelp("shift+f3", "previous match")),
		SwitchField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),

		ToggleCase:    key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "match case")),
		ToggleWord:    key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "whole word")),
		ToggleReplace: key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "replace mode")),

		Replace:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replace current")),
		ReplaceAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "replace all")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
	}
}
