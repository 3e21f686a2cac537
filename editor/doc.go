// Package editor provides a Bubble Tea text editor component backed by the
// session package.
//
// The widget renders one session into a bubbles viewport: line-number
// gutter, selection, find matches, cursor cell, a scrollbar column, and a
// find/replace bar on the bottom rows while active. Input covers the usual
// editing keys plus mouse selection, double-click word selection, wheel
// scrolling with acceleration, and scrollbar dragging. Markdown sessions
// can flip into a read-only word-wrapped preview.
//
// Coordinates follow the buffer package: 0-based (line, col) counted in
// runes. Screen geometry is in terminal cells; internal/cell maps between
// the two.
package editor
