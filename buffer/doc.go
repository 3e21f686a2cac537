// Package buffer implements the pure, rune-accurate document model: a rope
// holding the text and a Cursor moving over it with an optional selection.
//
// Coordinates are 0-based (Line, Col) in runes.
// Ranges are half-open selections in document coordinates: [Start, End).
// Out-of-range arguments clamp or no-op; nothing here returns an error.
package buffer
