// Package session implements the per-document editing session: buffer,
// cursor, viewport offset, modified flag, bounded undo and redo stacks,
// and find/replace state. It also hosts the tab Manager that owns the
// open sessions, and the Clipboard shared between them.
//
// Every history-worthy mutation follows the same cycle: push one undo
// snapshot, apply the edit, and let the host reconcile the viewport with
// UpdateViewport. Snapshots clone the rope, which shares structure, so
// pushing one is O(1).
package session
