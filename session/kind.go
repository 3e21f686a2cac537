package session

// Kind identifies what a tab hosts.
type Kind uint8

const (
	KindEditor Kind = iota
	KindTerminal
)

// Tab is one entry in a Manager. Each kind carries only its own state:
// a *Session for editors, a TerminalTab handle for terminals, so a
// terminal tab never drags editor fields around.
type Tab interface {
	Kind() Kind
	Title() string
}

// TerminalTab is an opaque handle to a terminal the host runs; the
// Manager only orders and titles it.
type TerminalTab struct {
	ID   int
	Name string
}

func (t TerminalTab) Kind() Kind { return KindTerminal }

func (t TerminalTab) Title() string { return t.Name }
