// Command plume is a terminal text editor: tabbed files, mouse support,
// find and replace, and a markdown preview, built on the editor widget.
//
// Usage:
//
//	plume [file ...]
//
// Files that do not exist yet open as empty buffers and are created on
// the first save. With no arguments plume opens an untitled scratch
// buffer.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rizrmd/plume/editor"
	"github.com/rizrmd/plume/internal/cell"
	"github.com/rizrmd/plume/session"
)

// chrome is the number of rows drawn around the editor: the tab strip
// above it and the status bar below it.
const chrome = 2

// Pending confirmations for destructive shortcuts; pressing the same
// shortcut again goes through, anything else cancels.
const (
	confirmClose = "close"
	confirmQuit  = "quit"
)

type appKeyMap struct {
	Save     key.Binding
	NewTab   key.Binding
	CloseTab key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Preview  key.Binding
	Quit     key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Save:     key.NewBinding(key.WithKeys("ctrl+s")),
		NewTab:   key.NewBinding(key.WithKeys("ctrl+n")),
		CloseTab: key.NewBinding(key.WithKeys("ctrl+w")),
		NextTab:  key.NewBinding(key.WithKeys("ctrl+pgdown")),
		PrevTab:  key.NewBinding(key.WithKeys("ctrl+pgup")),
		Preview:  key.NewBinding(key.WithKeys("ctrl+p")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q")),
	}
}

type appStyles struct {
	tab       lipgloss.Style
	tabActive lipgloss.Style
	tabFill   lipgloss.Style
	status    lipgloss.Style
}

func defaultAppStyles() appStyles {
	return appStyles{
		tab:       lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("245")),
		tabActive: lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231")).Bold(true),
		tabFill:   lipgloss.NewStyle().Background(lipgloss.Color("233")),
		status:    lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250")),
	}
}

// app is the top-level program model: the tab manager, the editor widget
// showing the active tab, and one row of chrome on each side.
type app struct {
	tabs   *session.Manager
	editor editor.Model
	keys   appKeyMap
	styles appStyles

	width  int
	height int

	status  string
	confirm string
}

func newApp(cfg fileConfig, paths []string) (app, error) {
	tabs := session.NewManager(session.Options{HistoryLimit: cfg.HistoryLimit})
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return app{}, fmt.Errorf("open %s: %w", path, err)
		}
		tabs.OpenFile(path, string(data))
	}
	if tabs.Len() == 0 {
		tabs.NewScratch()
	}
	tabs.SetActive(0)

	sess, _ := tabs.ActiveSession()
	ed := editor.New(editor.Config{
		Session:      sess,
		ShowLineNums: cfg.lineNumbers(),
		TabWidth:     cfg.TabWidth,
		Style:        editor.DefaultStyle(),
		Clipboard:    newClipboard(),
	})
	return app{
		tabs:   tabs,
		editor: ed,
		keys:   defaultAppKeyMap(),
		styles: defaultAppStyles(),
	}, nil
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.editor = a.editor.SetSize(msg.Width, msg.Height-chrome)
		return a, nil
	case tea.KeyMsg:
		return a.updateKey(msg)
	case tea.MouseMsg:
		return a.updateMouse(msg)
	}
	return a, nil
}

func (a app) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	if !key.Matches(msg, k.CloseTab) && !key.Matches(msg, k.Quit) {
		a.confirm = ""
	}
	a.status = ""

	switch {
	case key.Matches(msg, k.Quit):
		if a.anyModified() && a.confirm != confirmQuit {
			a.confirm = confirmQuit
			a.status = "Unsaved changes, press ctrl+q again to quit"
			return a, nil
		}
		return a, tea.Quit
	case key.Matches(msg, k.Save):
		a.save()
	case key.Matches(msg, k.NewTab):
		a.tabs.NewScratch()
		a.syncSession()
	case key.Matches(msg, k.CloseTab):
		a.closeActive()
	case key.Matches(msg, k.NextTab):
		a.tabs.Next()
		a.syncSession()
	case key.Matches(msg, k.PrevTab):
		a.tabs.Prev()
		a.syncSession()
	case key.Matches(msg, k.Preview):
		a.editor = a.editor.TogglePreview()
	default:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		a.status = a.editor.Status()
		return a, cmd
	}
	return a, nil
}

// updateMouse routes row 0 to the tab strip and shifts everything else
// into the editor's coordinates.
func (a app) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y == 0 {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := a.tabAt(msg.X); i >= 0 {
				a.tabs.SetActive(i)
				a.syncSession()
			}
		}
		return a, nil
	}
	msg.Y--
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// syncSession points the editor at the active tab after any tab change.
func (a *app) syncSession() {
	if s, ok := a.tabs.ActiveSession(); ok {
		a.editor = a.editor.SetSession(s)
	}
}

func (a *app) save() {
	s, ok := a.tabs.ActiveSession()
	if !ok {
		return
	}
	if s.Path() == "" {
		a.status = s.Name() + " has no file path"
		return
	}
	if err := os.WriteFile(s.Path(), []byte(s.Text()), 0o644); err != nil {
		a.status = "Save failed: " + err.Error()
		return
	}
	s.MarkSaved()
	a.status = "Saved " + s.Name()
}

func (a *app) closeActive() {
	s, ok := a.tabs.ActiveSession()
	if ok && s.Modified() && a.confirm != confirmClose {
		a.confirm = confirmClose
		a.status = s.Name() + " has unsaved changes, press ctrl+w again to close"
		return
	}
	a.confirm = ""
	if !a.tabs.Close(a.tabs.ActiveIndex()) {
		a.status = "Cannot close the last tab"
		return
	}
	a.syncSession()
}

func (a app) anyModified() bool {
	for i := 0; i < a.tabs.Len(); i++ {
		t, _ := a.tabs.At(i)
		if s, ok := t.(*session.Session); ok && s.Modified() {
			return true
		}
	}
	return false
}

// tabAt maps an x coordinate on the tab strip to a tab index, or -1 on
// the filler past the last tab.
func (a app) tabAt(x int) int {
	pos := 0
	for i, title := range a.tabs.Titles() {
		pos += cell.Width(" " + title + " ")
		if x < pos {
			return i
		}
	}
	return -1
}

func (a app) renderTabStrip() string {
	var b strings.Builder
	w := 0
	for i, title := range a.tabs.Titles() {
		seg := " " + title + " "
		if rest := a.width - w; cell.Width(seg) > rest {
			seg = cell.Truncate(seg, rest)
		}
		if seg == "" {
			break
		}
		st := a.styles.tab
		if i == a.tabs.ActiveIndex() {
			st = a.styles.tabActive
		}
		b.WriteString(st.Render(seg))
		w += cell.Width(seg)
	}
	if w < a.width {
		b.WriteString(a.styles.tabFill.Render(strings.Repeat(" ", a.width-w)))
	}
	return b.String()
}

func (a app) renderStatusBar() string {
	left := a.status
	if left == "" {
		left = "ctrl+s save  ctrl+n new  ctrl+w close  ctrl+pgup/pgdn tabs  ctrl+q quit"
	}
	right := ""
	if s, ok := a.tabs.ActiveSession(); ok {
		p := s.CursorPos()
		right = fmt.Sprintf("Ln %d, Col %d", p.Line+1, p.Col+1)
	}

	gap := a.width - cell.Width(left) - cell.Width(right)
	if gap < 1 {
		keep := a.width - cell.Width(right) - 1
		if keep < 0 {
			keep = 0
		}
		left = cell.Truncate(left, keep)
		gap = a.width - cell.Width(left) - cell.Width(right)
		if gap < 0 {
			gap = 0
		}
	}
	return a.styles.status.Render(left + strings.Repeat(" ", gap) + right)
}

func (a app) View() string {
	if a.width <= 0 || a.height <= chrome {
		return ""
	}
	return a.renderTabStrip() + "\n" + a.editor.View() + "\n" + a.renderStatusBar()
}

func main() {
	if os.Getenv("PLUME_DEBUG") != "" {
		f, err := tea.LogToFile("plume-debug.log", "plume")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	a, err := newApp(cfg, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
