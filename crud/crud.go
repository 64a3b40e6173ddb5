// Package crud is the terminal interface for the CRUD task: a filterable
// list of names that can be created, updated and deleted.
package crud

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/internal/people"
	"github.com/ayoisaiah/sevenguis/internal/ui"
	"github.com/ayoisaiah/sevenguis/store"
)

// fields in focus order.
const (
	fieldFilter = iota
	fieldList
	fieldName
	fieldSurname
	numFields
)

// Manager is the bubbletea model for the CRUD task.
type Manager struct {
	open    store.Opener
	list    *people.List
	err     error
	styles  ui.Styles
	help    help.Model
	filter  textinput.Model
	name    textinput.Model
	surname textinput.Model
	focus   int
	cursor  int
}

// Load returns the saved list. A list that was never saved is seeded with
// the default entries, which are written back immediately.
func Load(open store.Opener) (*people.List, error) {
	var list *people.List

	err := store.With(open, func(db store.DB) error {
		var err error

		list, err = load(db)

		return err
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

func load(db store.DB) (*people.List, error) {
	records, saved, err := db.GetPeople()
	if err != nil {
		return nil, err
	}

	if !saved {
		list := people.NewList(people.Seed())

		return list, replace(db, list)
	}

	items := make([]people.Person, 0, len(records))

	for _, r := range records {
		p, err := r.ToDomain()
		if err != nil {
			return nil, err
		}

		items = append(items, p)
	}

	return people.NewList(items), nil
}

// Save persists the list in its current order.
func Save(open store.Opener, list *people.List) error {
	return store.With(open, func(db store.DB) error {
		return replace(db, list)
	})
}

func replace(db store.DB, list *people.List) error {
	items := list.Items()
	records := make([]*models.Person, len(items))

	for i, p := range items {
		records[i] = models.NewPerson(p, i)
	}

	return db.ReplacePeople(records)
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Width = 24

	return in
}

// New loads the list and returns the model. Connections from open are held
// only while the list is loaded or saved.
func New(cfg *config.Config, open store.Opener) (*Manager, error) {
	list, err := Load(open)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		open: open,
		list: list,
		styles: ui.NewStyles(
			cfg.Display.AccentColor,
			cfg.Display.InvalidColor,
			cfg.Display.DarkTheme,
		),
		help:    help.New(),
		filter:  newInput("Filter prefix"),
		name:    newInput("Name"),
		surname: newInput("Surname"),
	}

	m.filter.Focus()

	return m, nil
}

// Visible returns the entries that match the filter.
func (m *Manager) Visible() []people.Person {
	return m.list.Filter(m.filter.Value())
}

// List exposes the underlying list.
func (m *Manager) List() *people.List {
	return m.list
}

func (m *Manager) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Manager) setFocus(field int) tea.Cmd {
	m.focus = field

	m.filter.Blur()
	m.name.Blur()
	m.surname.Blur()

	switch field {
	case fieldFilter:
		return m.filter.Focus()
	case fieldName:
		return m.name.Focus()
	case fieldSurname:
		return m.surname.Focus()
	}

	return nil
}

// selectAt moves the cursor within the visible entries and selects the entry
// under it. The name fields are filled from the selection.
func (m *Manager) selectAt(i int) {
	visible := m.Visible()
	if len(visible) == 0 {
		m.cursor = 0
		m.list.ClearSelection()

		return
	}

	m.cursor = min(max(i, 0), len(visible)-1)

	p := visible[m.cursor]

	// the id always comes from the list
	_ = m.list.Select(p.ID)

	m.name.SetValue(p.Name)
	m.surname.SetValue(p.Surname)
}

// step moves the selection by delta. The first step without a selection
// selects the entry under the cursor.
func (m *Manager) step(delta int) {
	if _, ok := m.list.Selected(); !ok {
		delta = 0
	}

	m.selectAt(m.cursor + delta)
}

// refilter keeps the selection only if it is still visible.
func (m *Manager) refilter() {
	m.cursor = 0

	selected, ok := m.list.Selected()
	if !ok {
		return
	}

	for i, p := range m.Visible() {
		if p.ID == selected.ID {
			m.cursor = i
			return
		}
	}

	m.list.ClearSelection()
}

// persist saves the list. When the save fails the list goes back to prev so
// that what is shown always matches what is stored.
func (m *Manager) persist(action string, p people.Person, prev *people.List) {
	if err := Save(m.open, m.list); err != nil {
		m.list = prev
		m.err = err
		m.refilter()

		return
	}

	m.err = nil

	slog.Info(
		"list updated",
		slog.String("action", action),
		slog.String("id", p.ID.String()),
	)
}

func (m *Manager) create() {
	prev := m.list.Clone()

	p := m.list.Create(m.name.Value(), m.surname.Value())
	m.persist("create", p, prev)
}

func (m *Manager) update() {
	prev := m.list.Clone()

	p, err := m.list.Update(m.name.Value(), m.surname.Value())
	if err != nil {
		m.err = err
		return
	}

	m.persist("update", p, prev)
}

func (m *Manager) delete() {
	prev := m.list.Clone()

	p, err := m.list.Delete()
	if err != nil {
		m.err = err
		return
	}

	m.cursor = 0
	m.persist("delete", p, prev)
}
