// Package people maintains the list of names managed by the CRUD task
package people

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/ayoisaiah/sevenguis/internal/apperr"
)

var (
	ErrNoSelection = &apperr.Error{
		Message: "no entry is selected",
	}

	errUnknownEntry = &apperr.Error{
		Message: "no entry with id %s",
	}
)

// Person is a single entry in the list.
type Person struct {
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	ID      uuid.UUID `json:"id"`
}

// Label renders the entry as "Surname, Name".
func (p Person) Label() string {
	return p.Surname + ", " + p.Name
}

// List is an ordered collection of people with an optional selection.
type List struct {
	items    []Person
	selected uuid.UUID
}

// Seed returns the entries a fresh list starts with.
func Seed() []Person {
	return []Person{
		{ID: uuid.New(), Name: "Hans", Surname: "Emil"},
		{ID: uuid.New(), Name: "Max", Surname: "Mustermann"},
		{ID: uuid.New(), Name: "Roman", Surname: "Tisch"},
	}
}

// NewList returns a list holding a copy of items in the given order.
func NewList(items []Person) *List {
	return &List{
		items: slices.Clone(items),
	}
}

// Clone returns an independent copy of the list, selection included.
func (l *List) Clone() *List {
	return &List{
		items:    slices.Clone(l.items),
		selected: l.selected,
	}
}

// Items returns every entry in insertion order.
func (l *List) Items() []Person {
	return slices.Clone(l.items)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.items)
}

// Filter returns the entries whose label contains prefix, ignoring case. An
// empty prefix matches everything.
func (l *List) Filter(prefix string) []Person {
	prefix = strings.ToLower(prefix)

	var matches []Person

	for _, p := range l.items {
		if strings.Contains(strings.ToLower(p.Label()), prefix) {
			matches = append(matches, p)
		}
	}

	return matches
}

func (l *List) index(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(p Person) bool {
		return p.ID == id
	})
}

// Select marks the entry with the given id as selected.
func (l *List) Select(id uuid.UUID) error {
	if l.index(id) == -1 {
		return errUnknownEntry.Fmt(id)
	}

	l.selected = id

	return nil
}

// ClearSelection removes the current selection, if any.
func (l *List) ClearSelection() {
	l.selected = uuid.Nil
}

// Selected returns the selected entry.
func (l *List) Selected() (Person, bool) {
	i := l.index(l.selected)
	if l.selected == uuid.Nil || i == -1 {
		return Person{}, false
	}

	return l.items[i], true
}

// Create appends a new entry and returns it.
func (l *List) Create(name, surname string) Person {
	p := Person{
		ID:      uuid.New(),
		Name:    name,
		Surname: surname,
	}

	l.items = append(l.items, p)

	return p
}

// Update replaces the name of the selected entry.
func (l *List) Update(name, surname string) (Person, error) {
	i := l.index(l.selected)
	if l.selected == uuid.Nil || i == -1 {
		return Person{}, ErrNoSelection
	}

	l.items[i].Name = name
	l.items[i].Surname = surname

	return l.items[i], nil
}

// Delete removes the selected entry and clears the selection.
func (l *List) Delete() (Person, error) {
	i := l.index(l.selected)
	if l.selected == uuid.Nil || i == -1 {
		return Person{}, ErrNoSelection
	}

	p := l.items[i]

	l.items = slices.Delete(l.items, i, i+1)
	l.selected = uuid.Nil

	return p, nil
}
