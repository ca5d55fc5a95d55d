package ui

import "github.com/a-h/templ"

// ChangeEvent is what a field receives when the user changes the native
// element: the element's id and name, and the string value it reports.
type ChangeEvent struct {
	ID    string
	Name  string
	Value string
}

// Interactive is a live field that can be re-rendered and fed change events.
type Interactive interface {
	templ.Component
	ID() string
	Name() string
	HandleChange(ev ChangeEvent)
}

var (
	_ Interactive = (*Input)(nil)
	_ Interactive = (*Select[struct{}])(nil)
)
