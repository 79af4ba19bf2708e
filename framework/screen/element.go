package screen

import (
	"fmt"
	"strings"
)

// Role is the accessible role of an element.
type Role string

const (
	RoleTextbox  Role = "textbox"
	RoleCombobox Role = "combobox"
	RoleCheckbox Role = "checkbox"
	RoleButton   Role = "button"
	RoleAlert    Role = "alert"
	RoleStatus   Role = "status"
)

// Element is one node of a component's accessible tree, as seen at a single moment.
//
// Label is the text of the element's associated label, if any. Name is the accessible name; for
// labelled controls it is normally the same as Label, and for buttons it is the visible text.
type Element struct {
	ID       string
	Role     Role
	Label    string
	Name     string
	Value    string
	Checked  bool
	Disabled bool
}

func (e Element) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q", e.Role, e.Name)
	if e.Value != "" {
		fmt.Fprintf(&b, " value=%q", e.Value)
	}
	if e.Checked {
		b.WriteString(" checked")
	}
	if e.Disabled {
		b.WriteString(" disabled")
	}
	return b.String()
}

// EventType identifies a simulated user interaction.
type EventType string

const (
	EventChange EventType = "change"
	EventFocus  EventType = "focus"
	EventBlur   EventType = "blur"
	EventClick  EventType = "click"
)

// Event is dispatched to a Document. Value is only meaningful for EventChange.
type Event struct {
	Type   EventType
	Target string
	Value  string
}

// Document is a rendered component that can be inspected and interacted with.
//
// Elements must return a consistent snapshot; the component may change between calls as
// asynchronous work completes. Dispatch applies one event synchronously, although the
// component may start asynchronous work in response.
type Document interface {
	Elements() []Element
	Dispatch(Event) error
}

// PrettyTree renders elements one per line, for error messages.
func PrettyTree(elements []Element) string {
	if len(elements) == 0 {
		return "  (empty)"
	}
	lines := make([]string, 0, len(elements))
	for _, e := range elements {
		lines = append(lines, "  "+e.String())
	}
	return strings.Join(lines, "\n")
}
