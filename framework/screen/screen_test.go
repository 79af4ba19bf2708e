package screen

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocument struct {
	elements []Element
	events   []Event
	lock     sync.Mutex
}

func (d *fakeDocument) Elements() []Element {
	d.lock.Lock()
	defer d.lock.Unlock()
	return append([]Element(nil), d.elements...)
}

func (d *fakeDocument) Dispatch(ev Event) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.events = append(d.events, ev)
	return nil
}

func (d *fakeDocument) add(e Element) {
	d.lock.Lock()
	d.elements = append(d.elements, e)
	d.lock.Unlock()
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{elements: []Element{
		{ID: "firstName", Role: RoleTextbox, Label: "Förnamn", Name: "Förnamn"},
		{ID: "phone", Role: RoleTextbox, Label: "Telefon", Name: "Telefon"},
		{ID: "sms", Role: RoleCheckbox, Label: "SMS", Name: "SMS"},
		{ID: "submit", Role: RoleButton, Name: "Skicka  begäran"},
	}}
}

func fastOptions() Options {
	return Options{Timeout: 200 * time.Millisecond, Interval: 5 * time.Millisecond}
}

func TestGetByLabelText(t *testing.T) {
	s := New(newFakeDocument(), fastOptions())

	e, err := s.GetByLabelText("Förnamn")
	require.NoError(t, err)
	assert.Equal(t, "firstName", e.ID)

	_, err = s.GetByLabelText("Efternamn")
	var locatorErr *LocatorError
	require.True(t, errors.As(err, &locatorErr))
	assert.Equal(t, 0, locatorErr.Matches)
	assert.Contains(t, err.Error(), "with the label text of: Efternamn")
	assert.Contains(t, err.Error(), `textbox "Förnamn"`)
}

func TestGetByLabelTextIsExact(t *testing.T) {
	s := New(newFakeDocument(), fastOptions())
	_, err := s.GetByLabelText("Telefo")
	assert.Error(t, err)
}

func TestGetByRoleWithPattern(t *testing.T) {
	s := New(newFakeDocument(), fastOptions())

	e, err := s.GetByRole(RoleButton, Pattern("skicka begäran"))
	require.NoError(t, err)
	assert.Equal(t, "submit", e.ID)

	e, err = s.GetByRole(RoleCheckbox, Exact("SMS"))
	require.NoError(t, err)
	assert.Equal(t, "sms", e.ID)
}

func TestGetByRoleFailsOnMultipleMatches(t *testing.T) {
	doc := newFakeDocument()
	doc.add(Element{ID: "other", Role: RoleButton, Name: "Skicka begäran igen"})
	s := New(doc, fastOptions())

	_, err := s.GetByRole(RoleButton, Pattern("skicka begäran"))
	var locatorErr *LocatorError
	require.True(t, errors.As(err, &locatorErr))
	assert.Equal(t, 2, locatorErr.Matches)
}

func TestFindByRoleWaitsForAsyncElement(t *testing.T) {
	doc := newFakeDocument()
	s := New(doc, fastOptions())

	go func() {
		time.Sleep(30 * time.Millisecond)
		doc.add(Element{ID: "suggestion-0", Role: RoleButton, Name: "Stockholm Sverige"})
	}()

	e, err := s.FindByRole(RoleButton, Pattern("stockholm sverige"))
	require.NoError(t, err)
	assert.Equal(t, "suggestion-0", e.ID)
}

func TestFindByRoleTimesOut(t *testing.T) {
	s := New(newFakeDocument(), fastOptions())

	_, err := s.FindByRole(RoleButton, Pattern("volvo studio"))
	var timeoutErr *TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, 200*time.Millisecond, timeoutErr.Timeout)
	var locatorErr *LocatorError
	assert.True(t, errors.As(err, &locatorErr), "timeout should wrap the last locator error")
}

func TestEventsAreDispatched(t *testing.T) {
	doc := newFakeDocument()
	s := New(doc, fastOptions())

	e, err := s.GetByLabelText("Förnamn")
	require.NoError(t, err)
	require.NoError(t, s.Focus(e))
	require.NoError(t, s.Change(e, "Johan"))
	require.NoError(t, s.Blur(e))

	assert.Equal(t, []Event{
		{Type: EventFocus, Target: "firstName"},
		{Type: EventChange, Target: "firstName", Value: "Johan"},
		{Type: EventBlur, Target: "firstName"},
	}, doc.events)
}

func TestClickOnDisabledElementFails(t *testing.T) {
	doc := newFakeDocument()
	s := New(doc, fastOptions())

	err := s.Click(Element{ID: "submit", Role: RoleButton, Name: "Skicka", Disabled: true})
	var disabledErr *DisabledError
	assert.True(t, errors.As(err, &disabledErr))
	assert.Empty(t, doc.events)
}
