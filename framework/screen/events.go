package screen

// Change sets the value of an input, as if the user had typed it.
func (s *Screen) Change(e Element, value string) error {
	s.logger.Printf("change %s -> %q", e, value)
	return s.fire(Event{Type: EventChange, Target: e.ID, Value: value})
}

func (s *Screen) Focus(e Element) error {
	s.logger.Printf("focus %s", e)
	return s.fire(Event{Type: EventFocus, Target: e.ID})
}

func (s *Screen) Blur(e Element) error {
	s.logger.Printf("blur %s", e)
	return s.fire(Event{Type: EventBlur, Target: e.ID})
}

func (s *Screen) Click(e Element) error {
	s.logger.Printf("click %s", e)
	if e.Disabled {
		return &DisabledError{Element: e}
	}
	return s.fire(Event{Type: EventClick, Target: e.ID})
}

func (s *Screen) fire(ev Event) error {
	return s.doc.Dispatch(ev)
}
