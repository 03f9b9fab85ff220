package ui

// View identifies one of the app's screens.
type View string

const (
	ViewHome View = "home"
	ViewNew  View = "new"
	ViewList View = "list"
)

// Switcher tracks which single view is visible. Showing any view hides the
// rest; an unknown id hides everything without erroring.
type Switcher struct {
	known  map[View]bool
	active View
	shown  bool
}

func NewSwitcher(views ...View) *Switcher {
	known := make(map[View]bool, len(views))
	for _, v := range views {
		known[v] = true
	}
	return &Switcher{known: known}
}

// Show makes v the only visible view. Ids outside the known set leave
// nothing visible.
func (s *Switcher) Show(v View) {
	if !s.known[v] {
		s.active, s.shown = "", false
		return
	}
	s.active, s.shown = v, true
}

// Active returns the visible view, if any.
func (s *Switcher) Active() (View, bool) { return s.active, s.shown }

// Visible reports whether v is the currently shown view.
func (s *Switcher) Visible(v View) bool { return s.shown && s.active == v }
