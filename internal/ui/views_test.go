package ui

import "testing"

func TestSwitcherStartsHidden(t *testing.T) {
	s := NewSwitcher(ViewHome, ViewNew, ViewList)
	if _, ok := s.Active(); ok {
		t.Fatal("new switcher has an active view")
	}
	for _, v := range []View{ViewHome, ViewNew, ViewList} {
		if s.Visible(v) {
			t.Errorf("%s visible before any Show", v)
		}
	}
}

func TestShowMakesExactlyOneVisible(t *testing.T) {
	s := NewSwitcher(ViewHome, ViewNew, ViewList)

	s.Show(ViewList)
	s.Show(ViewHome)

	if !s.Visible(ViewHome) {
		t.Error("home not visible after Show")
	}
	if s.Visible(ViewList) || s.Visible(ViewNew) {
		t.Error("a previous view stayed visible")
	}
	active, ok := s.Active()
	if !ok || active != ViewHome {
		t.Errorf("Active: got %q, ok=%v, want home", active, ok)
	}
}

func TestShowUnknownHidesEverything(t *testing.T) {
	s := NewSwitcher(ViewHome, ViewNew, ViewList)
	s.Show(ViewHome)
	s.Show(View("bogus"))

	if _, ok := s.Active(); ok {
		t.Fatal("unknown id left a view active")
	}
	for _, v := range []View{ViewHome, ViewNew, ViewList} {
		if s.Visible(v) {
			t.Errorf("%s visible after unknown Show", v)
		}
	}

	s.Show(ViewNew)
	if !s.Visible(ViewNew) {
		t.Error("switcher did not recover after an unknown id")
	}
}
