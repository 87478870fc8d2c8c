package ui

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLandingLabels(t *testing.T) {
	c := qt.New(t)

	en := NewLanding("en")
	c.Assert(en.Title(), qt.Equals, "Welcome to the Immobilier App!")
	c.Assert(labels(en.Actions()), qt.DeepEquals, []string{"Add a listing", "Browse listings", "Add a request", "Browse my requests"})

	fr := NewLanding("fr")
	c.Assert(labels(fr.Actions()), qt.DeepEquals, []string{"Ajouter une annonce", "Visualiser les annonces", "Ajouter une demande", "Visualiser mes demandes"})

	c.Assert(labels(NewLanding("xx").Actions())[0], qt.Equals, "Add a listing")
}

func TestLandingPressInvokesCallbacks(t *testing.T) {
	c := qt.New(t)

	var got []ActionID
	l := NewLanding("en")
	l.OnAddListing = func() { got = append(got, ActionAddListing) }
	l.OnBrowseRequests = func() { got = append(got, ActionBrowseRequests) }

	for _, a := range l.Actions() {
		l.Press(a.ID)
	}
	l.Press(ActionID(99))
	c.Assert(got, qt.DeepEquals, []ActionID{ActionAddListing, ActionBrowseRequests})
}

func labels(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Label
	}
	return out
}
