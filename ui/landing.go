package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type ActionID int

const (
	ActionAddListing ActionID = iota + 1
	ActionBrowseListings
	ActionAddRequest
	ActionBrowseRequests
)

type Action struct {
	ID    ActionID
	Icon  string
	Label string
}

const landingTitle = "Welcome to the Immobilier App!"

var supported = language.NewMatcher([]language.Tag{language.English, language.French})

func init() {
	for key, fr := range map[string]string{
		landingTitle:         "Bienvenue sur l'application Immobilier !",
		"Add a listing":      "Ajouter une annonce",
		"Browse listings":    "Visualiser les annonces",
		"Add a request":      "Ajouter une demande",
		"Browse my requests": "Visualiser mes demandes",
	} {
		_ = message.SetString(language.French, key, fr)
	}
}

// Landing is the entry screen. It holds no state of its own; each action
// just calls the matching callback, and a nil callback does nothing.
type Landing struct {
	OnAddListing     func()
	OnBrowseListings func()
	OnAddRequest     func()
	OnBrowseRequests func()

	printer *message.Printer
}

// NewLanding returns a landing view whose labels are in lang ("en", "fr", ...).
// Unsupported languages fall back to English.
func NewLanding(lang string) *Landing {
	tag, _ := language.MatchStrings(supported, lang)
	return &Landing{printer: message.NewPrinter(tag)}
}

func (l *Landing) Title() string {
	return l.printer.Sprintf(landingTitle)
}

func (l *Landing) Actions() []Action {
	return []Action{
		{ID: ActionAddListing, Icon: "plus", Label: l.printer.Sprintf("Add a listing")},
		{ID: ActionBrowseListings, Icon: "eye", Label: l.printer.Sprintf("Browse listings")},
		{ID: ActionAddRequest, Icon: "plus", Label: l.printer.Sprintf("Add a request")},
		{ID: ActionBrowseRequests, Icon: "eye", Label: l.printer.Sprintf("Browse my requests")},
	}
}

func (l *Landing) Press(id ActionID) {
	var fn func()
	switch id {
	case ActionAddListing:
		fn = l.OnAddListing
	case ActionBrowseListings:
		fn = l.OnBrowseListings
	case ActionAddRequest:
		fn = l.OnAddRequest
	case ActionBrowseRequests:
		fn = l.OnBrowseRequests
	}
	if fn != nil {
		fn()
	}
}
