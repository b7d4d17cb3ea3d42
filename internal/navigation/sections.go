package navigation

// SectionID names an anchor on the page.
type SectionID string

const (
	SectionHero     SectionID = "hero"
	SectionServices SectionID = "services"
	SectionAbout    SectionID = "about"
	SectionContact  SectionID = "contact"
)

type Link struct {
	ID    SectionID
	Label string
}

// Links are the navigation bar entries, in page order.
var Links = []Link{
	{ID: SectionHero, Label: "Home"},
	{ID: SectionServices, Label: "Services"},
	{ID: SectionAbout, Label: "About"},
	{ID: SectionContact, Label: "Contact"},
}
