package sections

import (
	"strings"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// Contact is the closing section with the email address and outbound links.
type Contact struct {
	contact content.Contact
}

// NewContact creates the contact section.
func NewContact(c content.Contact) *Contact {
	return &Contact{contact: c}
}

func (c *Contact) ID() string    { return "contact" }
func (c *Contact) Title() string { return "Contact" }

// Render draws the contact block.
func (c *Contact) Render(st theme.Styles, width int) string {
	var b strings.Builder
	b.WriteString(heading(st, c.Title(), width))

	if c.contact.Email != "" {
		b.WriteString("\n")
		b.WriteString(st.Dim.Render(components.PadRight("email", 10)))
		b.WriteString(st.Link.Render(c.contact.Email))
	}
	for _, l := range c.contact.Links {
		b.WriteString("\n")
		b.WriteString(st.Dim.Render(components.PadRight(l.Label, 10)))
		b.WriteString(st.Link.Render(components.Truncate(l.URL, width-10)))
	}
	return b.String()
}
