package markup

import (
	"fmt"
	"html"
)

// ContentID is the element ID of the mount point that state fragments are
// loaded into.
const ContentID = "content"

// LoadFragment returns markup for an empty mount point plus the script
// that loads href into it once the document is ready.
func LoadFragment(href, id string) *Page {
	if id == "" {
		id = ContentID
	}
	p := NewPage()
	p.Open("div", ID(id)).Close()
	p.Script(fmt.Sprintf(`$(document).ready(function() {
  $("#%s").load(%q);
});`, id, href))
	return p
}

// LoadExternal returns markup that embeds an external page in an iframe
// filling the mount point.
func LoadExternal(url, id string) *Page {
	if id == "" {
		id = ContentID
	}
	p := NewPage()
	p.Open("div", ID(id))
	p.Raw(fmt.Sprintf("<iframe src=%q width=\"100%%\" frameborder=\"0\"></iframe>\n",
		html.EscapeString(url)))
	p.Close()
	return p
}

// SwitchEntry pairs a state label with the fragment document it loads.
type SwitchEntry struct {
	Label string
	Href  string
}

// StateSwitcher builds the client-side state switch control: a dropdown
// enumerating entries in order, with entries[active] marked active.
// Selecting an entry loads its fragment into the content mount point
// without a page reload.
func StateSwitcher(entries []SwitchEntry, active int) *Page {
	p := NewPage()
	p.Open("div", Class("btn-group pull-right state-switch"))
	if len(entries) == 0 {
		return p.Close()
	}
	if active < 0 || active >= len(entries) {
		active = 0
	}
	p.Open("a", Class("navbar-brand dropdown-toggle"), Href("#"),
		Attr{Key: "data-toggle", Val: "dropdown"})
	p.Text(entries[active].Label)
	p.Raw(" <b class=\"caret\"></b>\n")
	p.Close()
	p.Open("ul", Class("dropdown-menu"), ID("statemenu"))
	for i, e := range entries {
		class := "state"
		if i == active {
			class = "state active"
		}
		p.Open("li", Class(class))
		p.Open("a", Href("#"),
			Attr{Key: "onclick", Val: fmt.Sprintf("$(%q).load(%q);", "#"+ContentID, e.Href)})
		p.Text(e.Label)
		p.Close()
		p.Close()
	}
	p.Close()
	p.Close()
	return p
}

// NavLink is one entry of the navigation bar. Children render as a
// dropdown; the Group label clusters children under a header within the
// dropdown and has no structural effect.
type NavLink struct {
	Name     string
	Href     string
	Group    string
	Children []NavLink
}

// Navbar builds the fixed top navigation bar from the given links, with
// brand content (may be nil) placed before them.
func Navbar(links []NavLink, brand *Page) *Page {
	p := NewPage()
	p.Open("nav", Class("navbar navbar-fixed-top"))
	p.Open("div", Class("container-fluid"))
	if brand != nil {
		p.AddContent(brand)
	}
	p.Open("ul", Class("nav navbar-nav"))
	for _, l := range links {
		writeNavLink(p, l)
	}
	p.Close()
	p.Close()
	p.Close()
	return p
}

func writeNavLink(p *Page, l NavLink) {
	if len(l.Children) == 0 {
		p.Open("li")
		p.Open("a", Href(l.Href)).Text(l.Name).Close()
		p.Close()
		return
	}
	p.Open("li", Class("dropdown"))
	p.Open("a", Href("#"), Class("dropdown-toggle"),
		Attr{Key: "data-toggle", Val: "dropdown"})
	p.Text(l.Name)
	p.Raw(" <b class=\"caret\"></b>\n")
	p.Close()
	p.Open("ul", Class("dropdown-menu"))
	group := ""
	for _, c := range l.Children {
		if c.Group != "" && c.Group != group {
			group = c.Group
			p.Open("li", Class("dropdown-header")).Text(group).Close()
		}
		p.Open("li")
		p.Open("a", Href(c.Href)).Text(c.Name).Close()
		p.Close()
	}
	p.Close()
	p.Close()
}
