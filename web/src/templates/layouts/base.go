package layouts

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	"github.com/sagelane/vestibule/web/src/templates/partials"
)

// Base wraps page content in the HTML5 shell shared by every page: htmx,
// the stylesheet and the flash banner area.
func Base(title string, flashes partials.FlashData, content gomponents.Node) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []gomponents.Node{
			html.Script(html.Src("https://unpkg.com/htmx.org@1.9.12"), html.Defer()),
			html.Script(html.Src("https://cdn.tailwindcss.com")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		},
		Body: []gomponents.Node{
			html.Class("min-h-screen bg-gray-100 text-gray-900 antialiased"),
			partials.Flashes(flashes),
			html.Main(
				html.Class("flex items-center justify-center px-4 py-12"),
				content,
			),
		},
	})
}
