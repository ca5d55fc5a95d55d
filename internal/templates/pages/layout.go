package pages

import (
	"github.com/a-h/templ"

	"github.com/vangoframework/formkit/app/components/ui"
)

// TailwindSrc is the browser build of Tailwind that styles the utility classes.
const TailwindSrc = "https://cdn.tailwindcss.com"

// Layout wraps body in the HTML document shell.
func Layout(title, htmxSrc string, body templ.Component) templ.Component {
	return templ.Join(
		templ.Raw("<!DOCTYPE html>"),
		ui.Element("html", templ.Attributes{"lang": "en"},
			ui.Element("head", nil,
				templ.Raw(`<meta charset="utf-8">`),
				templ.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`),
				ui.Element("title", nil, ui.Text(title)),
				ui.Element("script", templ.Attributes{"src": TailwindSrc}),
				ui.Element("script", templ.OrderedAttributes{templ.KV[string, any]("src", htmxSrc), templ.KV[string, any]("defer", true)}),
			),
			ui.Element("body", templ.Attributes{"class": "min-h-screen bg-gray-50 text-gray-900 antialiased"},
				ui.Element("main", templ.Attributes{"class": "mx-auto max-w-3xl px-4 py-10 space-y-8"}, body),
			),
		),
	)
}
