package pages

import (
	"github.com/a-h/templ"

	"github.com/vangoframework/formkit/app/components/ui"
	"github.com/vangoframework/formkit/internal/showcase"
)

// FormID is the id of the form element that /submit swaps.
const FormID = "showcase-form"

// Showcase renders the demo page body: the live form and a gallery of the
// stateless components.
func Showcase(form *showcase.Form) templ.Component {
	return templ.Join(
		ui.Element("header", templ.Attributes{"class": "space-y-1"},
			ui.Element("h1", templ.Attributes{"class": "text-2xl font-semibold"}, ui.Text("formkit")),
			ui.Element("p", templ.Attributes{"class": "text-sm text-gray-600"},
				ui.Text("Server-rendered form components. Each field posts its changes and is re-rendered in place."),
			),
		),
		ui.Card(
			ui.Child[*ui.CardConfig](
				ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
					ui.CardTitle(ui.Child[*ui.CardTitleConfig](ui.Text("Sign up"))),
					ui.CardDescription(ui.Child[*ui.CardDescriptionConfig](
						ui.Text("Name and country are uncontrolled; email and plan are held by the form."),
					)),
				)),
				ui.CardContent(ui.Child[*ui.CardContentConfig](Form(form))),
			),
		),
		ui.Card(
			ui.Child[*ui.CardConfig](
				ui.CardHeader(ui.Child[*ui.CardHeaderConfig](
					ui.CardTitle(ui.Child[*ui.CardTitleConfig](ui.Text("Buttons and spinners"))),
				)),
				ui.CardContent(ui.Child[*ui.CardContentConfig](Gallery())),
			),
		),
	)
}

// Form renders the live form. /submit responds with this fragment alone.
func Form(form *showcase.Form) templ.Component {
	var message templ.Component
	if msg := form.Message(); msg != "" {
		message = ui.Element("div",
			templ.Attributes{"role": "status", "class": "rounded-lg bg-green-50 px-4 py-3 text-sm text-green-800"},
			ui.Text(msg),
		)
	}

	fields := make([]templ.Component, 0, len(form.Fields()))
	for _, f := range form.Fields() {
		fields = append(fields, f)
	}

	return ui.Element("form",
		templ.OrderedAttributes{
			templ.KV[string, any]("id", FormID),
			templ.KV[string, any]("class", "space-y-4"),
			templ.KV[string, any]("action", "/submit"),
			templ.KV[string, any]("method", "post"),
			templ.KV[string, any]("hx-post", "/submit"),
			templ.KV[string, any]("hx-target", "this"),
			templ.KV[string, any]("hx-swap", "outerHTML"),
			templ.KV[string, any]("novalidate", true),
		},
		message,
		templ.Join(fields...),
		ui.Element("div", templ.Attributes{"class": "flex items-center gap-3 pt-2"},
			ui.Button(
				ui.ButtonType("submit"),
				ui.Child[*ui.ButtonConfig](ui.Text("Create account")),
			),
			ui.Button(
				ui.Variant(ui.ButtonVariantSecondary),
				ui.ButtonDisabled(true),
				ui.Child[*ui.ButtonConfig](ui.Text("Save draft")),
			),
			ui.Button(
				ui.Variant(ui.ButtonVariantGhost),
				ui.AsLink("/reset"),
				ui.Child[*ui.ButtonConfig](ui.Text("Start over")),
			),
		),
	)
}

// Gallery shows every button variant and size, the loading states and the
// spinner sizes.
func Gallery() templ.Component {
	variants := []ui.ButtonVariant{ui.ButtonVariantPrimary, ui.ButtonVariantSecondary, ui.ButtonVariantGhost}
	sizes := []ui.Size{ui.SizeSm, ui.SizeMd, ui.SizeLg}

	var rows []templ.Component
	for _, v := range variants {
		var buttons []templ.Component
		for _, s := range sizes {
			buttons = append(buttons, ui.Button(
				ui.Variant(v),
				ui.ButtonSize(s),
				ui.Child[*ui.ButtonConfig](ui.Text(string(v)+" "+string(s))),
			))
		}
		rows = append(rows, ui.Element("div", templ.Attributes{"class": "flex flex-wrap items-center gap-3"}, buttons...))
	}

	var spinners []templ.Component
	for _, s := range sizes {
		spinners = append(spinners, ui.Spinner(ui.SpinnerSize(s)))
	}

	rows = append(rows,
		ui.Element("div", templ.Attributes{"class": "flex flex-wrap items-center gap-3"},
			ui.Button(ui.Loading(true), ui.Child[*ui.ButtonConfig](ui.Text("Save"))),
			ui.Button(ui.Loading(true), ui.LoadingText("Saving..."), ui.ButtonSize(ui.SizeLg), ui.Child[*ui.ButtonConfig](ui.Text("Save"))),
			ui.Button(
				ui.Variant(ui.ButtonVariantSecondary),
				ui.LeftIcon(templ.Raw(`<span aria-hidden="true">&larr;</span>`)),
				ui.RightIcon(templ.Raw(`<span aria-hidden="true">&rarr;</span>`)),
				ui.Child[*ui.ButtonConfig](ui.Text("With icons")),
			),
			ui.Button(
				ui.AsLink("https://htmx.org"),
				ui.Variant(ui.ButtonVariantGhost),
				ui.Attr[*ui.ButtonConfig]("target", "_blank"),
				ui.Attr[*ui.ButtonConfig]("rel", "noopener"),
				ui.Child[*ui.ButtonConfig](ui.Text("htmx docs")),
			),
		),
		ui.Element("div", templ.Attributes{"class": "flex items-center gap-4 text-gray-500"}, spinners...),
	)

	return ui.Element("div", templ.Attributes{"class": "space-y-4"}, rows...)
}
