package ui

import (
	"strings"

	"github.com/a-h/templ"
)

// ButtonAs discriminates between a native button and an anchor.
type ButtonAs string

const (
	AsButton ButtonAs = "button"
	AsAnchor ButtonAs = "a"
)

type ButtonConfig struct {
	BaseConfig
	As          ButtonAs
	Href        string
	Variant     ButtonVariant
	Size        Size
	Type        string
	Disabled    bool
	Loading     bool
	LoadingText string
	LeftIcon    templ.Component
	RightIcon   templ.Component
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func ButtonSize(s Size) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// AsLink renders the button as an anchor pointing at href.
func AsLink(href string) ButtonOption {
	return func(c *ButtonConfig) {
		c.As = AsAnchor
		c.Href = href
	}
}

// ButtonType sets the native type; "button" by default.
func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func ButtonDisabled(d bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = d }
}

// Loading swaps the content for a spinner and disables the button.
func Loading(l bool) ButtonOption {
	return func(c *ButtonConfig) { c.Loading = l }
}

func LoadingText(s string) ButtonOption {
	return func(c *ButtonConfig) { c.LoadingText = s }
}

func LeftIcon(icon templ.Component) ButtonOption {
	return func(c *ButtonConfig) { c.LeftIcon = icon }
}

func RightIcon(icon templ.Component) ButtonOption {
	return func(c *ButtonConfig) { c.RightIcon = icon }
}

func Button(opts ...ButtonOption) templ.Component {
	c := apply(&ButtonConfig{
		As:      AsButton,
		Variant: ButtonVariantPrimary,
		Size:    SizeMd,
		Type:    "button",
	}, opts)

	if c.As == AsAnchor {
		return anchorButton(c)
	}

	inactive := c.Disabled || c.Loading
	finalClass := CN(
		buttonStyles.base,
		buttonVariants(c.Variant, c.Size),
		when(inactive, buttonStyles.disabled),
		strings.Join(c.BaseConfig.Classes, " "),
	)

	attrs := mergeAttrs(nil, c.BaseConfig.Attrs)
	attrs = setAttr(attrs, "aria-busy", ariaTrue(c.Loading))
	attrs = setAttr(attrs, "aria-disabled", ariaTrue(inactive))
	attrs = setAttr(attrs, "disabled", inactive)
	attrs = setAttr(attrs, "class", finalClass)
	attrs = setAttr(attrs, "type", c.Type)

	if c.Loading {
		text := c.LoadingText
		if text == "" {
			text = DefaultLoadingText
		}
		return element("button", attrs,
			Spinner(SpinnerSize(loadingSpinnerSize(c.Size))),
			element("span", templ.OrderedAttributes{templ.KV[string, any]("class", "ml-2")}, Text(text)),
		)
	}
	return element("button", attrs, withIcons(c)...)
}

func anchorButton(c *ButtonConfig) templ.Component {
	finalClass := CN(
		buttonStyles.base,
		buttonVariants(c.Variant, c.Size),
		strings.Join(c.BaseConfig.Classes, " "),
	)

	attrs := templ.OrderedAttributes{templ.KV[string, any]("href", c.Href)}
	attrs = mergeAttrs(attrs, c.BaseConfig.Attrs)
	attrs = setAttr(attrs, "class", finalClass)
	return element("a", attrs, withIcons(c)...)
}

func withIcons(c *ButtonConfig) []templ.Component {
	children := make([]templ.Component, 0, len(c.BaseConfig.Children)+2)
	children = append(children, c.LeftIcon)
	children = append(children, c.BaseConfig.Children...)
	return append(children, c.RightIcon)
}

// loadingSpinnerSize keeps the spinner a step smaller than the button text.
func loadingSpinnerSize(s Size) Size {
	if s == SizeLg {
		return SizeMd
	}
	return SizeSm
}
