package ui

import (
	"strings"

	"github.com/a-h/templ"
)

type LabelConfig struct {
	BaseConfig
	For      string
	Required bool
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

// LabelRequired appends the required marker, hidden from assistive technology.
func LabelRequired(required bool) LabelOption {
	return func(c *LabelConfig) { c.Required = required }
}

func Label(opts ...LabelOption) templ.Component {
	c := apply(&LabelConfig{}, opts)

	finalClass := CN(
		formStyles.label,
		strings.Join(c.BaseConfig.Classes, " "),
	)

	attrs := mergeAttrs(nil, c.BaseConfig.Attrs)
	if c.For != "" {
		attrs = setAttr(attrs, "for", c.For)
	}
	attrs = setAttr(attrs, "class", finalClass)

	children := c.BaseConfig.Children
	if c.Required {
		children = append(children[:len(children):len(children)], requiredIndicator())
	}
	return element("label", attrs, children...)
}

func requiredIndicator() templ.Component {
	return element("span", templ.OrderedAttributes{
		templ.KV[string, any]("class", requiredIndicatorClass),
		templ.KV[string, any]("aria-hidden", "true"),
	}, Text("*"))
}
