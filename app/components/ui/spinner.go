package ui

import (
	"strings"

	"github.com/a-h/templ"
)

type SpinnerConfig struct {
	BaseConfig
	Size Size
}

func (c *SpinnerConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SpinnerOption = Option[*SpinnerConfig]

func SpinnerSize(s Size) SpinnerOption {
	return func(c *SpinnerConfig) { c.Size = s }
}

// Spinner is a decorative loading indicator announced as a status.
func Spinner(opts ...SpinnerOption) templ.Component {
	c := apply(&SpinnerConfig{Size: SizeMd}, opts)
	size := sizeOr(c.Size, spinnerStyles.sizes, SizeMd)

	finalClass := CN(
		spinnerStyles.base,
		spinnerStyles.sizes[size],
		strings.Join(c.BaseConfig.Classes, " "),
	)

	attrs := mergeAttrs(nil, c.BaseConfig.Attrs)
	attrs = setAttr(attrs, "class", finalClass)
	attrs = setAttr(attrs, "role", "status")
	attrs = setAttr(attrs, "aria-label", "Loading")

	return element("div", attrs,
		element("span", templ.OrderedAttributes{templ.KV[string, any]("class", "sr-only")}, Text(DefaultLoadingText)),
	)
}
