package ui

import (
	"strings"

	"github.com/a-h/templ"
)

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) templ.Component {
	c := apply(&CardConfig{}, opts)
	return container("div", "rounded-lg border border-gray-200 bg-white text-gray-900 shadow-sm", &c.BaseConfig)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) templ.Component {
	c := apply(&CardHeaderConfig{}, opts)
	return container("div", "flex flex-col space-y-1.5 p-6", &c.BaseConfig)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) templ.Component {
	c := apply(&CardTitleConfig{}, opts)
	return container("h3", "text-2xl font-semibold leading-none tracking-tight", &c.BaseConfig)
}

// CardDescription
type CardDescriptionConfig struct{ BaseConfig }

func (c *CardDescriptionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardDescriptionOption = Option[*CardDescriptionConfig]

func CardDescription(opts ...CardDescriptionOption) templ.Component {
	c := apply(&CardDescriptionConfig{}, opts)
	return container("p", "text-sm text-gray-500", &c.BaseConfig)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) templ.Component {
	c := apply(&CardContentConfig{}, opts)
	return container("div", "p-6 pt-0", &c.BaseConfig)
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) templ.Component {
	c := apply(&CardFooterConfig{}, opts)
	return container("div", "flex items-center p-6 pt-0", &c.BaseConfig)
}

// container renders a plain element with base classes merged with the caller's.
func container(tag, baseClass string, b *BaseConfig) templ.Component {
	attrs := mergeAttrs(nil, b.Attrs)
	attrs = setAttr(attrs, "class", CN(baseClass, strings.Join(b.Classes, " ")))
	return element(tag, attrs, b.Children...)
}
