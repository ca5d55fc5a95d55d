package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes  []string
	Attrs    templ.OrderedAttributes // forwarded to the native element
	Children []templ.Component
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes (merged via CN later)
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr forwards a raw attribute to the native element (escape hatch).
// A "class" attribute is merged with the component classes instead.
func Attr[T ConfigProvider](name string, value any) Option[T] {
	return func(cfg T) {
		cfg.GetBase().setAttr(name, value)
	}
}

// Attrs forwards a set of attributes in key order.
func Attrs[T ConfigProvider](attrs templ.Attributes) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		for _, kv := range attrs.Items() {
			base.setAttr(kv.Key, kv.Value)
		}
	}
}

// Child allows passing children (strongly typed)
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Children = append(base.Children, nodes...)
	}
}

func (b *BaseConfig) setAttr(name string, value any) {
	if name == "class" {
		if s, ok := value.(string); ok {
			b.Classes = append(b.Classes, s)
		}
		return
	}
	b.Attrs = setAttr(b.Attrs, name, value)
}

// takeAttr removes a string attribute the component resolves itself (id, value).
func (b *BaseConfig) takeAttr(name string) (string, bool) {
	for i, kv := range b.Attrs {
		if kv.Key != name {
			continue
		}
		b.Attrs = append(b.Attrs[:i:i], b.Attrs[i+1:]...)
		s, ok := kv.Value.(string)
		return s, ok
	}
	return "", false
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func apply[T ConfigProvider](cfg T, opts []Option[T]) T {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}
