package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// setAttr replaces name in place when present so later writers win without
// reordering the output.
func setAttr(attrs templ.OrderedAttributes, name string, value any) templ.OrderedAttributes {
	for i := range attrs {
		if attrs[i].Key == name {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, templ.KV(name, value))
}

func mergeAttrs(dst, src templ.OrderedAttributes) templ.OrderedAttributes {
	for _, kv := range src {
		dst = setAttr(dst, kv.Key, kv.Value)
	}
	return dst
}

// ariaBool renders the literal "true"/"false" that aria-* attributes expect.
func ariaBool(b bool) string {
	return strconv.FormatBool(b)
}

// ariaTrue returns "true" or nil, so false drops the attribute.
func ariaTrue(b bool) any {
	if b {
		return "true"
	}
	return nil
}

// Element renders <tag attrs>children</tag>. Ordered attributes keep their
// order; templ.Attributes render sorted by name. Nil children are skipped.
func Element(tag string, attrs templ.Attributer, children ...templ.Component) templ.Component {
	return element(tag, attrs, children...)
}

func element(tag string, attrs templ.Attributer, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(ctx, w, tag, attrs); err != nil {
			return err
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

func voidElement(tag string, attrs templ.Attributer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return openTag(ctx, w, tag, attrs)
	})
}

func openTag(ctx context.Context, w io.Writer, tag string, attrs templ.Attributer) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if attrs != nil {
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">")
	return err
}
