package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// SelectConfig holds the props of a Select over items of type T. Value and
// DefaultValue hold *T so that a set Prop can still mean "nothing selected".
type SelectConfig[T any] struct {
	BaseConfig
	ID                    string
	Name                  string
	Label                 string
	LabelClass            string
	Error                 string
	Placeholder           string
	Size                  Size
	Required              bool
	Disabled              bool
	ShowRequiredIndicator bool
	Options               []T
	GetLabel              func(T) string
	GetValue              func(T) any
	GetKey                func(T) any
	Value                 Prop[*T]
	DefaultValue          Prop[*T]
	OnChange              func(*T)
}

func (c *SelectConfig[T]) GetBase() *BaseConfig { return &c.BaseConfig }

func SelectID[T any](id string) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.ID = id }
}

func SelectName[T any](name string) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Name = name }
}

func SelectLabel[T any](label string) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Label = label }
}

func SelectLabelClass[T any](class string) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.LabelClass = class }
}

func SelectError[T any](msg string) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Error = msg }
}

// SelectPlaceholder adds an empty first option; choosing it selects nothing.
func SelectPlaceholder[T any](text string) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Placeholder = text }
}

func SelectSize[T any](s Size) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Size = s }
}

func SelectRequired[T any](required bool) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Required = required }
}

func SelectDisabled[T any](disabled bool) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Disabled = disabled }
}

func SelectShowRequiredIndicator[T any](show bool) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.ShowRequiredIndicator = show }
}

// GetKey sets the per-option key, rendered as data-key. Defaults to the value.
func GetKey[T any](fn func(T) any) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.GetKey = fn }
}

// SelectValue makes the select controlled; nil selects nothing.
func SelectValue[T any](v *T) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.Value = Some(v) }
}

// SelectDefaultValue seeds an uncontrolled select; nil selects nothing.
func SelectDefaultValue[T any](v *T) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.DefaultValue = Some(v) }
}

// OnSelect receives the chosen option, or nil for the placeholder.
func OnSelect[T any](fn func(*T)) Option[*SelectConfig[T]] {
	return func(c *SelectConfig[T]) { c.OnChange = fn }
}

// Select is a labelled dropdown over options of type T.
type Select[T any] struct {
	cfg   *SelectConfig[T]
	genID string
	value *ValueResolver[*T]
}

// NewSelect builds a select over options. getValue is stringified with
// fmt.Sprint to fill option values and to match the reported value back.
func NewSelect[T any](options []T, getLabel func(T) string, getValue func(T) any, opts ...Option[*SelectConfig[T]]) *Select[T] {
	cfg := newSelectConfig(options, getLabel, getValue, opts)
	return &Select[T]{
		cfg:   cfg,
		genID: newID(),
		value: NewValueResolver[*T]("Select", cfg.DefaultValue, nil),
	}
}

func newSelectConfig[T any](options []T, getLabel func(T) string, getValue func(T) any, opts []Option[*SelectConfig[T]]) *SelectConfig[T] {
	c := apply(&SelectConfig[T]{
		Size:     SizeMd,
		Options:  options,
		GetLabel: getLabel,
		GetValue: getValue,
	}, opts)
	if id, ok := c.BaseConfig.takeAttr("id"); ok && c.ID == "" {
		c.ID = id
	}
	return c
}

// Update replaces the props, as a parent re-render does.
func (s *Select[T]) Update(options []T, getLabel func(T) string, getValue func(T) any, opts ...Option[*SelectConfig[T]]) {
	s.cfg = newSelectConfig(options, getLabel, getValue, opts)
}

func (s *Select[T]) ID() string {
	if s.cfg.ID != "" {
		return s.cfg.ID
	}
	return s.genID
}

func (s *Select[T]) Name() string { return s.cfg.Name }

// Selected returns the displayed option, nil when nothing is selected.
func (s *Select[T]) Selected() *T { return s.value.Current(s.cfg.Value) }

func (s *Select[T]) Controlled() bool { return s.value.Controlled(s.cfg.Value) }

// HandleChange maps the reported value to an option. The empty value is the
// placeholder and yields nil, as does a value no option matches.
func (s *Select[T]) HandleChange(ev ChangeEvent) {
	var item *T
	if ev.Value != "" {
		item = s.match(ev.Value)
	}
	s.value.Commit(s.cfg.Value, item)
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(item)
	}
}

// match returns a copy of the first option whose stringified value is raw.
func (s *Select[T]) match(raw string) *T {
	for _, opt := range s.cfg.Options {
		if s.optionValue(opt) == raw {
			item := opt
			return &item
		}
	}
	return nil
}

func (s *Select[T]) optionValue(opt T) string {
	if s.cfg.GetValue == nil {
		return ""
	}
	return fmt.Sprint(s.cfg.GetValue(opt))
}

func (s *Select[T]) optionLabel(opt T) string {
	if s.cfg.GetLabel == nil {
		return s.optionValue(opt)
	}
	return s.cfg.GetLabel(opt)
}

func (s *Select[T]) Render(ctx context.Context, w io.Writer) error {
	c := s.cfg
	id := s.ID()
	selected := s.value.Resolve(c.Value, c.DefaultValue, "id", id)
	hasError := c.Error != ""
	size := sizeOr(c.Size, formStyles.sizes, SizeMd)

	selectedValue := ""
	if selected != nil {
		selectedValue = s.optionValue(*selected)
	}

	finalClass := CN(
		formStyles.base,
		formStyles.sizes[size],
		when(hasError, formStyles.inputError),
		strings.Join(c.BaseConfig.Classes, " "),
	)

	attrs := templ.OrderedAttributes{
		templ.KV[string, any]("class", finalClass),
		templ.KV[string, any]("id", id),
	}
	if c.Name != "" {
		attrs = setAttr(attrs, "name", c.Name)
	}
	attrs = setAttr(attrs, "required", c.Required)
	attrs = setAttr(attrs, "disabled", c.Disabled)
	attrs = mergeAttrs(attrs, c.BaseConfig.Attrs)
	attrs = setAttr(attrs, "aria-invalid", ariaBool(hasError))
	if hasError {
		attrs = setAttr(attrs, "aria-describedby", errorID(id))
	} else {
		attrs = setAttr(attrs, "aria-describedby", nil)
	}

	options := make([]templ.Component, 0, len(c.Options)+1)
	if c.Placeholder != "" {
		options = append(options, element("option", templ.OrderedAttributes{
			templ.KV[string, any]("value", ""),
			templ.KV[string, any]("selected", selected == nil),
		}, Text(c.Placeholder)))
	}
	marked := false
	for _, opt := range c.Options {
		value := s.optionValue(opt)
		isSelected := selected != nil && !marked && value == selectedValue
		marked = marked || isSelected
		optAttrs := templ.OrderedAttributes{templ.KV[string, any]("value", value)}
		if c.GetKey != nil {
			optAttrs = setAttr(optAttrs, "data-key", fmt.Sprint(c.GetKey(opt)))
		}
		optAttrs = setAttr(optAttrs, "selected", isSelected)
		options = append(options, element("option", optAttrs, Text(s.optionLabel(opt))))
	}

	return fieldWrapper(fieldParts{
		id:           id,
		label:        c.Label,
		labelClass:   c.LabelClass,
		required:     c.ShowRequiredIndicator || c.Required,
		errorMessage: c.Error,
		control:      element("select", attrs, options...),
	}).Render(ctx, w)
}
