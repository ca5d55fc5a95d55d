package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type InputConfig struct {
	BaseConfig
	ID                    string
	Type                  string
	Name                  string
	Placeholder           string
	Label                 string
	LabelClass            string
	Error                 string
	Size                  Size
	Required              bool
	Disabled              bool
	ShowRequiredIndicator bool
	Value                 Prop[string]
	DefaultValue          Prop[string]
	OnChange              func(ChangeEvent)
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputID(id string) InputOption {
	return func(c *InputConfig) { c.ID = id }
}

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(name string) InputOption {
	return func(c *InputConfig) { c.Name = name }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputLabel(label string) InputOption {
	return func(c *InputConfig) { c.Label = label }
}

func InputLabelClass(class string) InputOption {
	return func(c *InputConfig) { c.LabelClass = class }
}

// InputError marks the field invalid and renders msg under it.
func InputError(msg string) InputOption {
	return func(c *InputConfig) { c.Error = msg }
}

func InputSize(s Size) InputOption {
	return func(c *InputConfig) { c.Size = s }
}

func InputRequired(required bool) InputOption {
	return func(c *InputConfig) { c.Required = required }
}

func InputDisabled(disabled bool) InputOption {
	return func(c *InputConfig) { c.Disabled = disabled }
}

func InputShowRequiredIndicator(show bool) InputOption {
	return func(c *InputConfig) { c.ShowRequiredIndicator = show }
}

// InputValue makes the input controlled.
func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = Some(s) }
}

// InputDefaultValue seeds an uncontrolled input.
func InputDefaultValue(s string) InputOption {
	return func(c *InputConfig) { c.DefaultValue = Some(s) }
}

func InputOnChange(fn func(ChangeEvent)) InputOption {
	return func(c *InputConfig) { c.OnChange = fn }
}

// Input is a labelled text field. It keeps its generated id and, when
// uncontrolled, its value across Update calls.
type Input struct {
	cfg   *InputConfig
	genID string
	value *ValueResolver[string]
}

func NewInput(opts ...InputOption) *Input {
	cfg := newInputConfig(opts)
	return &Input{
		cfg:   cfg,
		genID: newID(),
		value: NewValueResolver("Input", cfg.DefaultValue, ""),
	}
}

func newInputConfig(opts []InputOption) *InputConfig {
	c := apply(&InputConfig{Type: "text", Size: SizeMd}, opts)
	if id, ok := c.BaseConfig.takeAttr("id"); ok && c.ID == "" {
		c.ID = id
	}
	if v, ok := c.BaseConfig.takeAttr("value"); ok && !c.Value.IsSet() {
		c.Value = Some(v)
	}
	return c
}

// Update replaces the props, as a parent re-render does.
func (in *Input) Update(opts ...InputOption) {
	in.cfg = newInputConfig(opts)
}

// ID is the caller's id or the generated one.
func (in *Input) ID() string {
	if in.cfg.ID != "" {
		return in.cfg.ID
	}
	return in.genID
}

func (in *Input) Name() string { return in.cfg.Name }

func (in *Input) Value() string { return in.value.Current(in.cfg.Value) }

func (in *Input) Controlled() bool { return in.value.Controlled(in.cfg.Value) }

// HandleChange forwards the raw event, then keeps the new value if uncontrolled.
func (in *Input) HandleChange(ev ChangeEvent) {
	if in.cfg.OnChange != nil {
		in.cfg.OnChange(ev)
	}
	in.value.Commit(in.cfg.Value, ev.Value)
}

func (in *Input) Render(ctx context.Context, w io.Writer) error {
	c := in.cfg
	id := in.ID()
	value := in.value.Resolve(c.Value, c.DefaultValue, "id", id)
	hasError := c.Error != ""
	size := sizeOr(c.Size, formStyles.sizes, SizeMd)

	finalClass := CN(
		formStyles.base,
		formStyles.sizes[size],
		when(hasError, formStyles.inputError),
		strings.Join(c.BaseConfig.Classes, " "),
	)

	attrs := templ.OrderedAttributes{
		templ.KV[string, any]("class", finalClass),
		templ.KV[string, any]("id", id),
		templ.KV[string, any]("value", value),
		templ.KV[string, any]("aria-invalid", ariaBool(hasError)),
	}
	if hasError {
		attrs = setAttr(attrs, "aria-describedby", errorID(id))
	}
	attrs = setAttr(attrs, "type", c.Type)
	if c.Name != "" {
		attrs = setAttr(attrs, "name", c.Name)
	}
	if c.Placeholder != "" {
		attrs = setAttr(attrs, "placeholder", c.Placeholder)
	}
	attrs = setAttr(attrs, "required", c.Required)
	attrs = setAttr(attrs, "disabled", c.Disabled)
	attrs = mergeAttrs(attrs, c.BaseConfig.Attrs)

	return fieldWrapper(fieldParts{
		id:           id,
		label:        c.Label,
		labelClass:   c.LabelClass,
		required:     c.ShowRequiredIndicator || c.Required,
		errorMessage: c.Error,
		control:      voidElement("input", attrs),
	}).Render(ctx, w)
}

type fieldParts struct {
	id           string
	label        string
	labelClass   string
	required     bool
	errorMessage string
	control      templ.Component
}

// fieldWrapper lays out label, control and error message, shared by Input and Select.
func fieldWrapper(p fieldParts) templ.Component {
	var label, message templ.Component
	if p.label != "" {
		label = Label(
			LabelFor(p.id),
			LabelRequired(p.required),
			Class[*LabelConfig](p.labelClass),
			Child[*LabelConfig](Text(p.label)),
		)
	}
	if p.errorMessage != "" {
		message = element("div", templ.OrderedAttributes{
			templ.KV[string, any]("class", formStyles.error),
			templ.KV[string, any]("id", errorID(p.id)),
			templ.KV[string, any]("role", "alert"),
		}, Text(p.errorMessage))
	}
	return element("div", nil, label, p.control, message)
}

func errorID(id string) string {
	return id + "-error"
}
