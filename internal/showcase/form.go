package showcase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/vangoframework/formkit/app/components/ui"
)

// EventPath is where fields post their change events.
const EventPath = "/events/"

// Form is one visitor's showcase form. It owns a field of every kind and
// plays the parent: it holds the controlled values and re-applies the
// props of every field after each change.
type Form struct {
	catalog *Catalog

	Name    *ui.Input
	Email   *ui.Input
	Company *ui.Input
	Country *ui.Select[Country]
	Plan    *ui.Select[Plan]

	// controlled values
	email string
	plan  *Plan

	errors  FieldErrors
	message string
}

// NewForm builds the form over catalog.
func NewForm(catalog *Catalog) *Form {
	f := &Form{catalog: catalog}

	f.Name = ui.NewInput(ui.InputDefaultValue("Ada Lovelace"))
	f.Email = ui.NewInput(ui.InputValue(""))
	f.Company = ui.NewInput()
	f.Country = ui.NewSelect(catalog.Countries, countryLabel, countryValue)
	f.Plan = ui.NewSelect(catalog.Plans, Plan.Label, planValue, ui.SelectValue[Plan](nil))

	f.sync()
	return f
}

// Fields returns every field that accepts change events.
func (f *Form) Fields() []ui.Interactive {
	return []ui.Interactive{f.Name, f.Email, f.Company, f.Country, f.Plan}
}

// Message is the confirmation shown after a valid submission.
func (f *Form) Message() string { return f.message }

// Errors returns the current message per field name.
func (f *Form) Errors() FieldErrors { return f.errors }

// EmailValue is the controlled email as the form holds it.
func (f *Form) EmailValue() string { return f.email }

// PlanValue is the controlled plan, nil when none is chosen.
func (f *Form) PlanValue() *Plan { return f.plan }

// Submit applies the posted values to the fields, then validates what the
// fields hold. It returns true when the submission was accepted.
func (f *Form) Submit(values url.Values) (bool, error) {
	inputs := map[string]ui.Interactive{
		"name":    f.Name,
		"email":   f.Email,
		"company": f.Company,
		"country": f.Country,
		"plan":    f.Plan,
	}
	for name, c := range inputs {
		if _, ok := values[name]; ok {
			c.HandleChange(ui.ChangeEvent{ID: c.ID(), Name: name, Value: values.Get(name)})
		}
	}

	sub := f.Submission()
	errs, err := sub.Validate()
	if err != nil {
		return false, fmt.Errorf("validate submission: %w", err)
	}

	f.errors = errs
	if len(errs) > 0 {
		f.message = ""
	} else {
		f.message = fmt.Sprintf("Thanks %s, you're on the %s plan.", sub.Name, f.plan.Name)
	}
	f.sync()
	return len(errs) == 0, nil
}

// Submission reads the current value of every field.
func (f *Form) Submission() Submission {
	s := Submission{
		Name:    strings.TrimSpace(f.Name.Value()),
		Email:   f.email,
		Company: strings.TrimSpace(f.Company.Value()),
	}
	if c := f.Country.Selected(); c != nil {
		s.Country = c.Code
	}
	if f.plan != nil {
		s.Plan = f.plan.ID
	}
	return s
}

func (f *Form) onEmail(ev ui.ChangeEvent) {
	f.email = strings.ToLower(strings.TrimSpace(ev.Value))
	f.clearError("email")
}

func (f *Form) onPlan(p *Plan) {
	f.plan = p
	f.clearError("plan")
}

func (f *Form) clearError(name string) {
	delete(f.errors, name)
	f.message = ""
	f.sync()
}

// sync re-applies the props of every field from the form state.
func (f *Form) sync() {
	f.Name.Update(
		ui.InputName("name"),
		ui.InputLabel("Full name"),
		ui.InputPlaceholder("Grace Hopper"),
		ui.InputDefaultValue("Ada Lovelace"),
		ui.InputRequired(true),
		ui.InputError(f.errors["name"]),
		ui.InputOnChange(func(ui.ChangeEvent) { f.clearError("name") }),
		inputEvents(f.Name.ID()),
	)

	f.Email.Update(
		ui.InputType("email"),
		ui.InputName("email"),
		ui.InputLabel("Email"),
		ui.InputPlaceholder("you@example.com"),
		ui.InputValue(f.email),
		ui.InputRequired(true),
		ui.InputError(f.errors["email"]),
		ui.InputOnChange(f.onEmail),
		inputEvents(f.Email.ID()),
	)

	f.Company.Update(
		ui.InputName("company"),
		ui.InputLabel("Company"),
		ui.InputSize(ui.SizeSm),
		ui.InputShowRequiredIndicator(true),
		ui.InputError(f.errors["company"]),
		ui.InputOnChange(func(ui.ChangeEvent) { f.clearError("company") }),
		inputEvents(f.Company.ID()),
	)

	f.Country.Update(f.catalog.Countries, countryLabel, countryValue,
		ui.SelectName[Country]("country"),
		ui.SelectLabel[Country]("Country"),
		ui.SelectPlaceholder[Country]("Select a country"),
		ui.SelectRequired[Country](true),
		ui.SelectError[Country](f.errors["country"]),
		ui.GetKey(func(c Country) any { return c.Code }),
		ui.OnSelect(func(*Country) { f.clearError("country") }),
		selectEvents[Country](f.Country.ID()),
	)

	f.Plan.Update(f.catalog.Plans, Plan.Label, planValue,
		ui.SelectName[Plan]("plan"),
		ui.SelectLabel[Plan]("Plan"),
		ui.SelectPlaceholder[Plan]("Choose a plan"),
		ui.SelectSize[Plan](ui.SizeLg),
		ui.SelectShowRequiredIndicator[Plan](true),
		ui.SelectValue(f.plan),
		ui.SelectError[Plan](f.errors["plan"]),
		ui.OnSelect(f.onPlan),
		selectEvents[Plan](f.Plan.ID()),
	)
}

// eventAttrs posts the field's value on change and swaps the whole field.
func eventAttrs(id string) templ.Attributes {
	return templ.Attributes{
		"hx-post":    EventPath + id,
		"hx-trigger": "change",
		"hx-vals":    "js:{value: this.value}",
		"hx-target":  "closest div",
		"hx-swap":    "outerHTML",
	}
}

func inputEvents(id string) ui.InputOption {
	return ui.Attrs[*ui.InputConfig](eventAttrs(id))
}

func selectEvents[T any](id string) ui.Option[*ui.SelectConfig[T]] {
	return ui.Attrs[*ui.SelectConfig[T]](eventAttrs(id))
}

func countryLabel(c Country) string { return c.Name }
func countryValue(c Country) any    { return c.Code }
func planValue(p Plan) any          { return p.ID }
